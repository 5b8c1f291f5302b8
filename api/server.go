package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/campusaid/campusaid-api/identity"
	"github.com/campusaid/campusaid-api/lifecycle"
	"github.com/campusaid/campusaid-api/logmodule"
	"github.com/campusaid/campusaid-api/ratelimit"
	"github.com/campusaid/campusaid-api/schema"
	"github.com/campusaid/campusaid-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// HelpLifecycle is the engine surface the handlers call through.
type HelpLifecycle interface {
	Create(ctx context.Context, caller lifecycle.Caller, params lifecycle.CreateRequestParams) (*schema.HelpRequest, error)
	Get(ctx context.Context, requestID string) (*schema.HelpRequest, error)
	Respond(ctx context.Context, requestID, callerRealID string, params lifecycle.RespondParams) (*schema.HelpResponse, error)
	AcceptResponse(ctx context.Context, requestID, responseID, callerRealID string) (*schema.HelpRequest, error)
	Complete(ctx context.Context, requestID, callerRealID string, params lifecycle.CompleteParams) (*schema.HelpRequest, error)
	Cancel(ctx context.Context, requestID, callerRealID string) (*schema.HelpRequest, error)
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.HelpStore

	// Lifecycle engine
	engine HelpLifecycle

	// Identity anonymizer
	anonymizer *identity.Anonymizer

	// Rate limiter
	limiter *ratelimit.Limiter

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(
	helpStore store.HelpStore,
	engine HelpLifecycle,
	anonymizer *identity.Anonymizer,
	limiter *ratelimit.Limiter,
	jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         helpStore,
		engine:        engine,
		anonymizer:    anonymizer,
		limiter:       limiter,
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth",
		s.apikeyAuthentication(viper.GetString("server.apikey.idp")),
		s.requestJWT)

	trendRoute := apiRoute.Group("/trending-skills")
	trendRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		trendRoute.GET("", s.readLimitGateway("trend"), s.trendingSkills)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.GET("", s.optionalAuthMiddleware(), s.readLimitGateway("search"), s.searchRequests)
		requestRoute.GET("/:requestID", s.optionalAuthMiddleware(), s.readLimitGateway("get"), s.getRequest)

		requestRoute.POST("", s.authMiddleware(), s.createLimitGateway(), s.createRequest)
		requestRoute.POST("/:requestID/responses", s.authMiddleware(), s.submitResponse)
		requestRoute.PATCH("/:requestID/responses/:responseID/accept", s.authMiddleware(), s.acceptResponse)
		requestRoute.PATCH("/:requestID/complete", s.authMiddleware(), s.completeRequest)
		requestRoute.PATCH("/:requestID/cancel", s.authMiddleware(), s.cancelRequest)
	}

	apiRoute.GET("/me/stats", s.authMiddleware(), s.myStats)

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "CampusAid 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
