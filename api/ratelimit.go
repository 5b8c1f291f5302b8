package api

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

const (
	defaultCreateLimit  = 3
	defaultCreateWindow = time.Hour
	defaultReadLimit    = 100
	defaultReadWindow   = 15 * time.Minute
)

// createLimitGateway gates request creation per caller identity. The
// key is the real caller id, not the pseudonym: abuse control has to
// happen before anonymization.
func (s *Server) createLimitGateway() gin.HandlerFunc {
	limit := limitOrDefault("ratelimit.create.limit", defaultCreateLimit)
	window := windowOrDefault("ratelimit.create.window", defaultCreateWindow)
	return s.rateLimitGateway("create", limit, window)
}

// readLimitGateway loosely gates high-frequency read endpoints, keyed
// per caller where authenticated and per hashed client address where
// not.
func (s *Server) readLimitGateway(scope string) gin.HandlerFunc {
	limit := limitOrDefault("ratelimit.read.limit", defaultReadLimit)
	window := windowOrDefault("ratelimit.read.window", defaultReadWindow)
	return s.rateLimitGateway("read:"+scope, limit, window)
}

func (s *Server) rateLimitGateway(scope string, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + s.limiterKey(c)

		result, err := s.limiter.Allow(c.Request.Context(), key, limit, window)
		// counter unavailability fails closed rather than waving the
		// call through
		if shouldInterupt(err, c) {
			return
		}

		if !result.Allowed {
			retryAfter := int64(result.RetryAfter.Seconds() + 0.5)
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))

			resp := errorTooManyRequests
			resp.RetryAfter = retryAfter
			abortWithEncoding(c, http.StatusTooManyRequests, resp)
			return
		}

		c.Next()
	}
}

// limiterKey identifies the caller for quota accounting: the real user
// id when authenticated, otherwise a hash of the client address. The
// hash exists only inside the limiter keyspace and is never attached to
// request data.
func (s *Server) limiterKey(c *gin.Context) string {
	if requester := c.GetString("requester"); requester != "" {
		return requester
	}

	sum := sha256.Sum256([]byte(c.ClientIP()))
	return "ip:" + hex.EncodeToString(sum[:8])
}

func limitOrDefault(key string, fallback int64) int64 {
	if v := viper.GetInt64(key); v > 0 {
		return v
	}
	return fallback
}

func windowOrDefault(key string, fallback time.Duration) time.Duration {
	if v := viper.GetDuration(key); v > 0 {
		return v
	}
	return fallback
}
