package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusaid/campusaid-api/lifecycle"
)

// createRequest is the API for posting a new help request
func (s *Server) createRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var params lifecycle.CreateRequestParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	caller := lifecycle.Caller{
		RealID:        requester,
		EmailVerified: c.GetBool("emailVerified"),
	}

	req, err := s.engine.Create(c.Request.Context(), caller, params)
	if err != nil {
		s.abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"result": shapeRequest(req, s.viewerID(c), true, time.Now().UTC()),
	})
}

// getRequest is the API for reading a single request. Viewing bumps the
// view counter; anonymous viewers get the reduced shape.
func (s *Server) getRequest(c *gin.Context) {
	id := c.Param("requestID")

	req, err := s.engine.Get(c.Request.Context(), id)
	if err != nil {
		s.abortWithLifecycleError(c, err)
		return
	}

	viewerID := s.viewerID(c)
	c.JSON(http.StatusOK, gin.H{
		"result": shapeRequest(req, viewerID, viewerID != "", time.Now().UTC()),
	})
}

// submitResponse is the API for offering help on an open request
func (s *Server) submitResponse(c *gin.Context) {
	requester := c.GetString("requester")
	id := c.Param("requestID")

	var params lifecycle.RespondParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	resp, err := s.engine.Respond(c.Request.Context(), id, requester, params)
	if err != nil {
		s.abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"result": shapeResponse(resp, s.viewerID(c)),
	})
}

// acceptResponse is the API for the creator to pick exactly one response
func (s *Server) acceptResponse(c *gin.Context) {
	requester := c.GetString("requester")
	id := c.Param("requestID")
	responseID := c.Param("responseID")

	req, err := s.engine.AcceptResponse(c.Request.Context(), id, responseID, requester)
	if err != nil {
		s.abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": shapeRequest(req, s.viewerID(c), true, time.Now().UTC()),
	})
}

// completeRequest is the API for closing an in-progress request with a
// rating and feedback
func (s *Server) completeRequest(c *gin.Context) {
	requester := c.GetString("requester")
	id := c.Param("requestID")

	var params lifecycle.CompleteParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	req, err := s.engine.Complete(c.Request.Context(), id, requester, params)
	if err != nil {
		s.abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": shapeRequest(req, s.viewerID(c), true, time.Now().UTC()),
	})
}

// cancelRequest is the API for the creator to withdraw a request
func (s *Server) cancelRequest(c *gin.Context) {
	requester := c.GetString("requester")
	id := c.Param("requestID")

	req, err := s.engine.Cancel(c.Request.Context(), id, requester)
	if err != nil {
		s.abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": shapeRequest(req, s.viewerID(c), true, time.Now().UTC()),
	})
}

// viewerID derives the caller's pseudonym for ownership annotation, or
// returns empty for anonymous callers.
func (s *Server) viewerID(c *gin.Context) string {
	requester := c.GetString("requester")
	if requester == "" {
		return ""
	}

	viewerID, err := s.anonymizer.Derive(requester)
	if err != nil {
		return ""
	}
	return viewerID
}

// abortWithLifecycleError maps the engine's typed errors onto the http
// boundary and the numeric error code table.
func (s *Server) abortWithLifecycleError(c *gin.Context, err error) {
	var validationErr *lifecycle.ValidationError
	var authenticationErr *lifecycle.AuthenticationError
	var authorizationErr *lifecycle.AuthorizationError
	var notFoundErr *lifecycle.NotFoundError
	var businessErr *lifecycle.BusinessRuleError
	var conflictErr *lifecycle.ConflictError

	switch {
	case errors.As(err, &validationErr):
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(errorInvalidParameters, err.Error()))
	case errors.As(err, &authenticationErr):
		abortWithEncoding(c, http.StatusUnauthorized, errorWithMessage(errorUnauthenticated, err.Error()))
	case errors.As(err, &authorizationErr):
		abortWithEncoding(c, http.StatusForbidden, errorNotAllowed)
	case errors.As(err, &notFoundErr):
		abortWithEncoding(c, http.StatusNotFound, errorWithMessage(errorRequestNotFound, err.Error()))
	case errors.As(err, &businessErr):
		abortWithEncoding(c, http.StatusUnprocessableEntity, errorWithMessage(errorIllegalTransition, err.Error()))
	case errors.As(err, &conflictErr):
		abortWithEncoding(c, http.StatusConflict, errorConcurrentConflict)
	default:
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
