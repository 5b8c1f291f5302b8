package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusaid/campusaid-api/api/mocks"
	"github.com/campusaid/campusaid-api/identity"
	"github.com/campusaid/campusaid-api/lifecycle"
	"github.com/campusaid/campusaid-api/schema"
)

const testSalt = "api-test-salt"

func newTestServer(ctl *gomock.Controller) (*Server, *mocks.MockHelpLifecycle, *mocks.MockHelpStore) {
	engine := mocks.NewMockHelpLifecycle(ctl)
	m := mocks.NewMockHelpStore(ctl)

	anonymizer, err := identity.NewAnonymizer(testSalt)
	if err != nil {
		panic(err)
	}

	s := &Server{
		store:      m,
		engine:     engine,
		anonymizer: anonymizer,
	}
	return s, engine, m
}

// identify stands in for the auth middleware so handler tests can pick
// the caller directly.
func identify(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requester", userID)
		c.Set("emailVerified", true)
		c.Next()
	}
}

func pseudonym(t *testing.T, userID string) string {
	anonymizer, err := identity.NewAnonymizer(testSalt)
	assert.Nil(t, err)

	id, err := anonymizer.Derive(userID)
	assert.Nil(t, err)
	return id
}

func openRequestFixture(owner string) *schema.HelpRequest {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &schema.HelpRequest{
		ID:                   primitive.NewObjectID(),
		RequesterAnonymousID: owner,
		Title:                "debug my segfault",
		Description:          "program crashes on the second run",
		SkillsNeeded:         []string{"c", "gdb"},
		UrgencyLevel:         schema.UrgencyHigh,
		EstimatedTime:        2,
		Status:               schema.RequestOpen,
		Responses:            []schema.HelpResponse{},
		CreatedAt:            now,
		ExpiresAt:            now.Add(7 * 24 * time.Hour),
		LastActivityAt:       now,
	}
}

func TestCreateRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, engine, _ := newTestServer(ctl)
	fixture := openRequestFixture(pseudonym(t, "student-1"))

	engine.EXPECT().
		Create(gomock.Any(), lifecycle.Caller{RealID: "student-1", EmailVerified: true}, gomock.Any()).
		Return(fixture, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", identify("student-1"), s.createRequest)

	body := `{"title":"debug my segfault","description":"program crashes on the second run","skills_needed":["c","gdb"],"urgency_level":"high","estimated_time":2}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var resp struct {
		Result RequestView `json:"result"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, fixture.ID.Hex(), resp.Result.ID)
	assert.Equal(t, "debug my segfault", resp.Result.Title)
	assert.Equal(t, "open", resp.Result.Status)
	assert.True(t, resp.Result.IsOwnRequest, "creator should see the request as their own")
}

func TestCreateRequestBadPayload(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _, _ := newTestServer(ctl)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", identify("student-1"), s.createRequest)

	req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1011), resp.Code)
}

func TestCreateRequestValidationError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, engine, _ := newTestServer(ctl)

	engine.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &lifecycle.ValidationError{Field: "title", Reason: "must be 1-200 characters"}).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", identify("student-1"), s.createRequest)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":""}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1010), resp.Code)
	assert.Contains(t, resp.Message, "title")
}

func TestGetRequestAnonymousShape(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, engine, _ := newTestServer(ctl)
	fixture := openRequestFixture(pseudonym(t, "student-1"))
	fixture.Responses = []schema.HelpResponse{{
		ID:                   "resp-1",
		ResponderAnonymousID: pseudonym(t, "student-2"),
		Message:              "been through this exact crash",
		EstimatedTime:        1,
		Status:               schema.ResponsePending,
		CreatedAt:            fixture.CreatedAt,
	}}

	engine.EXPECT().Get(gomock.Any(), fixture.ID.Hex()).Return(fixture, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:requestID", s.getRequest)

	req := httptest.NewRequest("GET", "/"+fixture.ID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result map[string]interface{} `json:"result"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "debug my segfault", resp.Result["title"])

	// anonymous readers get the summary shape only
	_, ok := resp.Result["requester_anonymous_id"]
	assert.False(t, ok, "requester pseudonym leaked to an anonymous reader")
	_, ok = resp.Result["responses"]
	assert.False(t, ok, "responses leaked to an anonymous reader")
}

func TestGetRequestAuthenticatedShape(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, engine, _ := newTestServer(ctl)
	owner := pseudonym(t, "student-1")
	fixture := openRequestFixture(owner)
	fixture.Responses = []schema.HelpResponse{{
		ID:                   "resp-1",
		ResponderAnonymousID: pseudonym(t, "student-2"),
		Message:              "been through this exact crash",
		EstimatedTime:        1,
		Status:               schema.ResponsePending,
		CreatedAt:            fixture.CreatedAt,
	}}

	engine.EXPECT().Get(gomock.Any(), fixture.ID.Hex()).Return(fixture, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:requestID", identify("student-2"), s.getRequest)

	req := httptest.NewRequest("GET", "/"+fixture.ID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result RequestView `json:"result"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, owner, resp.Result.RequesterAnonymousID)
	assert.False(t, resp.Result.IsOwnRequest, "viewer is not the owner")

	if assert.Len(t, resp.Result.Responses, 1) {
		assert.True(t, resp.Result.Responses[0].IsOwnResponse, "responder should see their own response flagged")
	}
}

func TestGetRequestNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, engine, _ := newTestServer(ctl)

	engine.EXPECT().Get(gomock.Any(), "missing").
		Return(nil, &lifecycle.NotFoundError{Resource: "help request"}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:requestID", s.getRequest)

	req := httptest.NewRequest("GET", "/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1200), resp.Code)
}

func TestSubmitResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, engine, _ := newTestServer(ctl)
	responder := pseudonym(t, "student-2")
	fixture := &schema.HelpResponse{
		ID:                   "resp-1",
		ResponderAnonymousID: responder,
		Message:              "been through this exact crash",
		EstimatedTime:        1,
		Status:               schema.ResponsePending,
		CreatedAt:            time.Now().UTC(),
	}

	engine.EXPECT().
		Respond(gomock.Any(), "5e9cb19cbbd6fb3fcfa05fd1", "student-2", lifecycle.RespondParams{
			Message:       "been through this exact crash",
			EstimatedTime: 1,
		}).
		Return(fixture, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/:requestID/responses", identify("student-2"), s.submitResponse)

	body := `{"message":"been through this exact crash","estimated_time":1}`
	req := httptest.NewRequest("POST", "/5e9cb19cbbd6fb3fcfa05fd1/responses", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Result ResponseView `json:"result"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resp-1", resp.Result.ID)
	assert.Equal(t, "pending", resp.Result.Status)
	assert.True(t, resp.Result.IsOwnResponse)
}

func TestAcceptResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, engine, _ := newTestServer(ctl)
	owner := pseudonym(t, "student-1")
	fixture := openRequestFixture(owner)
	fixture.Status = schema.RequestInProgress
	accepted := "resp-1"
	fixture.AcceptedResponseID = &accepted

	engine.EXPECT().
		AcceptResponse(gomock.Any(), fixture.ID.Hex(), "resp-1", "student-1").
		Return(fixture, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/:requestID/responses/:responseID/accept", identify("student-1"), s.acceptResponse)

	req := httptest.NewRequest("PATCH", "/"+fixture.ID.Hex()+"/responses/resp-1/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result RequestView `json:"result"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "in_progress", resp.Result.Status)
	if assert.NotNil(t, resp.Result.AcceptedResponseID) {
		assert.Equal(t, "resp-1", *resp.Result.AcceptedResponseID)
	}
	assert.True(t, resp.Result.IsOwnRequest)
}

func TestAcceptResponseErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		engineErr  error
		wantStatus int
		wantCode   int64
	}{
		{"not owner", &lifecycle.AuthorizationError{}, http.StatusForbidden, 1201},
		{"unknown response", &lifecycle.NotFoundError{Resource: "response"}, http.StatusNotFound, 1200},
		{"already accepted", &lifecycle.BusinessRuleError{Reason: "request is not open"}, http.StatusUnprocessableEntity, 1202},
		{"lost race", &lifecycle.ConflictError{Reason: "request was changed by a concurrent call"}, http.StatusConflict, 1203},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			s, engine, _ := newTestServer(ctl)
			engine.EXPECT().
				AcceptResponse(gomock.Any(), "5e9cb19cbbd6fb3fcfa05fd1", "resp-1", "student-1").
				Return(nil, tc.engineErr).Times(1)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.PATCH("/:requestID/responses/:responseID/accept", identify("student-1"), s.acceptResponse)

			req := httptest.NewRequest("PATCH", "/5e9cb19cbbd6fb3fcfa05fd1/responses/resp-1/accept", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)

			var resp ErrorResponse
			assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.Code)
		})
	}
}

func TestCompleteRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, engine, _ := newTestServer(ctl)
	owner := pseudonym(t, "student-1")
	fixture := openRequestFixture(owner)
	fixture.Status = schema.RequestCompleted
	fixture.Rating = 5
	fixture.Feedback = "solved in twenty minutes"

	engine.EXPECT().
		Complete(gomock.Any(), fixture.ID.Hex(), "student-1", lifecycle.CompleteParams{
			Rating:   5,
			Feedback: "solved in twenty minutes",
		}).
		Return(fixture, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/:requestID/complete", identify("student-1"), s.completeRequest)

	body := `{"rating":5,"feedback":"solved in twenty minutes"}`
	req := httptest.NewRequest("PATCH", "/"+fixture.ID.Hex()+"/complete", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result RequestView `json:"result"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Result.Status)
	assert.Equal(t, 5, resp.Result.Rating)
}

func TestCancelRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, engine, _ := newTestServer(ctl)
	owner := pseudonym(t, "student-1")
	fixture := openRequestFixture(owner)
	fixture.Status = schema.RequestCancelled

	engine.EXPECT().
		Cancel(gomock.Any(), fixture.ID.Hex(), "student-1").
		Return(fixture, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/:requestID/cancel", identify("student-1"), s.cancelRequest)

	req := httptest.NewRequest("PATCH", "/"+fixture.ID.Hex()+"/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result RequestView `json:"result"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Result.Status)
}
