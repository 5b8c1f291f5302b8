// Package lifecycle implements the help-request state machine: create,
// respond, accept-response, complete and cancel, with authorization
// re-derived from the caller's pseudonym on every call. The engine keeps
// no state of its own; every race is settled by the store's conditional
// writes, so any number of replicas can run it concurrently.
package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campusaid/campusaid-api/identity"
	"github.com/campusaid/campusaid-api/schema"
	"github.com/campusaid/campusaid-api/store"
)

// Store is the persistence surface the engine needs. The boolean result
// of the conditional mutations reports whether the precondition matched;
// a false return never means a partial write.
type Store interface {
	CreateRequest(ctx context.Context, req *schema.HelpRequest) (*schema.HelpRequest, error)
	GetRequest(ctx context.Context, requestID string) (*schema.HelpRequest, error)
	IncrementViewCount(ctx context.Context, requestID string) error
	AppendResponse(ctx context.Context, requestID string, resp schema.HelpResponse, now time.Time) (bool, error)
	AcceptResponse(ctx context.Context, requestID, responseID, ownerAnonymousID string, now time.Time) (bool, error)
	CompleteRequest(ctx context.Context, requestID, ownerAnonymousID string, rating int, feedback string, now time.Time) (bool, error)
	CancelRequest(ctx context.Context, requestID, ownerAnonymousID string, now time.Time) (bool, error)
}

// Caller is the identity handed over by the authentication boundary for
// a single inbound call. It is consumed for derivation and never stored.
type Caller struct {
	RealID        string
	EmailVerified bool
}

type Engine struct {
	store      Store
	anonymizer *identity.Anonymizer

	// now is replaceable in tests
	now func() time.Time
}

func NewEngine(s Store, a *identity.Anonymizer) *Engine {
	return &Engine{
		store:      s,
		anonymizer: a,
		now:        time.Now,
	}
}

// Create validates the payload and persists a new open request tagged
// with the creator's pseudonym.
func (e *Engine) Create(ctx context.Context, caller Caller, params CreateRequestParams) (*schema.HelpRequest, error) {
	if !caller.EmailVerified {
		return nil, &AuthenticationError{Reason: "a verified account is required to create requests"}
	}

	requesterID, err := e.anonymizer.Derive(caller.RealID)
	if err != nil {
		return nil, &AuthenticationError{Reason: "missing caller identity"}
	}

	if err := params.validate(); err != nil {
		return nil, err
	}

	now := e.now().UTC()
	req := &schema.HelpRequest{
		RequesterAnonymousID: requesterID,
		Title:                params.Title,
		Description:          params.Description,
		SkillsNeeded:         params.SkillsNeeded,
		UrgencyLevel:         params.UrgencyLevel,
		EstimatedTime:        params.EstimatedTime,
		IsRemote:             params.IsRemote,
		CollegeHint:          params.CollegeHint,
		Tags:                 params.Tags,
		Status:               schema.RequestOpen,
		Responses:            []schema.HelpResponse{},
		ResponseCount:        0,
		CreatedAt:            now,
		ExpiresAt:            clampExpiry(now, params.ExpiresAt),
		LastActivityAt:       now,
	}

	return e.store.CreateRequest(ctx, req)
}

// Get loads one request for display and bumps its view counter. The
// counter is a non-critical side effect: a failed bump never fails the
// read. Expired requests are still returned here, presented with their
// effective status, so viewers can see why a request is gone.
func (e *Engine) Get(ctx context.Context, requestID string) (*schema.HelpRequest, error) {
	req, err := e.store.GetRequest(ctx, requestID)
	if err != nil {
		if err == store.ErrRequestNotFound {
			return nil, &NotFoundError{Resource: "help request"}
		}
		return nil, err
	}

	_ = e.store.IncrementViewCount(ctx, requestID)

	req.Status = req.EffectiveStatus(e.now().UTC())
	return req, nil
}

// Respond appends a pending response from the caller. Many distinct
// responders may call this concurrently against the same request; the
// store's guarded push keeps the appends from losing updates, and also
// keeps one caller's concurrent duplicates from both landing.
func (e *Engine) Respond(ctx context.Context, requestID string, callerRealID string, params RespondParams) (*schema.HelpResponse, error) {
	responderID, err := e.anonymizer.Derive(callerRealID)
	if err != nil {
		return nil, &AuthenticationError{Reason: "missing caller identity"}
	}

	if err := params.validate(); err != nil {
		return nil, err
	}

	now := e.now().UTC()
	req, err := e.loadActionable(ctx, requestID, now)
	if err != nil {
		return nil, err
	}

	if req.Status != schema.RequestOpen {
		return nil, &BusinessRuleError{Reason: "request is not open"}
	}
	if responderID == req.RequesterAnonymousID {
		return nil, &BusinessRuleError{Reason: "cannot respond to your own request"}
	}
	if req.HasResponseFrom(responderID) {
		return nil, &BusinessRuleError{Reason: "you have already responded to this request"}
	}

	resp := schema.HelpResponse{
		ID:                   uuid.New().String(),
		ResponderAnonymousID: responderID,
		Message:              params.Message,
		ProposedSolution:     params.ProposedSolution,
		EstimatedTime:        params.EstimatedTime,
		Status:               schema.ResponsePending,
		CreatedAt:            now,
	}

	matched, err := e.store.AppendResponse(ctx, requestID, resp, now)
	if err != nil {
		return nil, err
	}
	if !matched {
		// the precondition held a moment ago; re-read to report what
		// changed underneath us
		return nil, e.explainRespondFailure(ctx, requestID, responderID)
	}

	return &resp, nil
}

// AcceptResponse transitions an open request to in_progress, marking
// exactly one response accepted. First writer wins: the transition is a
// single conditional write keyed on status == open, so of N concurrent
// accepts exactly one succeeds and the rest observe ConflictError.
func (e *Engine) AcceptResponse(ctx context.Context, requestID, responseID, callerRealID string) (*schema.HelpRequest, error) {
	callerID, err := e.anonymizer.Derive(callerRealID)
	if err != nil {
		return nil, &AuthenticationError{Reason: "missing caller identity"}
	}

	now := e.now().UTC()
	req, err := e.loadActionable(ctx, requestID, now)
	if err != nil {
		return nil, err
	}

	if callerID != req.RequesterAnonymousID {
		return nil, &AuthorizationError{}
	}
	if req.Status != schema.RequestOpen {
		return nil, &BusinessRuleError{Reason: "request is not open"}
	}

	target := req.FindResponse(responseID)
	if target == nil {
		return nil, &NotFoundError{Resource: "response"}
	}
	if target.Status != schema.ResponsePending {
		return nil, &BusinessRuleError{Reason: "response is not pending"}
	}

	matched, err := e.store.AcceptResponse(ctx, requestID, responseID, callerID, now)
	if err != nil {
		return nil, err
	}
	if !matched {
		if _, loadErr := e.loadActionable(ctx, requestID, now); loadErr != nil {
			return nil, loadErr
		}
		return nil, &ConflictError{Reason: "request was accepted or closed by a concurrent call"}
	}

	return e.reload(ctx, requestID)
}

// Complete closes an in-progress request with a rating and feedback.
func (e *Engine) Complete(ctx context.Context, requestID, callerRealID string, params CompleteParams) (*schema.HelpRequest, error) {
	callerID, err := e.anonymizer.Derive(callerRealID)
	if err != nil {
		return nil, &AuthenticationError{Reason: "missing caller identity"}
	}

	if err := params.validate(); err != nil {
		return nil, err
	}

	now := e.now().UTC()
	req, err := e.load(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if callerID != req.RequesterAnonymousID {
		return nil, &AuthorizationError{}
	}
	if req.EffectiveStatus(now) != schema.RequestInProgress {
		return nil, &BusinessRuleError{Reason: "request is not in progress"}
	}

	matched, err := e.store.CompleteRequest(ctx, requestID, callerID, params.Rating, params.Feedback, now)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, &ConflictError{Reason: "request state changed before completion"}
	}

	return e.reload(ctx, requestID)
}

// Cancel is the creator-initiated exit from open or in_progress.
func (e *Engine) Cancel(ctx context.Context, requestID, callerRealID string) (*schema.HelpRequest, error) {
	callerID, err := e.anonymizer.Derive(callerRealID)
	if err != nil {
		return nil, &AuthenticationError{Reason: "missing caller identity"}
	}

	now := e.now().UTC()
	req, err := e.load(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if callerID != req.RequesterAnonymousID {
		return nil, &AuthorizationError{}
	}

	status := req.EffectiveStatus(now)
	if status != schema.RequestOpen && status != schema.RequestInProgress {
		return nil, &BusinessRuleError{Reason: "request cannot be cancelled"}
	}

	matched, err := e.store.CancelRequest(ctx, requestID, callerID, now)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, &ConflictError{Reason: "request state changed before cancellation"}
	}

	return e.reload(ctx, requestID)
}

// load maps the store's missing-document sentinel to the typed taxonomy.
func (e *Engine) load(ctx context.Context, requestID string) (*schema.HelpRequest, error) {
	req, err := e.store.GetRequest(ctx, requestID)
	if err != nil {
		if err == store.ErrRequestNotFound {
			return nil, &NotFoundError{Resource: "help request"}
		}
		return nil, err
	}
	return req, nil
}

// loadActionable additionally treats an expired request as missing:
// respond and accept must not reach a request past its TTL even if the
// reaper has not removed it yet.
func (e *Engine) loadActionable(ctx context.Context, requestID string, now time.Time) (*schema.HelpRequest, error) {
	req, err := e.load(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Expired(now) {
		return nil, &NotFoundError{Resource: "help request"}
	}
	return req, nil
}

func (e *Engine) reload(ctx context.Context, requestID string) (*schema.HelpRequest, error) {
	req, err := e.load(ctx, requestID)
	if err != nil {
		return nil, err
	}
	req.Status = req.EffectiveStatus(e.now().UTC())
	return req, nil
}

// explainRespondFailure turns a failed guarded append into the precise
// typed error. The reload is read-only, so a racing writer can only
// change which error is reported, never the stored state.
func (e *Engine) explainRespondFailure(ctx context.Context, requestID, responderID string) error {
	req, err := e.loadActionable(ctx, requestID, e.now().UTC())
	if err != nil {
		return err
	}
	if req.Status != schema.RequestOpen {
		return &BusinessRuleError{Reason: "request is not open"}
	}
	if req.HasResponseFrom(responderID) {
		return &BusinessRuleError{Reason: "you have already responded to this request"}
	}
	return &ConflictError{Reason: "response could not be recorded, request changed concurrently"}
}
