package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	HelpRequestCollection = "helpRequest"
)

type RequestStatus string

const (
	RequestOpen       RequestStatus = "open"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
	RequestExpired    RequestStatus = "expired"
)

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyUrgent UrgencyLevel = "urgent"
)

// UrgencyWeights orders urgency levels for the urgency-first sort.
var UrgencyWeights = map[UrgencyLevel]int{
	UrgencyLow:    1,
	UrgencyMedium: 2,
	UrgencyHigh:   3,
	UrgencyUrgent: 4,
}

func (u UrgencyLevel) Valid() bool {
	_, ok := UrgencyWeights[u]
	return ok
}

type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "pending"
	ResponseAccepted ResponseStatus = "accepted"
)

// HelpResponse is embedded in its parent HelpRequest. Responses are
// append-only: once stored, only Status and AcceptedAt may change, and
// only for the single response that wins the accept.
type HelpResponse struct {
	ID                   string         `bson:"id" json:"id"`
	ResponderAnonymousID string         `bson:"responder_anonymous_id" json:"responder_anonymous_id"`
	Message              string         `bson:"message" json:"message"`
	ProposedSolution     string         `bson:"proposed_solution,omitempty" json:"proposed_solution,omitempty"`
	EstimatedTime        int            `bson:"estimated_time" json:"estimated_time"`
	Status               ResponseStatus `bson:"status" json:"status"`
	CreatedAt            time.Time      `bson:"created_at" json:"created_at"`
	AcceptedAt           *time.Time     `bson:"accepted_at,omitempty" json:"accepted_at,omitempty"`
}

// HelpRequest is the aggregate root. It only ever carries the derived
// pseudonym of its creator; the real user id is never stored.
type HelpRequest struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequesterAnonymousID string             `bson:"requester_anonymous_id" json:"requester_anonymous_id"`
	Title                string             `bson:"title" json:"title"`
	Description          string             `bson:"description" json:"description"`
	SkillsNeeded         []string           `bson:"skills_needed" json:"skills_needed"`
	UrgencyLevel         UrgencyLevel       `bson:"urgency_level" json:"urgency_level"`
	EstimatedTime        int                `bson:"estimated_time" json:"estimated_time"`
	IsRemote             bool               `bson:"is_remote" json:"is_remote"`
	CollegeHint          string             `bson:"college_hint,omitempty" json:"college_hint,omitempty"`
	Tags                 []string           `bson:"tags" json:"tags"`
	Status               RequestStatus      `bson:"status" json:"status"`
	Responses            []HelpResponse     `bson:"responses" json:"responses"`
	ResponseCount        int                `bson:"response_count" json:"response_count"`
	AcceptedResponseID   *string            `bson:"accepted_response_id,omitempty" json:"accepted_response_id,omitempty"`
	ViewCount            int64              `bson:"view_count" json:"view_count"`
	Rating               int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Feedback             string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt            time.Time          `bson:"created_at" json:"created_at"`
	ExpiresAt            time.Time          `bson:"expires_at" json:"expires_at"`
	LastActivityAt       time.Time          `bson:"last_activity_at" json:"last_activity_at"`
	CompletedAt          *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// Expired reports whether the request has passed its TTL. The storage
// layer reaps expired documents eventually; until then every read path
// must treat them as gone.
func (r *HelpRequest) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// EffectiveStatus returns the status a caller should observe: an open or
// in-progress request past its TTL reads as expired even before the
// physical record is removed.
func (r *HelpRequest) EffectiveStatus(now time.Time) RequestStatus {
	if (r.Status == RequestOpen || r.Status == RequestInProgress) && r.Expired(now) {
		return RequestExpired
	}
	return r.Status
}

// HasResponseFrom reports whether the given responder already has a
// response on this request.
func (r *HelpRequest) HasResponseFrom(responderAnonymousID string) bool {
	for i := range r.Responses {
		if r.Responses[i].ResponderAnonymousID == responderAnonymousID {
			return true
		}
	}
	return false
}

// FindResponse returns the embedded response with the given id, or nil.
func (r *HelpRequest) FindResponse(responseID string) *HelpResponse {
	for i := range r.Responses {
		if r.Responses[i].ID == responseID {
			return &r.Responses[i]
		}
	}
	return nil
}
