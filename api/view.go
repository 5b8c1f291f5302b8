package api

import (
	"time"

	"github.com/campusaid/campusaid-api/schema"
)

// The view types are the only shapes ever returned to callers. They are
// built from the stored aggregate, which by construction carries no real
// identity, and they annotate ownership for the viewing caller by
// comparing derived pseudonyms.

type ResponseView struct {
	ID                   string     `json:"id"`
	ResponderAnonymousID string     `json:"responder_anonymous_id"`
	Message              string     `json:"message"`
	ProposedSolution     string     `json:"proposed_solution,omitempty"`
	EstimatedTime        int        `json:"estimated_time"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"created_at"`
	AcceptedAt           *time.Time `json:"accepted_at,omitempty"`
	IsOwnResponse        bool       `json:"is_own_response"`
}

type RequestView struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	SkillsNeeded   []string  `json:"skills_needed"`
	UrgencyLevel   string    `json:"urgency_level"`
	EstimatedTime  int       `json:"estimated_time"`
	IsRemote       bool      `json:"is_remote"`
	CollegeHint    string    `json:"college_hint,omitempty"`
	Tags           []string  `json:"tags"`
	Status         string    `json:"status"`
	ResponseCount  int       `json:"response_count"`
	ViewCount      int64     `json:"view_count"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`

	// fields below are only populated for authenticated viewers
	RequesterAnonymousID string         `json:"requester_anonymous_id,omitempty"`
	AcceptedResponseID   *string        `json:"accepted_response_id,omitempty"`
	Rating               int            `json:"rating,omitempty"`
	Feedback             string         `json:"feedback,omitempty"`
	CompletedAt          *time.Time     `json:"completed_at,omitempty"`
	IsOwnRequest         bool           `json:"is_own_request"`
	Responses            []ResponseView `json:"responses,omitempty"`
}

// shapeRequest builds the caller-facing view of a request. viewerID is
// the viewer's derived pseudonym, empty for anonymous readers; detail
// controls whether responses and the pseudonymous ids are included.
func shapeRequest(req *schema.HelpRequest, viewerID string, detail bool, now time.Time) RequestView {
	view := RequestView{
		ID:             req.ID.Hex(),
		Title:          req.Title,
		Description:    req.Description,
		SkillsNeeded:   req.SkillsNeeded,
		UrgencyLevel:   string(req.UrgencyLevel),
		EstimatedTime:  req.EstimatedTime,
		IsRemote:       req.IsRemote,
		CollegeHint:    req.CollegeHint,
		Tags:           req.Tags,
		Status:         string(req.EffectiveStatus(now)),
		ResponseCount:  req.ResponseCount,
		ViewCount:      req.ViewCount,
		CreatedAt:      req.CreatedAt,
		ExpiresAt:      req.ExpiresAt,
		LastActivityAt: req.LastActivityAt,
	}

	if !detail {
		return view
	}

	view.RequesterAnonymousID = req.RequesterAnonymousID
	view.AcceptedResponseID = req.AcceptedResponseID
	view.Rating = req.Rating
	view.Feedback = req.Feedback
	view.CompletedAt = req.CompletedAt
	view.IsOwnRequest = viewerID != "" && viewerID == req.RequesterAnonymousID

	view.Responses = make([]ResponseView, 0, len(req.Responses))
	for i := range req.Responses {
		view.Responses = append(view.Responses, shapeResponse(&req.Responses[i], viewerID))
	}

	return view
}

func shapeResponse(resp *schema.HelpResponse, viewerID string) ResponseView {
	return ResponseView{
		ID:                   resp.ID,
		ResponderAnonymousID: resp.ResponderAnonymousID,
		Message:              resp.Message,
		ProposedSolution:     resp.ProposedSolution,
		EstimatedTime:        resp.EstimatedTime,
		Status:               string(resp.Status),
		CreatedAt:            resp.CreatedAt,
		AcceptedAt:           resp.AcceptedAt,
		IsOwnResponse:        viewerID != "" && viewerID == resp.ResponderAnonymousID,
	}
}
