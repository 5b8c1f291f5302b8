package lifecycle

import (
	"strings"
	"time"

	"github.com/campusaid/campusaid-api/schema"
)

const (
	titleMaxLength       = 200
	descriptionMaxLength = 2000
	messageMinLength     = 10
	messageMaxLength     = 1000
	feedbackMaxLength    = 2000
	estimatedTimeMin     = 1
	estimatedTimeMax     = 240
	tagsMax              = 10

	// DefaultRequestTTL is applied when the creator does not supply an
	// expiry. Client-supplied expiries are clamped to [MinRequestTTL,
	// MaxRequestTTL].
	DefaultRequestTTL = 7 * 24 * time.Hour
	MinRequestTTL     = time.Hour
	MaxRequestTTL     = 30 * 24 * time.Hour
)

// CreateRequestParams is the creation payload. The caller identity is
// carried separately and never stored.
type CreateRequestParams struct {
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	SkillsNeeded  []string            `json:"skills_needed"`
	UrgencyLevel  schema.UrgencyLevel `json:"urgency_level"`
	EstimatedTime int                 `json:"estimated_time"`
	IsRemote      bool                `json:"is_remote"`
	CollegeHint   string              `json:"college_hint"`
	Tags          []string            `json:"tags"`
	ExpiresAt     *time.Time          `json:"expires_at"`
}

type RespondParams struct {
	Message          string `json:"message"`
	ProposedSolution string `json:"proposed_solution"`
	EstimatedTime    int    `json:"estimated_time"`
}

type CompleteParams struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

func (p *CreateRequestParams) validate() error {
	p.Title = strings.TrimSpace(p.Title)
	if l := len(p.Title); l < 1 || l > titleMaxLength {
		return &ValidationError{Field: "title", Reason: "must be 1-200 characters"}
	}

	p.Description = strings.TrimSpace(p.Description)
	if l := len(p.Description); l < 1 || l > descriptionMaxLength {
		return &ValidationError{Field: "description", Reason: "must be 1-2000 characters"}
	}

	p.SkillsNeeded = dedupeNonEmpty(p.SkillsNeeded)
	if len(p.SkillsNeeded) == 0 {
		return &ValidationError{Field: "skills_needed", Reason: "at least one skill is required"}
	}

	if !p.UrgencyLevel.Valid() {
		return &ValidationError{Field: "urgency_level", Reason: "must be one of low, medium, high, urgent"}
	}

	if p.EstimatedTime < estimatedTimeMin || p.EstimatedTime > estimatedTimeMax {
		return &ValidationError{Field: "estimated_time", Reason: "must be 1-240 hours"}
	}

	p.Tags = dedupeNonEmpty(p.Tags)
	if len(p.Tags) > tagsMax {
		return &ValidationError{Field: "tags", Reason: "at most 10 tags"}
	}

	return nil
}

func (p *RespondParams) validate() error {
	p.Message = strings.TrimSpace(p.Message)
	if l := len(p.Message); l < messageMinLength || l > messageMaxLength {
		return &ValidationError{Field: "message", Reason: "must be 10-1000 characters"}
	}

	if p.EstimatedTime < estimatedTimeMin || p.EstimatedTime > estimatedTimeMax {
		return &ValidationError{Field: "estimated_time", Reason: "must be 1-240 hours"}
	}

	return nil
}

func (p *CompleteParams) validate() error {
	if p.Rating < 1 || p.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be 1-5"}
	}

	if len(p.Feedback) > feedbackMaxLength {
		return &ValidationError{Field: "feedback", Reason: "must be at most 2000 characters"}
	}

	return nil
}

// clampExpiry resolves the request expiry: default TTL when absent,
// otherwise bounded to the allowed window.
func clampExpiry(now time.Time, requested *time.Time) time.Time {
	if requested == nil {
		return now.Add(DefaultRequestTTL)
	}
	if min := now.Add(MinRequestTTL); requested.Before(min) {
		return min
	}
	if max := now.Add(MaxRequestTTL); requested.After(max) {
		return max
	}
	return *requested
}

func dedupeNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
