package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusaid/campusaid-api/schema"
	"github.com/campusaid/campusaid-api/store"
)

const (
	defaultTrendWindowDays = 7
	maxTrendWindowDays     = 90
	defaultTrendLimit      = 10
	maxTrendLimit          = 50
)

// searchRequests is the API for listing open requests with filters,
// sorting and pagination. Search bypasses the lifecycle engine and goes
// straight to the store.
func (s *Server) searchRequests(c *gin.Context) {
	filter := store.SearchFilter{
		Query:      strings.TrimSpace(c.Query("query")),
		Skills:     splitParam(c.Query("skills")),
		RemoteOnly: c.Query("remote") == "true",
	}

	for _, u := range splitParam(c.Query("urgency")) {
		level := schema.UrgencyLevel(u)
		if !level.Valid() {
			abortWithEncoding(c, http.StatusBadRequest,
				errorWithMessage(errorInvalidParameters, "unknown urgency level: "+u))
			return
		}
		filter.Urgencies = append(filter.Urgencies, level)
	}

	if maxTime := c.Query("max_time"); maxTime != "" {
		v, err := strconv.Atoi(maxTime)
		if err != nil || v < 1 {
			abortWithEncoding(c, http.StatusBadRequest,
				errorWithMessage(errorInvalidParameters, "max_time must be a positive integer"))
			return
		}
		filter.MaxEstimatedTime = v
	}

	sort := store.SortNewest
	if raw := c.Query("sort"); raw != "" {
		sort = store.SortKey(raw)
		if !sort.Valid() {
			abortWithEncoding(c, http.StatusBadRequest,
				errorWithMessage(errorInvalidParameters, "unknown sort key: "+raw))
			return
		}
	}

	page := store.Pagination{
		Page:    intQuery(c, "page", 1),
		PerPage: intQuery(c, "per_page", 0),
	}

	requests, total, err := s.store.SearchRequests(c.Request.Context(), filter, sort, page)
	if shouldInterupt(err, c) {
		return
	}

	viewerID := s.viewerID(c)
	now := time.Now().UTC()
	views := make([]RequestView, 0, len(requests))
	for i := range requests {
		// listings are summaries; responses are only exposed on the
		// single-request read
		view := shapeRequest(&requests[i], viewerID, false, now)
		view.IsOwnRequest = viewerID != "" && viewerID == requests[i].RequesterAnonymousID
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"requests": views,
			"total":    total,
		},
	})
}

// trendingSkills is the API for the rolling-window skill frequency count
func (s *Server) trendingSkills(c *gin.Context) {
	windowDays := intQuery(c, "window_days", defaultTrendWindowDays)
	if windowDays < 1 || windowDays > maxTrendWindowDays {
		windowDays = defaultTrendWindowDays
	}

	limit := intQuery(c, "limit", defaultTrendLimit)
	if limit < 1 || limit > maxTrendLimit {
		limit = defaultTrendLimit
	}

	skills, err := s.store.TrendingSkills(c.Request.Context(), windowDays, limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": skills,
	})
}

// myStats is the API for a caller's own request/response counts
func (s *Server) myStats(c *gin.Context) {
	viewerID := s.viewerID(c)
	if viewerID == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorUnauthenticated)
		return
	}

	stats, err := s.store.UserStats(c.Request.Context(), viewerID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": stats,
	})
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
