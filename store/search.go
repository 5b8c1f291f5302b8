package store

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusaid/campusaid-api/schema"
)

type SortKey string

const (
	SortNewest        SortKey = "newest"
	SortOldest        SortKey = "oldest"
	SortUrgencyFirst  SortKey = "urgency"
	SortShortestTime  SortKey = "shortest_time"
	SortMostResponses SortKey = "most_responses"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortOldest, SortUrgencyFirst, SortShortestTime, SortMostResponses:
		return true
	}
	return false
}

// SearchFilter narrows the open-request listing. The open + unexpired
// restriction is implicit and always applied.
type SearchFilter struct {
	Query            string
	Skills           []string
	Urgencies        []schema.UrgencyLevel
	RemoteOnly       bool
	MaxEstimatedTime int
}

type Pagination struct {
	Page    int
	PerPage int
}

const (
	defaultPerPage = 20
	maxPerPage     = 50
)

func (p Pagination) normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	return p
}

// SearchRequests returns one page of open, unexpired requests matching
// the filter, plus the total match count. Every sort key ends with
// created_at so the order is total and stable across pages.
func (m *mongoDB) SearchRequests(ctx context.Context, filter SearchFilter, sort SortKey, page Pagination) ([]schema.HelpRequest, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	query := searchQuery(filter, time.Now().UTC())

	total, err := c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	page = page.normalize()
	pipeline := []bson.M{
		{"$match": query},
	}
	if sort == SortUrgencyFirst {
		pipeline = append(pipeline, aggStageUrgencyWeight())
	}
	pipeline = append(pipeline,
		bson.M{"$sort": sortOrder(sort)},
		bson.M{"$skip": int64((page.Page - 1) * page.PerPage)},
		bson.M{"$limit": int64(page.PerPage)},
	)

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}

	requests := make([]schema.HelpRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func searchQuery(filter SearchFilter, now time.Time) bson.M {
	query := bson.M{
		"status":     schema.RequestOpen,
		"expires_at": bson.M{"$gt": now},
	}

	if filter.Query != "" {
		pattern := primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Query),
			Options: "i",
		}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"tags": pattern},
		}
	}

	if len(filter.Skills) > 0 {
		query["skills_needed"] = bson.M{"$in": filter.Skills}
	}

	if len(filter.Urgencies) > 0 {
		query["urgency_level"] = bson.M{"$in": filter.Urgencies}
	}

	if filter.RemoteOnly {
		query["is_remote"] = true
	}

	if filter.MaxEstimatedTime > 0 {
		query["estimated_time"] = bson.M{"$lte": filter.MaxEstimatedTime}
	}

	return query
}

// aggStageUrgencyWeight maps the urgency enum to a numeric weight so the
// urgency-first sort is a single store-side order.
func aggStageUrgencyWeight() bson.M {
	branches := bson.A{}
	for level, weight := range schema.UrgencyWeights {
		branches = append(branches, bson.M{
			"case": bson.M{"$eq": bson.A{"$urgency_level", level}},
			"then": weight,
		})
	}
	return bson.M{
		"$addFields": bson.M{
			"urgency_weight": bson.M{
				"$switch": bson.M{
					"branches": branches,
					"default":  0,
				},
			},
		},
	}
}

func sortOrder(sort SortKey) bson.D {
	switch sort {
	case SortOldest:
		return bson.D{{Key: "created_at", Value: 1}}
	case SortUrgencyFirst:
		return bson.D{{Key: "urgency_weight", Value: -1}, {Key: "created_at", Value: -1}}
	case SortShortestTime:
		return bson.D{{Key: "estimated_time", Value: 1}, {Key: "created_at", Value: -1}}
	case SortMostResponses:
		return bson.D{{Key: "response_count", Value: -1}, {Key: "created_at", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}
