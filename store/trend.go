package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/campusaid/campusaid-api/schema"
)

// SkillCount is one entry of the trending-skills ranking.
type SkillCount struct {
	Skill string `bson:"_id" json:"skill"`
	Count int64  `bson:"count" json:"count"`
}

// UserStats are two independent counts, no join involved.
type UserStats struct {
	RequestsCreated int64 `json:"requests_created"`
	ResponsesGiven  int64 `json:"responses_given"`
}

// TrendingSkills counts skill occurrences across open requests created
// within the window. Ties are broken by skill name so the ranking is
// deterministic for a fixed snapshot.
func (m *mongoDB) TrendingSkills(ctx context.Context, windowDays, limit int) ([]SkillCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -windowDays)
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":     schema.RequestOpen,
			"expires_at": bson.M{"$gt": now},
			"created_at": bson.M{"$gte": since},
		}},
		{"$unwind": "$skills_needed"},
		{"$group": bson.M{
			"_id":   "$skills_needed",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
		{"$limit": int64(limit)},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	skills := make([]SkillCount, 0)
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, err
	}

	return skills, nil
}

// UserStats reports how many requests the pseudonym created and how
// many responses it gave across all requests.
func (m *mongoDB) UserStats(ctx context.Context, anonymousID string) (*UserStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	created, err := c.CountDocuments(ctx, bson.M{"requester_anonymous_id": anonymousID})
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$match": bson.M{"responses.responder_anonymous_id": anonymousID}},
		{"$unwind": "$responses"},
		{"$match": bson.M{"responses.responder_anonymous_id": anonymousID}},
		{"$count": "count"},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var counts []struct {
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}

	stats := &UserStats{RequestsCreated: created}
	if len(counts) > 0 {
		stats.ResponsesGiven = counts[0].Count
	}

	return stats, nil
}
