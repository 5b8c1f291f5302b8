package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusaid/campusaid-api/schema"
)

// CreateRequest inserts a new help request document
func (m *mongoDB) CreateRequest(ctx context.Context, req *schema.HelpRequest) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	result, err := c.InsertOne(ctx, req)
	if err != nil {
		return nil, err
	}

	req.ID = result.InsertedID.(primitive.ObjectID)
	return req, nil
}

// GetRequest finds a help request by id
func (m *mongoDB) GetRequest(ctx context.Context, requestID string) (*schema.HelpRequest, error) {
	oid, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return nil, ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	var req schema.HelpRequest
	if err := c.FindOne(ctx, bson.M{"_id": oid}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &req, nil
}

// IncrementViewCount bumps the view counter of a request. Callers treat
// this as best effort.
func (m *mongoDB) IncrementViewCount(ctx context.Context, requestID string) error {
	oid, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)
	_, err = c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"view_count": 1}})
	return err
}

// AppendResponse pushes a response onto an open, unexpired request in a
// single conditional update. The filter excludes requests that already
// carry a response from the same responder, so two concurrent appends
// from one caller cannot both land, and two distinct responders never
// overwrite each other. A false return means the precondition did not
// match; nothing was written.
func (m *mongoDB) AppendResponse(ctx context.Context, requestID string, resp schema.HelpResponse, now time.Time) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return false, ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	query := bson.M{
		"_id":        oid,
		"status":     schema.RequestOpen,
		"expires_at": bson.M{"$gt": now},
		"responses.responder_anonymous_id": bson.M{
			"$ne": resp.ResponderAnonymousID,
		},
	}
	update := bson.M{
		"$push": bson.M{"responses": resp},
		"$inc":  bson.M{"response_count": 1},
		"$set":  bson.M{"last_activity_at": now},
	}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		return false, err
	}

	return result.MatchedCount == 1, nil
}

// AcceptResponse is the compare-and-swap behind first-writer-wins: it
// moves the request from open to in_progress, records the accepted
// response id and marks that one embedded response accepted, all in one
// update whose precondition pins status == open. Of N concurrent calls
// exactly one matches; the rest return false and must not retry the
// write.
func (m *mongoDB) AcceptResponse(ctx context.Context, requestID, responseID, ownerAnonymousID string, now time.Time) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return false, ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	query := bson.M{
		"_id":                    oid,
		"requester_anonymous_id": ownerAnonymousID,
		"status":                 schema.RequestOpen,
		"expires_at":             bson.M{"$gt": now},
		"responses": bson.M{
			"$elemMatch": bson.M{
				"id":     responseID,
				"status": schema.ResponsePending,
			},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"status":                  schema.RequestInProgress,
			"accepted_response_id":    responseID,
			"responses.$.status":      schema.ResponseAccepted,
			"responses.$.accepted_at": now,
			"last_activity_at":        now,
		},
	}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		return false, err
	}

	return result.MatchedCount == 1, nil
}

// CompleteRequest closes an in-progress request, storing the rating and
// feedback the creator left for the helper.
func (m *mongoDB) CompleteRequest(ctx context.Context, requestID, ownerAnonymousID string, rating int, feedback string, now time.Time) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return false, ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	query := bson.M{
		"_id":                    oid,
		"requester_anonymous_id": ownerAnonymousID,
		"status":                 schema.RequestInProgress,
		"expires_at":             bson.M{"$gt": now},
	}
	update := bson.M{
		"$set": bson.M{
			"status":           schema.RequestCompleted,
			"rating":           rating,
			"feedback":         feedback,
			"completed_at":     now,
			"last_activity_at": now,
		},
	}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		return false, err
	}

	return result.MatchedCount == 1, nil
}

// CancelRequest is the creator-initiated exit from open or in_progress.
func (m *mongoDB) CancelRequest(ctx context.Context, requestID, ownerAnonymousID string, now time.Time) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return false, ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HelpRequestCollection)

	query := bson.M{
		"_id":                    oid,
		"requester_anonymous_id": ownerAnonymousID,
		"status": bson.M{
			"$in": bson.A{schema.RequestOpen, schema.RequestInProgress},
		},
		"expires_at": bson.M{"$gt": now},
	}
	update := bson.M{
		"$set": bson.M{
			"status":           schema.RequestCancelled,
			"last_activity_at": now,
		},
	}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		return false, err
	}

	return result.MatchedCount == 1, nil
}
