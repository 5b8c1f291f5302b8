package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusaid/campusaid-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	DuplicateKeyCode = 11000
)

var (
	ErrRequestNotFound = fmt.Errorf("help request not found")
)

// HelpStore - interface for the marketplace persistence operations
type HelpStore interface {
	HelpRequestOperator
	SearchOperator
	Closer
	Pinger
}

// HelpRequestOperator owns the request aggregate: plain CRUD plus the
// conditional mutations the lifecycle engine races through.
type HelpRequestOperator interface {
	CreateRequest(ctx context.Context, req *schema.HelpRequest) (*schema.HelpRequest, error)
	GetRequest(ctx context.Context, requestID string) (*schema.HelpRequest, error)
	IncrementViewCount(ctx context.Context, requestID string) error
	AppendResponse(ctx context.Context, requestID string, resp schema.HelpResponse, now time.Time) (bool, error)
	AcceptResponse(ctx context.Context, requestID, responseID, ownerAnonymousID string, now time.Time) (bool, error)
	CompleteRequest(ctx context.Context, requestID, ownerAnonymousID string, rating int, feedback string, now time.Time) (bool, error)
	CancelRequest(ctx context.Context, requestID, ownerAnonymousID string, now time.Time) (bool, error)
}

// SearchOperator serves the read paths that bypass the lifecycle engine.
type SearchOperator interface {
	SearchRequests(ctx context.Context, filter SearchFilter, sort SortKey, page Pagination) ([]schema.HelpRequest, int64, error)
	TrendingSkills(ctx context.Context, windowDays, limit int) ([]SkillCount, error)
	UserStats(ctx context.Context, anonymousID string) (*UserStats, error)
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewHelpStore - return mongo db operations
func NewHelpStore(client *mongo.Client, database string) HelpStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
