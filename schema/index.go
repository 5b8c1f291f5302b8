package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexHelpRequestCollection())
}

// IndexHelpRequestCollection prepares the indexes the request store
// relies on: the TTL reaper on expires_at, the search access paths, and
// the per-user lookups behind stats.
func (m *MongoDBIndexer) IndexHelpRequestCollection() error {
	if err := m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys:    bson.M{"expires_at": 1},
		Options: options.Index().SetExpireAfterSeconds(0),
	}); err != nil {
		return err
	}

	if err := m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.M{"skills_needed": 1},
	}); err != nil {
		return err
	}

	if err := m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.M{"requester_anonymous_id": 1},
	}); err != nil {
		return err
	}

	return m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.M{"responses.responder_anonymous_id": 1},
	})
}
