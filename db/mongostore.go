package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"nexustap/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists the ledger in a MongoDB collection, one document per
// address. Unlike FileStore, the read-modify-write in Update is not atomic
// against concurrent writers to the same address.
type MongoStore struct {
	client *mongo.Client
	users  *mongo.Collection
}

// extractDBName parses the database name from the URI, defaulting to "nexustap"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "nexustap"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:]
	}
	return "nexustap"
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping
func NewMongoStore(uri string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	return &MongoStore{
		client: client,
		users:  client.Database(dbName).Collection("users"),
	}, nil
}

// LoadAll returns every persisted record keyed by address
func (s *MongoStore) LoadAll(ctx context.Context) (map[string]*models.UserRecord, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*models.UserRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make(map[string]*models.UserRecord, len(records))
	for _, rec := range records {
		users[rec.Address] = rec
	}
	return users, nil
}

// Get returns the record for address, or (nil, nil) when none exists
func (s *MongoStore) Get(ctx context.Context, address string) (*models.UserRecord, error) {
	var rec models.UserRecord
	err := s.users.FindOne(ctx, bson.M{"address": address}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", address, err)
	}
	return &rec, nil
}

// Save upserts the record for address
func (s *MongoStore) Save(ctx context.Context, address string, rec *models.UserRecord) error {
	_, err := s.users.ReplaceOne(ctx, bson.M{"address": address}, rec,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save user %s: %w", address, err)
	}
	return nil
}

// Update fetches or creates the record for address, applies mutate and
// persists the result
func (s *MongoStore) Update(ctx context.Context, address string, mutate func(*models.UserRecord) error) (*models.UserRecord, error) {
	rec, err := s.Get(ctx, address)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = models.NewUserRecord(address, time.Now())
	}
	if err := mutate(rec); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, address, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
