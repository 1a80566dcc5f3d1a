// internal/common/database/mongo.go
package database

import (
	"context"
	"fmt"

	"admissions-backend/internal/common/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient wraps the MongoDB connection.
type MongoClient struct {
	Client   *mongo.Client
	database string
}

// NewMongo creates a new MongoDB client and verifies the connection.
func NewMongo(ctx context.Context, cfg config.MongoConfig) (*MongoClient, error) {
	ctx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Timeout))
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return &MongoClient{Client: client, database: cfg.Database}, nil
}

// Ping tests the database connection.
func (c *MongoClient) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (c *MongoClient) Close(ctx context.Context) error {
	if c.Client != nil {
		return c.Client.Disconnect(ctx)
	}
	return nil
}

// Collection returns a handle to the named collection in the configured database.
func (c *MongoClient) Collection(name string) *mongo.Collection {
	return c.Client.Database(c.database).Collection(name)
}

// Database returns the underlying database handle for compatibility.
func (c *MongoClient) Database() *mongo.Database {
	return c.Client.Database(c.database)
}
