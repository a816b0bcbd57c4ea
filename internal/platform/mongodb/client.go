// Package mongodb provides the MongoDB connection handle for the process.
//
// The client is constructed once in the composition root and injected into
// every repository that needs it; there is no package-level cached client.
// The caller owns the handle and is responsible for calling Disconnect on
// shutdown.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Config holds MongoDB connection settings.
type Config struct {
	URI      string // connection string
	Database string // database name
}

// LoadConfig reads MongoDB settings from environment variables.
// Both MONGODB_URI and MONGODB_DB are required; a missing value is an error
// the caller should treat as fatal at process start.
func LoadConfig() (Config, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return Config{}, errors.New("MONGODB_URI is required")
	}
	name := os.Getenv("MONGODB_DB")
	if name == "" {
		return Config{}, errors.New("MONGODB_DB is required")
	}
	return Config{URI: uri, Database: name}, nil
}

// Connect opens a MongoDB client and verifies connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}
	slog.Info("MongoDB connection successful", "database", cfg.Database)
	return client, nil
}
