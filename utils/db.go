package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// BSONOptions decodes embedded documents of untyped fields as maps, so stored
// extras encode back to JSON objects.
func BSONOptions() *options.BSONOptions {
	return &options.BSONOptions{DefaultDocumentM: true}
}

// ConnectDB opens the single MongoDB client shared by every request and pings
// the deployment before returning it.
func ConnectDB(ctx context.Context, uri string, timeout time.Duration, logger zerolog.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetBSONOptions(BSONOptions())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info().Msg("pinged deployment, connected to MongoDB")
	return client, nil
}
