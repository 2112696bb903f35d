package database

import (
	"context"
	"fmt"
	"time"

	"cinema-users/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo owns the client and exposes the application database.
type Mongo struct {
	client *mongo.Client
	DB     *mongo.Database
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// InitMongo connects to config.MongoURI and selects config.Name.
func InitMongo(config utils.DatabaseConfig) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(config.MongoURI).
		SetConnectTimeout(5 * time.Second).
		SetMaxConnIdleTime(5 * time.Minute)
	if config.MaxConns > 0 {
		opts.SetMaxPoolSize(uint64(config.MaxConns))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	return &Mongo{client: client, DB: client.Database(config.Name)}, nil
}
