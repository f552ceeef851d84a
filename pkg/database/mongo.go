package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tair/boycott-service/pkg/logger"
)

// ErrNotConnected is returned when the store was never able to create a client
var ErrNotConnected = errors.New("document store is not connected")

// Config holds document store configuration
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// MongoStore is the process-wide storage connection shared by all handlers.
// It is safe for concurrent use.
type MongoStore struct {
	mu       sync.RWMutex
	client   *mongo.Client
	database string
}

// NewMongoStore connects to MongoDB once. Connection failures are logged, not
// returned: the store is still usable as a handle and requests fail at the
// point of use until the driver can reach the server.
func NewMongoStore(ctx context.Context, cfg Config) *MongoStore {
	store := &MongoStore{database: cfg.Database}

	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(25).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to connect to MongoDB")
		return store
	}
	store.client = client

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to reach MongoDB")
		return store
	}

	logger.Logger.Info().
		Str("database", cfg.Database).
		Msg("Connected to MongoDB")
	return store
}

// NewMongoStoreFromClient wraps an existing client
func NewMongoStoreFromClient(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{client: client, database: database}
}

// Collection returns a handle to the named collection
func (s *MongoStore) Collection(name string) (*mongo.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.client == nil {
		return nil, ErrNotConnected
	}
	return s.client.Database(s.database).Collection(name), nil
}

// Ping verifies the primary is reachable
func (s *MongoStore) Ping(ctx context.Context) error {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()

	if client == nil {
		return ErrNotConnected
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Disconnect closes the client; safe to call on a store that never connected
func (s *MongoStore) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	return err
}
