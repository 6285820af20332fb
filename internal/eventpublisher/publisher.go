// Package eventpublisher announces committed ledger entries on a Redis stream.
package eventpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// TransactionCommitted is the type of events emitted after each commit.
const TransactionCommitted = "transaction.committed"

// Event is the envelope written to the stream.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// TransactionCommittedEvent describes a committed ledger entry and the resulting balance.
type TransactionCommittedEvent struct {
	Transaction domain.Transaction `json:"transaction"`
	Balance     decimal.Decimal    `json:"balance"`
}

// RedisPublisher writes events with XADD.
type RedisPublisher struct {
	client *redis.Client
	stream string
}

// NewRedis returns RedisPublisher writing to the given stream.
func NewRedis(client *redis.Client, stream string) *RedisPublisher {
	return &RedisPublisher{client: client, stream: stream}
}

// TransactionCommitted publishes a TransactionCommittedEvent.
func (p *RedisPublisher) TransactionCommitted(ctx context.Context, t domain.Transaction, balance decimal.Decimal) error {
	event := Event{
		Type:      TransactionCommitted,
		Timestamp: time.Now().UTC(),
		Data:      TransactionCommittedEvent{Transaction: t, Balance: balance},
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"event":      payload,
			"account_id": t.AccountID,
		},
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Noop discards all events. It is used when no Redis address is configured.
type Noop struct{}

// TransactionCommitted does nothing.
func (Noop) TransactionCommitted(context.Context, domain.Transaction, decimal.Decimal) error {
	return nil
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return rdb, nil
}
