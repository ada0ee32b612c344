// Package redis fans realtime events out to connected clients through redis
// pub/sub. Every user has a channel "<prefix>:user:<id>".
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/limopeace/beatlenut-trails-sub002/internal/config"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// NewClient connects to redis and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// wireEvent is the JSON form of domain.Event on the channel and the socket.
type wireEvent struct {
	Type      domain.EventType `json:"type"`
	UserID    uuid.UUID        `json:"userId"`
	Data      json.RawMessage  `json:"data"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Encode marshals an event for publishing.
func Encode(ev domain.Event) ([]byte, error) {
	data, err := json.Marshal(ev.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal event data: %w", err)
	}
	return json.Marshal(wireEvent{Type: ev.Type, UserID: ev.UserID, Data: data, CreatedAt: ev.CreatedAt})
}

// Decode parses a published payload. Data is left as json.RawMessage.
func Decode(payload []byte) (domain.Event, error) {
	var w wireEvent
	if err := json.Unmarshal(payload, &w); err != nil {
		return domain.Event{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return domain.Event{Type: w.Type, UserID: w.UserID, Data: w.Data, CreatedAt: w.CreatedAt}, nil
}

// Bus publishes and subscribes to per-user event channels.
type Bus struct {
	client *goredis.Client
	prefix string
	log    *slog.Logger
}

// NewBus creates a Bus over an existing client.
func NewBus(client *goredis.Client, prefix string, logger *slog.Logger) *Bus {
	return &Bus{client: client, prefix: prefix, log: logger.With("adapter", "redis")}
}

// Channel returns the channel name for userID.
func Channel(prefix string, userID uuid.UUID) string {
	return prefix + ":user:" + userID.String()
}

// Publish sends ev to the addressed user's channel.
func (b *Bus) Publish(ctx context.Context, ev domain.Event) error {
	payload, err := Encode(ev)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, Channel(b.prefix, ev.UserID), payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	return nil
}

// Subscribe streams events addressed to userID until ctx is cancelled. The
// returned channel is closed when the subscription ends.
func (b *Bus) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan domain.Event, error) {
	pubsub := b.client.Subscribe(ctx, Channel(b.prefix, userID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	out := make(chan domain.Event, 16)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				ev, err := Decode([]byte(msg.Payload))
				if err != nil {
					b.log.WarnContext(ctx, "drop malformed event", slog.String("error", err.Error()))
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Ping checks the redis connection.
func (b *Bus) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}
