package redis

import (
	"context"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// NopPublisher drops events. Used when realtime delivery is disabled.
type NopPublisher struct{}

// Publish implements the event publisher interface.
func (NopPublisher) Publish(context.Context, domain.Event) error { return nil }
