package entitlement

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

const (
	SubjectConnectionCreated = "relation.connection.created"
	SubjectConnectionExpired = "relation.connection.expired"
)

// ConnectionEvent is published by the write path whenever a membership is
// created or soft-expired.
type ConnectionEvent struct {
	ListOwnerID uuid.UUID `json:"list_owner_id"`
	MemberID    uuid.UUID `json:"member_id"`
}

// Consumer invalidates cached not-allowed sets when connections change.
// Staleness is bounded by the cache TTL even if an event is missed.
type Consumer struct {
	conn  *nats.Conn
	cache *Cache

	subscriptions []*nats.Subscription
}

func NewConsumer(nc *nats.Conn, cache *Cache) *Consumer {
	return &Consumer{
		conn:  nc,
		cache: cache,
	}
}

func (c *Consumer) handler() nats.MsgHandler {
	return func(msg *nats.Msg) {
		var event ConnectionEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Warn().Err(err).Msgf("malformed connection event on %s", msg.Subject)

			return
		}

		ctx := context.Background()
		for _, id := range []uuid.UUID{event.ListOwnerID, event.MemberID} {
			if err := c.cache.Invalidate(ctx, id); err != nil {
				log.Error().Err(err).Msgf("invalidate not-allowed set for %s", id)
			}
		}
	}
}

func (c *Consumer) Start(ctx context.Context) error {
	for _, subject := range []string{SubjectConnectionCreated, SubjectConnectionExpired} {
		sub, err := c.conn.Subscribe(subject, c.handler())
		if err != nil {
			return fmt.Errorf("subscribe to %s: %w", subject, err)
		}

		c.subscriptions = append(c.subscriptions, sub)
	}

	log.Info().Msg("connection event consumers are started")

	<-ctx.Done()

	return c.stop()
}

func (c *Consumer) stop() error {
	for _, sub := range c.subscriptions {
		if err := sub.Unsubscribe(); err != nil {
			log.Error().Err(err).Msgf("unsubscribe from %s", sub.Subject)
		}
	}

	return nil
}
