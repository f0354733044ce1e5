package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	deliveryKeyPrefix = "stripe:webhook:"
	claimTTL          = 24 * time.Hour
)

// DeliveryDeduplicator remembers which Stripe events are being or have been processed.
type DeliveryDeduplicator interface {
	// Claim returns false when the event was claimed before.
	Claim(c context.Context, eventID string) (bool, error)
	// Release forgets a claim so a redelivery is processed again.
	Release(c context.Context, eventID string) error
}

// NewDeliveryDeduplicator uses redis when an address is configured and a process local set otherwise.
func NewDeliveryDeduplicator(c context.Context, addr string, password string, db int) (DeliveryDeduplicator, func(), error) {
	if addr == "" {
		return NewInMemoryDeduplicator(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(c, 2*time.Second)
	defer cancel()
	err := client.Ping(pingCtx).Err()
	if err != nil {
		_ = client.Close()
		return nil, func() {}, fmt.Errorf("error connecting to redis at %s: %s", addr, err)
	}

	return NewRedisDeduplicator(client, claimTTL), func() { _ = client.Close() }, nil
}

type redisDeduplicator struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDeduplicator(client *redis.Client, ttl time.Duration) DeliveryDeduplicator {
	return &redisDeduplicator{
		client: client,
		ttl:    ttl,
	}
}

func (d *redisDeduplicator) Claim(c context.Context, eventID string) (bool, error) {
	claimed, err := d.client.SetNX(c, deliveryKeyPrefix+eventID, "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("error claiming event %s: %s", eventID, err)
	}
	return claimed, nil
}

func (d *redisDeduplicator) Release(c context.Context, eventID string) error {
	err := d.client.Del(c, deliveryKeyPrefix+eventID).Err()
	if err != nil {
		return fmt.Errorf("error releasing event %s: %s", eventID, err)
	}
	return nil
}

type inMemoryDeduplicator struct {
	sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	claimed map[string]time.Time
}

func NewInMemoryDeduplicator() DeliveryDeduplicator {
	return newInMemoryDeduplicator(claimTTL, time.Now)
}

func newInMemoryDeduplicator(ttl time.Duration, now func() time.Time) *inMemoryDeduplicator {
	return &inMemoryDeduplicator{
		ttl:     ttl,
		now:     now,
		claimed: map[string]time.Time{},
	}
}

// Claim expires claims older than the ttl, like their redis counterparts.
func (d *inMemoryDeduplicator) Claim(c context.Context, eventID string) (bool, error) {
	d.Lock()
	defer d.Unlock()

	now := d.now()
	for id, claimedAt := range d.claimed {
		if now.Sub(claimedAt) >= d.ttl {
			delete(d.claimed, id)
		}
	}

	_, exists := d.claimed[eventID]
	if exists {
		return false, nil
	}
	d.claimed[eventID] = now
	return true, nil
}

func (d *inMemoryDeduplicator) Release(c context.Context, eventID string) error {
	d.Lock()
	defer d.Unlock()

	delete(d.claimed, eventID)
	return nil
}
