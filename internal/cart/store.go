package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Carts survive a page reload but not a month of inactivity.
const cartTTL = 30 * 24 * time.Hour

// Store persists one cart per user in Redis and publishes change
// notifications for the live cart channel. It is constructed once in main
// and injected into the handlers that need it.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

// Channel returns the pub/sub channel carrying change events for a user's cart.
func (s *Store) Channel(userID string) string {
	return cartKey(userID)
}

// Load returns the user's persisted cart. A missing or unreadable key yields
// an empty cart rather than an error.
func (s *Store) Load(ctx context.Context, userID string) Cart {
	var c Cart
	data, err := s.rdb.Get(ctx, cartKey(userID)).Result()
	if err != nil || data == "" {
		return c
	}
	if err := json.Unmarshal([]byte(data), &c.Items); err != nil {
		return Cart{}
	}
	return c
}

// Save writes the cart back and notifies subscribers.
func (s *Store) Save(ctx context.Context, userID string, c Cart) error {
	data, err := json.Marshal(c.Items)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, cartKey(userID), data, cartTTL).Err(); err != nil {
		return err
	}
	s.rdb.Publish(ctx, s.Channel(userID), "updated")
	return nil
}

// Clear drops the persisted cart entirely.
func (s *Store) Clear(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, cartKey(userID)).Err(); err != nil {
		return err
	}
	s.rdb.Publish(ctx, s.Channel(userID), "cleared")
	return nil
}
