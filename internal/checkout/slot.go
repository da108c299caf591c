package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"campuseats_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

// An unconsumed draft is abandoned after an hour.
const draftTTL = time.Hour

// draftStore is the slice of Redis the slot needs. *redis.Client satisfies it.
type draftStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
}

// DraftSlot passes the OrderDraft from checkout to confirmation as a
// single-read, self-deleting value: Take returns the draft and removes it in
// one step, so a page refresh can never replay the same order.
type DraftSlot struct {
	rdb draftStore
}

func NewDraftSlot(rdb *redis.Client) *DraftSlot {
	return &DraftSlot{rdb: rdb}
}

func draftKey(userID string) string {
	return "order_draft:" + userID
}

// Put stores the draft, overwriting any previous unconsumed one.
func (s *DraftSlot) Put(ctx context.Context, userID string, draft models.OrderDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(userID), data, draftTTL).Err()
}

// Take returns the stored draft and deletes it atomically (GETDEL). A second
// call finds nothing and returns (nil, nil).
func (s *DraftSlot) Take(ctx context.Context, userID string) (*models.OrderDraft, error) {
	data, err := s.rdb.GetDel(ctx, draftKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var draft models.OrderDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}
