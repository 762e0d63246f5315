package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DispatchMarker records that a reminder occurrence has been dispatched so
// overlapping or clock-skewed cycles do not send it twice. Marking is a
// check-and-set: only the first caller for a given reminder+window wins.
type DispatchMarker interface {
	MarkIfFirst(ctx context.Context, reminderID string, target time.Time) (bool, error)
}

// redisDispatchMarker implements DispatchMarker with SETNX and a TTL well
// past the point where the occurrence can still match.
type redisDispatchMarker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDispatchMarker constructs the production marker store.
func NewRedisDispatchMarker(client *redis.Client) DispatchMarker {
	return &redisDispatchMarker{
		client: client,
		ttl:    10 * dispatchWindow,
	}
}

func (m *redisDispatchMarker) MarkIfFirst(ctx context.Context, reminderID string, target time.Time) (bool, error) {
	key := fmt.Sprintf("dispatch:%s:%d", reminderID, target.Truncate(dispatchWindow).Unix())
	ok, err := m.client.SetNX(ctx, key, 1, m.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dispatch marker for %s: %w", reminderID, err)
	}
	return ok, nil
}
