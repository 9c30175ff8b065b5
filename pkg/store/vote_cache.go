package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const voteCacheTTL = time.Hour

// VoteCache keeps per-user vote state in Redis so vote-status reads skip the
// database on the hot path. Best effort: callers fall through to the
// repository on a miss or an error.
type VoteCache struct {
	rdb *redis.Client
}

func NewVoteCache(rdb *redis.Client) *VoteCache {
	return &VoteCache{rdb: rdb}
}

func voteKey(userId, ideaId uuid.UUID) string {
	return fmt.Sprintf("vote:%s:%s", userId, ideaId)
}

// MarkVoted records that a user has an active vote on an idea.
func (c *VoteCache) MarkVoted(ctx context.Context, userId, ideaId uuid.UUID) error {
	return c.rdb.Set(ctx, voteKey(userId, ideaId), "1", voteCacheTTL).Err()
}

// MarkUnvoted records that a user has no active vote on an idea.
func (c *VoteCache) MarkUnvoted(ctx context.Context, userId, ideaId uuid.UUID) error {
	return c.rdb.Set(ctx, voteKey(userId, ideaId), "0", voteCacheTTL).Err()
}

// IsVoted reports the cached vote state. The second return value is false
// on a cache miss.
func (c *VoteCache) IsVoted(ctx context.Context, userId, ideaId uuid.UUID) (bool, bool, error) {
	val, err := c.rdb.Get(ctx, voteKey(userId, ideaId)).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return val == "1", true, nil
}

// Invalidate drops the cached state for one user/idea pair.
func (c *VoteCache) Invalidate(ctx context.Context, userId, ideaId uuid.UUID) error {
	return c.rdb.Del(ctx, voteKey(userId, ideaId)).Err()
}
