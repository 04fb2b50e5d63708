package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-summarizer-be/internal/dto"
)

const shareCacheTTL = 5 * time.Minute

// IShareCache caches publicly shared summaries by share id. All operations
// are best-effort: a nil client or a Redis failure never blocks the read path.
type IShareCache interface {
	Get(ctx context.Context, shareId string) (*dto.SummaryResponse, bool)
	Set(ctx context.Context, shareId string, summary *dto.SummaryResponse)
	Invalidate(ctx context.Context, shareId string)
}

type redisShareCache struct {
	client *redis.Client
}

func NewRedisShareCache(client *redis.Client) IShareCache {
	return &redisShareCache{client: client}
}

func (c *redisShareCache) key(shareId string) string {
	return "share:" + shareId
}

func (c *redisShareCache) Get(ctx context.Context, shareId string) (*dto.SummaryResponse, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, c.key(shareId)).Bytes()
	if err != nil {
		return nil, false
	}
	var resp dto.SummaryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *redisShareCache) Set(ctx context.Context, shareId string, summary *dto.SummaryResponse) {
	if c.client == nil || summary == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.key(shareId), raw, shareCacheTTL)
}

func (c *redisShareCache) Invalidate(ctx context.Context, shareId string) {
	if c.client == nil || shareId == "" {
		return
	}
	c.client.Del(ctx, c.key(shareId))
}
