package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/AleksandrTrainich/yatube/pkg/logger"
)

const feedVersionKey = "feed:global:ver"

// GlobalFeedCache keeps rendered global feed pages in redis for a short
// window. Keys carry a version counter that invalidation bumps, so stale
// pages simply become unreachable and age out with the TTL. Readers inside
// the window may briefly miss a fresh post; that staleness is part of the
// contract.
type GlobalFeedCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewGlobalFeedCache(rdb *redis.Client, ttl time.Duration) *GlobalFeedCache {
	if ttl <= 0 {
		ttl = 20 * time.Second
	}
	return &GlobalFeedCache{rdb: rdb, ttl: ttl}
}

func (c *GlobalFeedCache) Get(ctx context.Context, page int) (*Page, bool) {
	data, err := c.rdb.Get(ctx, c.key(ctx, page)).Bytes()
	if err != nil {
		return nil, false
	}
	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (c *GlobalFeedCache) Set(ctx context.Context, page int, p *Page) {
	payload, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(ctx, page), payload, c.ttl).Err(); err != nil {
		logger.Warn("feed cache set failed", zap.Error(err))
	}
}

// Invalidate bumps the version counter. Failures are logged, not returned:
// the worst case is a page staying stale until the TTL expires, which the
// cache already permits.
func (c *GlobalFeedCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Incr(ctx, feedVersionKey).Err(); err != nil {
		logger.Warn("feed cache invalidate failed", zap.Error(err))
	}
}

func (c *GlobalFeedCache) key(ctx context.Context, page int) string {
	ver, err := c.rdb.Get(ctx, feedVersionKey).Int64()
	if err != nil {
		ver = 0
	}
	return fmt.Sprintf("feed:global:v%d:page:%d", ver, page)
}
