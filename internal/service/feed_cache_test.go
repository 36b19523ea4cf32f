package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/AleksandrTrainich/yatube/internal/media"
)

func newTestCache(t *testing.T, ttl time.Duration) (*GlobalFeedCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewGlobalFeedCache(rdb, ttl), mr
}

// A post created while a page sits in the cache stays invisible to global
// feed readers until the window elapses. That staleness is the contract,
// not a bug.
func TestGlobalFeedStalenessWindow(t *testing.T) {
	env := newTestEnv(t)
	cache, mr := newTestCache(t, 20*time.Second)
	svc := NewFeedService(env.posts, env.groups, env.users, env.follows, cache)
	ctx := context.Background()

	author := env.user(t, "author")
	env.post(t, author.ID, "old", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	page, err := svc.Global(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)

	// a concurrent writer lands a post without touching this cache
	env.post(t, author.ID, "new", time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC))

	page, err = svc.Global(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1, "fresh post must stay invisible inside the window")

	mr.FastForward(21 * time.Second)

	page, err = svc.Global(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	require.Equal(t, "new", page.Posts[0].Text)
}

// Creating a post through the post service bumps the cache version, so the
// fresh post is visible immediately.
func TestGlobalFeedInvalidationOnCreate(t *testing.T) {
	env := newTestEnv(t)
	cache, _ := newTestCache(t, 20*time.Second)
	feedSvc := NewFeedService(env.posts, env.groups, env.users, env.follows, cache)
	postSvc := NewPostService(env.posts, env.groups, media.NewDiskStore(t.TempDir()), cache)
	ctx := context.Background()

	gena := env.user(t, "Gena")

	page, err := feedSvc.Global(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, page.Posts)

	_, err = postSvc.Create(ctx, gena, CreatePostInput{Text: "Hello"})
	require.NoError(t, err)

	page, err = feedSvc.Global(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	require.Equal(t, "Hello", page.Posts[0].Text)
}

func TestGlobalFeedCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, 20*time.Second)
	ctx := context.Background()

	_, ok := cache.Get(ctx, 1)
	require.False(t, ok)

	cache.Set(ctx, 1, &Page{Number: 1, Paginator: Paginator{Count: 0, NumPages: 1, PageSize: PageSize}})
	page, ok := cache.Get(ctx, 1)
	require.True(t, ok)
	require.Equal(t, 1, page.Number)

	cache.Invalidate(ctx)
	_, ok = cache.Get(ctx, 1)
	require.False(t, ok, "version bump must orphan cached pages")
}
