package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AleksandrTrainich/yatube/internal/identity"
	"github.com/AleksandrTrainich/yatube/internal/media"
	"github.com/AleksandrTrainich/yatube/internal/model"
)

func newFeedService(env *testEnv) FeedService {
	return NewFeedService(env.posts, env.groups, env.users, env.follows, nil)
}

func (e *testEnv) post(tb testing.TB, authorID uint, text string, at time.Time) *model.Post {
	tb.Helper()
	p := &model.Post{Text: text, AuthorID: authorID, CreatedAt: at}
	require.NoError(tb, e.db.Create(p).Error)
	return p
}

func TestGlobalFeedOrdering(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)
	ctx := context.Background()

	author := env.user(t, "author")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	env.post(t, author.ID, "t1", base)
	env.post(t, author.ID, "t2", base.Add(time.Hour))
	env.post(t, author.ID, "t3", base.Add(2*time.Hour))

	page, err := svc.Global(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 3)
	require.Equal(t, "t3", page.Posts[0].Text)
	require.Equal(t, "t2", page.Posts[1].Text)
	require.Equal(t, "t1", page.Posts[2].Text)
}

func TestGlobalFeedPaginationBoundary(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)
	ctx := context.Background()

	author := env.user(t, "author")
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		env.post(t, author.ID, fmt.Sprintf("p%02d", i), base.Add(time.Duration(i)*time.Minute))
	}

	page1, err := svc.Global(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page1.Posts, 10)
	require.Equal(t, 1, page1.Number)
	require.Equal(t, 2, page1.Paginator.NumPages)
	require.Equal(t, int64(13), page1.Paginator.Count)
	require.True(t, page1.HasNext)
	require.False(t, page1.HasPrevious)

	page2, err := svc.Global(ctx, 2)
	require.NoError(t, err)
	require.Len(t, page2.Posts, 3)
	require.False(t, page2.HasNext)
	require.True(t, page2.HasPrevious)
}

func TestGlobalFeedPageClamping(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)
	ctx := context.Background()

	author := env.user(t, "author")
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		env.post(t, author.ID, fmt.Sprintf("p%02d", i), base.Add(time.Duration(i)*time.Minute))
	}

	// above range clamps to the last page
	page, err := svc.Global(ctx, 99)
	require.NoError(t, err)
	require.Equal(t, 2, page.Number)
	require.Len(t, page.Posts, 3)

	// below range clamps to the first page
	page, err = svc.Global(ctx, -5)
	require.NoError(t, err)
	require.Equal(t, 1, page.Number)
	require.Len(t, page.Posts, 10)
}

func TestGlobalFeedEmpty(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)

	page, err := svc.Global(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, page.Posts)
	require.Equal(t, 1, page.Number)
	require.Equal(t, 1, page.Paginator.NumPages)
}

func TestGroupFeed(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)
	ctx := context.Background()

	author := env.user(t, "author")
	group := &model.Group{Title: "Cats", Slug: "cats"}
	require.NoError(t, env.db.Create(group).Error)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	inGroup := env.post(t, author.ID, "grouped", base)
	require.NoError(t, env.db.Model(inGroup).Update("group_id", group.ID).Error)
	env.post(t, author.ID, "loose", base.Add(time.Minute))

	feed, err := svc.Group(ctx, "cats", 1)
	require.NoError(t, err)
	require.Equal(t, "Cats", feed.Group.Title)
	require.Len(t, feed.Page.Posts, 1)
	require.Equal(t, "grouped", feed.Page.Posts[0].Text)

	_, err = svc.Group(ctx, "missing", 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProfileFeed(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)
	relSvc := NewRelationshipService(env.follows, env.users)
	ctx := context.Background()

	gena := env.user(t, "Gena")
	viewer := env.user(t, "viewer")
	other := env.user(t, "other")

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	env.post(t, gena.ID, "mine", base)
	env.post(t, other.ID, "not mine", base.Add(time.Minute))

	require.NoError(t, relSvc.Follow(ctx, viewer, "Gena"))
	require.NoError(t, relSvc.Follow(ctx, viewer, "other"))

	feed, err := svc.Profile(ctx, viewer, "Gena", 1)
	require.NoError(t, err)
	require.Equal(t, "Gena", feed.Author.Username)
	require.Len(t, feed.Page.Posts, 1)
	require.Equal(t, int64(1), feed.PostCount)
	require.Equal(t, int64(1), feed.FollowerCount)
	require.True(t, feed.Following)
	require.NotNil(t, feed.FollowingCount)
	require.Equal(t, int64(2), *feed.FollowingCount)

	// the viewer-relative fields are recomputed per viewer
	anon, err := svc.Profile(ctx, identity.Anonymous, "Gena", 1)
	require.NoError(t, err)
	require.False(t, anon.Following)
	require.Nil(t, anon.FollowingCount)
	require.Equal(t, int64(1), anon.FollowerCount)

	_, err = svc.Profile(ctx, viewer, "nobody", 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFollowerFeedCorrectness(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)
	relSvc := NewRelationshipService(env.follows, env.users)
	ctx := context.Background()

	viewer := env.user(t, "viewer")
	a := env.user(t, "A")
	b := env.user(t, "B")
	c := env.user(t, "C")

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	env.post(t, a.ID, "by A", base)
	env.post(t, b.ID, "by B", base.Add(time.Minute))
	env.post(t, c.ID, "by C", base.Add(2*time.Minute))

	require.NoError(t, relSvc.Follow(ctx, viewer, "A"))
	require.NoError(t, relSvc.Follow(ctx, viewer, "B"))

	page, err := svc.Following(ctx, viewer, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	require.Equal(t, "by B", page.Posts[0].Text)
	require.Equal(t, "by A", page.Posts[1].Text)
}

func TestFollowerFeedRequiresAuthentication(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)

	_, err := svc.Following(context.Background(), identity.Anonymous, 1)
	require.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestScenarioHelloGena(t *testing.T) {
	env := newTestEnv(t)
	feedSvc := newFeedService(env)
	postSvc := NewPostService(env.posts, env.groups, media.NewDiskStore(t.TempDir()), nil)
	relSvc := NewRelationshipService(env.follows, env.users)
	ctx := context.Background()

	gena := env.user(t, "Gena")
	notGena := env.user(t, "NotGena")

	post, err := postSvc.Create(ctx, gena, CreatePostInput{Text: "Hello"})
	require.NoError(t, err)

	page, err := feedSvc.Global(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Hello", page.Posts[0].Text)
	require.Equal(t, "Gena", page.Posts[0].Author.Username)

	_, err = postSvc.Edit(ctx, notGena, post.ID, EditPostInput{Text: "Goodbye"})
	require.ErrorIs(t, err, ErrForbidden)
	page, err = feedSvc.Global(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Hello", page.Posts[0].Text)

	require.NoError(t, relSvc.Follow(ctx, notGena, "Gena"))
	cnt, err := relSvc.FollowerCount(ctx, gena.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), cnt)

	require.NoError(t, relSvc.Follow(ctx, notGena, "Gena"))
	cnt, err = relSvc.FollowerCount(ctx, gena.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), cnt)

	require.NoError(t, relSvc.Unfollow(ctx, notGena, "Gena"))
	cnt, err = relSvc.FollowerCount(ctx, gena.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), cnt)
}
