package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AleksandrTrainich/yatube/internal/identity"
	"github.com/AleksandrTrainich/yatube/internal/media"
)

func TestCreatePostValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.groups, media.NewDiskStore(t.TempDir()), nil)
	ctx := context.Background()

	author := env.user(t, "Gena")

	_, err := svc.Create(ctx, author, CreatePostInput{Text: "   "})
	require.True(t, IsValidation(err))

	_, err = svc.Create(ctx, identity.Anonymous, CreatePostInput{Text: "hello"})
	require.ErrorIs(t, err, ErrAuthenticationRequired)

	post, err := svc.Create(ctx, author, CreatePostInput{Text: "Hello"})
	require.NoError(t, err)
	require.Equal(t, "Hello", post.Text)
	require.Equal(t, "Gena", post.Author.Username)
	require.False(t, post.CreatedAt.IsZero())
}

func TestCreatePostWithImage(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.groups, media.NewDiskStore(t.TempDir()), nil)
	ctx := context.Background()

	author := env.user(t, "Gena")

	post, err := svc.Create(ctx, author, CreatePostInput{
		Text:  "with picture",
		Image: &ImageUpload{Filename: "cat.png", Data: strings.NewReader("png-bytes")},
	})
	require.NoError(t, err)
	require.NotNil(t, post.Image)
	require.True(t, strings.HasPrefix(*post.Image, "posts/"))
	require.True(t, strings.HasSuffix(*post.Image, ".png"))
}

func TestCreatePostUnknownGroup(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.groups, media.NewDiskStore(t.TempDir()), nil)
	ctx := context.Background()

	author := env.user(t, "Gena")
	bogus := uint(99)

	_, err := svc.Create(ctx, author, CreatePostInput{Text: "hello", GroupID: &bogus})
	require.True(t, IsValidation(err))
}

func TestEditPostOwnership(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.groups, media.NewDiskStore(t.TempDir()), nil)
	ctx := context.Background()

	gena := env.user(t, "Gena")
	notGena := env.user(t, "NotGena")

	post, err := svc.Create(ctx, gena, CreatePostInput{Text: "Hello"})
	require.NoError(t, err)

	_, err = svc.Edit(ctx, notGena, post.ID, EditPostInput{Text: "hijacked"})
	require.ErrorIs(t, err, ErrForbidden)

	got, _, err := svc.Get(ctx, "Gena", post.ID)
	require.NoError(t, err)
	require.Equal(t, "Hello", got.Text, "forbidden edit must not mutate")

	edited, err := svc.Edit(ctx, gena, post.ID, EditPostInput{Text: "Hello, edited"})
	require.NoError(t, err)
	require.Equal(t, "Hello, edited", edited.Text)
}

func TestEditPostKeepsImageAndAuthor(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.groups, media.NewDiskStore(t.TempDir()), nil)
	ctx := context.Background()

	gena := env.user(t, "Gena")
	post, err := svc.Create(ctx, gena, CreatePostInput{
		Text:  "with picture",
		Image: &ImageUpload{Filename: "cat.jpg", Data: strings.NewReader("jpg-bytes")},
	})
	require.NoError(t, err)

	edited, err := svc.Edit(ctx, gena, post.ID, EditPostInput{Text: "new text"})
	require.NoError(t, err)
	require.Equal(t, post.AuthorID, edited.AuthorID)
	require.NotNil(t, edited.Image)
	require.Equal(t, *post.Image, *edited.Image)
}

func TestEditUnknownPost(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.groups, media.NewDiskStore(t.TempDir()), nil)
	ctx := context.Background()

	gena := env.user(t, "Gena")

	_, err := svc.Edit(ctx, gena, 12345, EditPostInput{Text: "whatever"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetPostChecksUsername(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostService(env.posts, env.groups, media.NewDiskStore(t.TempDir()), nil)
	ctx := context.Background()

	gena := env.user(t, "Gena")
	env.user(t, "Other")

	post, err := svc.Create(ctx, gena, CreatePostInput{Text: "Hello"})
	require.NoError(t, err)

	_, _, err = svc.Get(ctx, "Other", post.ID)
	require.ErrorIs(t, err, ErrNotFound)

	got, count, err := svc.Get(ctx, "Gena", post.ID)
	require.NoError(t, err)
	require.Equal(t, post.ID, got.ID)
	require.Equal(t, int64(1), count)
}

func TestDeletePostCascadesToComments(t *testing.T) {
	env := newTestEnv(t)
	postSvc := NewPostService(env.posts, env.groups, media.NewDiskStore(t.TempDir()), nil)
	commentSvc := NewCommentService(env.comments, env.posts)
	ctx := context.Background()

	gena := env.user(t, "Gena")
	reader := env.user(t, "reader")

	post, err := postSvc.Create(ctx, gena, CreatePostInput{Text: "Hello"})
	require.NoError(t, err)
	_, err = commentSvc.Add(ctx, reader, post.ID, "nice one")
	require.NoError(t, err)

	require.ErrorIs(t, postSvc.Delete(ctx, reader, post.ID), ErrForbidden)

	require.NoError(t, postSvc.Delete(ctx, gena, post.ID))

	_, _, err = postSvc.Get(ctx, "Gena", post.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = commentSvc.ListForPost(ctx, post.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
