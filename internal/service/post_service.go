package service

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/AleksandrTrainich/yatube/internal/identity"
	"github.com/AleksandrTrainich/yatube/internal/media"
	"github.com/AleksandrTrainich/yatube/internal/model"
	"github.com/AleksandrTrainich/yatube/internal/repository"
	"github.com/AleksandrTrainich/yatube/pkg/logger"
)

// ImageUpload is an incoming attachment. The media store turns it into the
// stable path kept on the post.
type ImageUpload struct {
	Filename string
	Data     io.Reader
}

type CreatePostInput struct {
	Text    string
	GroupID *uint
	Image   *ImageUpload
}

type EditPostInput struct {
	Text    string
	GroupID *uint
}

// PostService owns post lifecycle. Only the author may edit or delete a
// post; the author itself never changes.
type PostService interface {
	Create(ctx context.Context, actor identity.Identity, input CreatePostInput) (*model.Post, error)
	Edit(ctx context.Context, actor identity.Identity, postID uint, input EditPostInput) (*model.Post, error)
	// Get resolves a post under the given author's username and returns it
	// together with that author's total post count for the view context.
	Get(ctx context.Context, username string, postID uint) (*model.Post, int64, error)
	Delete(ctx context.Context, actor identity.Identity, postID uint) error
}

type postService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	media     media.Store
	cache     *GlobalFeedCache // nil disables invalidation
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, mediaStore media.Store, cache *GlobalFeedCache) PostService {
	return &postService{postRepo: postRepo, groupRepo: groupRepo, media: mediaStore, cache: cache}
}

func (s *postService) Create(ctx context.Context, actor identity.Identity, input CreatePostInput) (*model.Post, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if err := s.checkGroup(ctx, input.GroupID); err != nil {
		return nil, err
	}
	post := &model.Post{Text: input.Text, AuthorID: actor.ID, GroupID: input.GroupID}
	if input.Image != nil {
		path, err := s.media.Save(ctx, input.Image.Filename, input.Image.Data)
		if err != nil {
			return nil, err
		}
		post.Image = &path
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	logger.Info("post created", zap.Uint("post_id", post.ID), zap.Uint("author_id", actor.ID))
	return s.reload(ctx, post.ID)
}

func (s *postService) Edit(ctx context.Context, actor identity.Identity, postID uint, input EditPostInput) (*model.Post, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if post.AuthorID != actor.ID {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if err := s.checkGroup(ctx, input.GroupID); err != nil {
		return nil, err
	}
	if err := s.postRepo.UpdateContent(ctx, postID, input.Text, input.GroupID); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return s.reload(ctx, postID)
}

func (s *postService) Get(ctx context.Context, username string, postID uint) (*model.Post, int64, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, 0, asNotFound(err)
	}
	if post.Author.Username != username {
		return nil, 0, ErrNotFound
	}
	count, err := s.postRepo.CountByAuthor(ctx, post.AuthorID)
	if err != nil {
		return nil, 0, err
	}
	return post, count, nil
}

func (s *postService) Delete(ctx context.Context, actor identity.Identity, postID uint) error {
	if !actor.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return asNotFound(err)
	}
	if post.AuthorID != actor.ID {
		return ErrForbidden
	}
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	logger.Info("post deleted", zap.Uint("post_id", postID), zap.Uint("author_id", actor.ID))
	return nil
}

func (s *postService) checkGroup(ctx context.Context, groupID *uint) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
		if asNotFound(err) == ErrNotFound {
			return &ValidationError{Field: "group", Reason: "unknown group"}
		}
		return err
	}
	return nil
}

func (s *postService) reload(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return post, nil
}
