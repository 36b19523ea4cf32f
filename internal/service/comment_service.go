package service

import (
	"context"
	"strings"

	"github.com/AleksandrTrainich/yatube/internal/identity"
	"github.com/AleksandrTrainich/yatube/internal/model"
	"github.com/AleksandrTrainich/yatube/internal/repository"
)

// CommentService attaches replies to posts. Any authenticated identity may
// comment, the post's own author included; comments are immutable.
type CommentService interface {
	Add(ctx context.Context, actor identity.Identity, postID uint, text string) (*model.Comment, error)
	ListForPost(ctx context.Context, postID uint) ([]*model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *commentService) Add(ctx context.Context, actor identity.Identity, postID uint, text string) (*model.Comment, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, asNotFound(err)
	}
	comment := &model.Comment{Text: text, AuthorID: actor.ID, PostID: postID}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListForPost(ctx context.Context, postID uint) ([]*model.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, asNotFound(err)
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
