package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/AleksandrTrainich/yatube/internal/model"
	"github.com/AleksandrTrainich/yatube/internal/repository"
)

var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// GroupService manages the group catalog. Creation and deletion are
// administrative actions; deleting a group detaches posts, never destroys
// them.
type GroupService interface {
	Create(ctx context.Context, title, slug, description string) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	List(ctx context.Context) ([]*model.Group, error)
	Delete(ctx context.Context, slug string) error
}

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) Create(ctx context.Context, title, slug, description string) (*model.Group, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !slugPattern.MatchString(slug) {
		return nil, &ValidationError{Field: "slug", Reason: "must be URL-safe"}
	}
	if _, err := s.groupRepo.GetBySlug(ctx, slug); err == nil {
		return nil, &ValidationError{Field: "slug", Reason: "already taken"}
	} else if asNotFound(err) != ErrNotFound {
		return nil, err
	}
	group := &model.Group{Title: title, Slug: slug, Description: description}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, asNotFound(err)
	}
	return group, nil
}

func (s *groupService) List(ctx context.Context) ([]*model.Group, error) {
	return s.groupRepo.List(ctx)
}

func (s *groupService) Delete(ctx context.Context, slug string) error {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return asNotFound(err)
	}
	return s.groupRepo.Delete(ctx, group.ID)
}
