package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AleksandrTrainich/yatube/internal/identity"
	"github.com/AleksandrTrainich/yatube/internal/repository"
)

// RelationshipService owns the follow graph. Self-follow and duplicate
// follow are silent no-ops, not errors: the first is a product rule, the
// second is handled atomically by the storage-level unique constraint so
// concurrent requests cannot race a check-then-create.
type RelationshipService interface {
	Follow(ctx context.Context, actor identity.Identity, authorUsername string) error
	Unfollow(ctx context.Context, actor identity.Identity, authorUsername string) error
	IsFollowing(ctx context.Context, viewer identity.Identity, authorID uint) (bool, error)
	FollowerCount(ctx context.Context, authorID uint) (int64, error)
	FollowingCount(ctx context.Context, userID uint) (int64, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo, userRepo: userRepo}
}

func (s *relationshipService) Follow(ctx context.Context, actor identity.Identity, authorUsername string) error {
	if !actor.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return asNotFound(err)
	}
	if actor.ID == author.ID {
		return nil
	}
	return s.followRepo.Create(ctx, actor.ID, author.ID)
}

func (s *relationshipService) Unfollow(ctx context.Context, actor identity.Identity, authorUsername string) error {
	if !actor.IsAuthenticated() {
		return ErrAuthenticationRequired
	}
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return asNotFound(err)
	}
	// absent edge is fine, Delete is a no-op then
	return s.followRepo.Delete(ctx, actor.ID, author.ID)
}

func (s *relationshipService) IsFollowing(ctx context.Context, viewer identity.Identity, authorID uint) (bool, error) {
	if !viewer.IsAuthenticated() {
		return false, nil
	}
	return s.followRepo.Exists(ctx, viewer.ID, authorID)
}

func (s *relationshipService) FollowerCount(ctx context.Context, authorID uint) (int64, error) {
	return s.followRepo.CountFollowers(ctx, authorID)
}

func (s *relationshipService) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	return s.followRepo.CountFollowing(ctx, userID)
}

// asNotFound converts gorm's record-not-found into the domain error.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
