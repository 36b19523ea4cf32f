package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AleksandrTrainich/yatube/internal/identity"
	"github.com/AleksandrTrainich/yatube/internal/model"
	"github.com/AleksandrTrainich/yatube/internal/repository"
)

type testEnv struct {
	db       *gorm.DB
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	groups   repository.GroupRepository
	follows  repository.FollowRepository
}

func newTestEnv(tb testing.TB) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		tb.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{}); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return &testEnv{
		db:       db,
		users:    repository.NewUserRepository(db),
		posts:    repository.NewPostRepository(db),
		comments: repository.NewCommentRepository(db),
		groups:   repository.NewGroupRepository(db),
		follows:  repository.NewFollowRepository(db),
	}
}

// user creates a database row and returns the matching acting identity.
func (e *testEnv) user(tb testing.TB, username string) identity.Identity {
	tb.Helper()
	u := &model.User{Username: username}
	require.NoError(tb, e.db.Create(u).Error)
	return identity.Authenticated(u.ID, u.Username)
}
