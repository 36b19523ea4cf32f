package service

import (
	"context"

	"github.com/AleksandrTrainich/yatube/internal/identity"
	"github.com/AleksandrTrainich/yatube/internal/model"
	"github.com/AleksandrTrainich/yatube/internal/repository"
)

// PageSize is the single pagination contract shared by all feed contexts.
const PageSize = 10

// Paginator carries the metadata the rendering collaborator needs to draw
// page controls.
type Paginator struct {
	Count    int64 `json:"count"`
	NumPages int   `json:"num_pages"`
	PageSize int   `json:"page_size"`
}

// Page is one slice of a feed, newest first.
type Page struct {
	Number      int           `json:"number"`
	Posts       []*model.Post `json:"posts"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
	Paginator   Paginator     `json:"paginator"`
}

// GroupFeed is the group view context: the group itself plus its page.
type GroupFeed struct {
	Group *model.Group `json:"group"`
	Page  *Page        `json:"page"`
}

// ProfileFeed is the author view context. Following and FollowingCount are
// viewer-relative and recomputed per request; FollowingCount is nil for an
// anonymous viewer.
type ProfileFeed struct {
	Author         *model.User `json:"author"`
	Page           *Page       `json:"page"`
	PostCount      int64       `json:"post_count"`
	FollowerCount  int64       `json:"follower_count"`
	Following      bool        `json:"following"`
	FollowingCount *int64      `json:"following_count"`
}

// FeedService composes ordered, paginated views over posts. An out-of-range
// page index clamps to the nearest valid page instead of erroring.
type FeedService interface {
	Global(ctx context.Context, page int) (*Page, error)
	Group(ctx context.Context, slug string, page int) (*GroupFeed, error)
	Profile(ctx context.Context, viewer identity.Identity, username string, page int) (*ProfileFeed, error)
	// Following is the viewer's personal feed and requires authentication;
	// an anonymous viewer is an error, not an empty page.
	Following(ctx context.Context, viewer identity.Identity, page int) (*Page, error)
}

type feedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	cache      *GlobalFeedCache // nil disables caching
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	cache *GlobalFeedCache,
) FeedService {
	return &feedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		cache:      cache,
	}
}

func (s *feedService) Global(ctx context.Context, page int) (*Page, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, page); ok {
			return p, nil
		}
	}
	count, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	number, numPages, offset := clampPage(page, count)
	posts, err := s.postRepo.ListAll(ctx, offset, PageSize)
	if err != nil {
		return nil, err
	}
	p := buildPage(number, numPages, count, posts)
	if s.cache != nil {
		s.cache.Set(ctx, page, p)
	}
	return p, nil
}

func (s *feedService) Group(ctx context.Context, slug string, page int) (*GroupFeed, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, asNotFound(err)
	}
	count, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	number, numPages, offset := clampPage(page, count)
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, offset, PageSize)
	if err != nil {
		return nil, err
	}
	return &GroupFeed{Group: group, Page: buildPage(number, numPages, count, posts)}, nil
}

func (s *feedService) Profile(ctx context.Context, viewer identity.Identity, username string, page int) (*ProfileFeed, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, asNotFound(err)
	}
	count, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	number, numPages, offset := clampPage(page, count)
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, offset, PageSize)
	if err != nil {
		return nil, err
	}
	followerCount, err := s.followRepo.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	feed := &ProfileFeed{
		Author:        author,
		Page:          buildPage(number, numPages, count, posts),
		PostCount:     count,
		FollowerCount: followerCount,
	}
	if viewer.IsAuthenticated() {
		following, err := s.followRepo.Exists(ctx, viewer.ID, author.ID)
		if err != nil {
			return nil, err
		}
		followingCount, err := s.followRepo.CountFollowing(ctx, viewer.ID)
		if err != nil {
			return nil, err
		}
		feed.Following = following
		feed.FollowingCount = &followingCount
	}
	return feed, nil
}

func (s *feedService) Following(ctx context.Context, viewer identity.Identity, page int) (*Page, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	count, err := s.postRepo.CountFollowed(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	number, numPages, offset := clampPage(page, count)
	posts, err := s.postRepo.ListFollowed(ctx, viewer.ID, offset, PageSize)
	if err != nil {
		return nil, err
	}
	return buildPage(number, numPages, count, posts), nil
}

// clampPage normalizes a 1-based external page index against the item
// count: below range clamps to the first page, above range to the last.
// An empty feed still has one (empty) page.
func clampPage(page int, count int64) (number, numPages, offset int) {
	numPages = int((count + PageSize - 1) / PageSize)
	if numPages < 1 {
		numPages = 1
	}
	number = page
	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}
	return number, numPages, (number - 1) * PageSize
}

func buildPage(number, numPages int, count int64, posts []*model.Post) *Page {
	if posts == nil {
		posts = []*model.Post{}
	}
	return &Page{
		Number:      number,
		Posts:       posts,
		HasNext:     number < numPages,
		HasPrevious: number > 1,
		Paginator:   Paginator{Count: count, NumPages: numPages, PageSize: PageSize},
	}
}
