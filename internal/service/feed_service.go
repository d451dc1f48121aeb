package service

import (
	"context"
	"errors"
	"time"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/pagination"
	"quill/internal/repository"

	"gorm.io/gorm"
)

// FeedService assembles the post listings the platform serves: the global
// feed, group feeds, author profiles, and the personal follow feed. Only
// the global feed is cached; every other listing hits the database so
// writes show up immediately.
type FeedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	pageSize   int
	cacheTTL   time.Duration
}

// GroupFeed is a page of posts together with the group it belongs to.
type GroupFeed struct {
	Group *models.Group    `json:"group"`
	Page  *pagination.Page `json:"page"`
}

// ProfileFeed is a page of an author's posts plus profile context for the
// viewer. Following is always false for anonymous viewers and for authors
// viewing their own profile.
type ProfileFeed struct {
	Author     *models.User     `json:"author"`
	Page       *pagination.Page `json:"page"`
	PostsCount int64            `json:"posts_count"`
	Followers  int64            `json:"followers_count"`
	Following  bool             `json:"following"`
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	pageSize int,
	cacheTTL time.Duration,
) *FeedService {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	if cacheTTL <= 0 {
		cacheTTL = cache.DefaultFeedTTL
	}
	return &FeedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		pageSize:   pageSize,
		cacheTTL:   cacheTTL,
	}
}

// GlobalFeed returns one page of all posts, newest first. Pages are served
// from cache until the TTL passes, so a freshly deleted post can keep
// appearing here until its page expires or the feed cache is cleared.
func (s *FeedService) GlobalFeed(ctx context.Context, pageNumber int) (*pagination.Page, error) {
	var page pagination.Page
	key := cache.FeedPageKey(pageNumber)
	fetched := false
	err := cache.Aside(ctx, key, &page, s.cacheTTL, func() error {
		fetched = true
		posts, fetchErr := s.postRepo.ListAll(ctx)
		if fetchErr != nil {
			return fetchErr
		}
		page = *pagination.Paginate(posts, s.pageSize, pageNumber)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if fetched {
		observability.FeedCacheMisses.WithLabelValues("global").Inc()
	} else {
		observability.FeedCacheHits.WithLabelValues("global").Inc()
	}
	return &page, nil
}

func (s *FeedService) GroupPosts(ctx context.Context, slug string, pageNumber int) (*GroupFeed, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Group", slug)
		}
		return nil, err
	}

	posts, err := s.postRepo.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	return &GroupFeed{
		Group: group,
		Page:  pagination.Paginate(posts, s.pageSize, pageNumber),
	}, nil
}

// Profile returns an author's posts plus whether the viewer follows them.
// viewerID of zero means an anonymous viewer.
func (s *FeedService) Profile(ctx context.Context, username string, viewerID uint, pageNumber int) (*ProfileFeed, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", username)
		}
		return nil, err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	postsCount, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != 0 && viewerID != author.ID {
		following, err = s.followRepo.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &ProfileFeed{
		Author:     author,
		Page:       pagination.Paginate(posts, s.pageSize, pageNumber),
		PostsCount: postsCount,
		Followers:  followers,
		Following:  following,
	}, nil
}

// FollowFeed returns posts from every author the user follows. Following
// nobody yields an empty page, not an error.
func (s *FeedService) FollowFeed(ctx context.Context, userID uint, pageNumber int) (*pagination.Page, error) {
	posts, err := s.postRepo.ListByFollowed(ctx, userID)
	if err != nil {
		return nil, err
	}
	return pagination.Paginate(posts, s.pageSize, pageNumber), nil
}
