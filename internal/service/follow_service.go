package service

import (
	"context"
	"errors"

	"quill/internal/models"
	"quill/internal/repository"

	"gorm.io/gorm"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

func (s *FollowService) resolveAuthor(ctx context.Context, username string) (*models.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", username)
		}
		return nil, err
	}
	return author, nil
}

// Follow subscribes userID to the author's posts. Following yourself is
// silently skipped, and following someone twice leaves a single record.
func (s *FollowService) Follow(ctx context.Context, userID uint, authorUsername string) error {
	author, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author.ID == userID {
		return nil
	}
	return s.followRepo.Follow(ctx, userID, author.ID)
}

// Unfollow removes the subscription. Unfollowing someone you never
// followed is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, authorUsername string) error {
	author, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}
	return s.followRepo.Unfollow(ctx, userID, author.ID)
}

func (s *FollowService) IsFollowing(ctx context.Context, userID uint, authorID uint) (bool, error) {
	if userID == 0 || userID == authorID {
		return false, nil
	}
	return s.followRepo.IsFollowing(ctx, userID, authorID)
}
