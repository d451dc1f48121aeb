// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quill/internal/models"
	"quill/internal/repository"

	"gorm.io/gorm"
)

type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

type CreatePostInput struct {
	AuthorID  uint
	Text      string
	GroupSlug string
	Image     string
}

type UpdatePostInput struct {
	AuthorID  uint
	PostID    uint
	Text      string
	GroupSlug string
	Image     string
}

type DeletePostInput struct {
	AuthorID uint
	PostID   uint
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{postRepo: postRepo, groupRepo: groupRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	text := strings.TrimSpace(in.Text)
	if len([]rune(text)) < models.MinPostTextLen {
		return nil, models.NewValidationError(fmt.Sprintf("Post text must be at least %d characters", models.MinPostTextLen))
	}

	post := &models.Post{
		Text:     text,
		AuthorID: in.AuthorID,
		Image:    in.Image,
	}

	if in.GroupSlug != "" {
		group, err := s.groupRepo.GetBySlug(ctx, in.GroupSlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Group", in.GroupSlug)
			}
			return nil, err
		}
		post.GroupID = &group.ID
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return post, nil
}

// UpdatePost edits a post. Only the author may edit.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.GetPost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.AuthorID {
		return nil, models.NewForbiddenError("Only the author can edit this post")
	}

	text := strings.TrimSpace(in.Text)
	if len([]rune(text)) < models.MinPostTextLen {
		return nil, models.NewValidationError(fmt.Sprintf("Post text must be at least %d characters", models.MinPostTextLen))
	}
	post.Text = text
	post.Image = in.Image

	if in.GroupSlug == "" {
		post.GroupID = nil
		post.Group = nil
	} else {
		group, err := s.groupRepo.GetBySlug(ctx, in.GroupSlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Group", in.GroupSlug)
			}
			return nil, err
		}
		post.GroupID = &group.ID
		post.Group = nil
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// DeletePost removes a post and its comments. Only the author may delete.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.GetPost(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post.AuthorID != in.AuthorID {
		return models.NewForbiddenError("Only the author can delete this post")
	}
	return s.postRepo.Delete(ctx, in.PostID)
}
