package server

import (
	"github.com/gofiber/fiber/v2"
)

// GlobalFeed handles GET /api/feed?page=N
func (s *Server) GlobalFeed(c *fiber.Ctx) error {
	page, err := s.feedService.GlobalFeed(c.Context(), pageParam(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// FollowFeed handles GET /api/feed/following?page=N
func (s *Server) FollowFeed(c *fiber.Ctx) error {
	userID := currentUserID(c)
	page, err := s.feedService.FollowFeed(c.Context(), userID, pageParam(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetGroupPosts handles GET /api/groups/:slug/posts?page=N
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	feed, err := s.feedService.GroupPosts(c.Context(), c.Params("slug"), pageParam(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// GetProfile handles GET /api/users/:username and /api/users/:username/posts.
// The following flag reflects the viewer when authenticated.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.feedService.Profile(c.Context(), c.Params("username"), currentUserID(c), pageParam(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}
