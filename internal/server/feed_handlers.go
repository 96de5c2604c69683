package server

import (
	"github.com/gofiber/fiber/v2"
)

// GlobalFeed handles GET /api/feeds/global. Every user's posts, newest
// first, with embedded comments.
func (s *Server) GlobalFeed(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	feed, err := s.feedService.GlobalFeed(c.Context(), currentUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// FollowingFeed handles GET /api/feeds/following. Only posts authored
// by users the viewer follows.
func (s *Server) FollowingFeed(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	feed, err := s.feedService.FollowingFeed(c.Context(), currentUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}
