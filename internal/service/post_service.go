package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

// PostService handles post creation and lookup.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost creates a post authored by the authenticated user. The
// author always comes from the session, never from the request body.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, text string) (*models.Post, error) {
	if err := validation.ValidateText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		UserID: authorID,
		Text:   text,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns a single post with its author and comments.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}
