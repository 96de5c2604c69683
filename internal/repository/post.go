package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateGlobalFeed(ctx, cache.GetClient())
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.withFeedDetails(r.db.WithContext(ctx)).
		First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// List returns a page of the global feed. Pages are cached briefly;
// Create (posts and comments) drops every cached page.
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return cache.Aside(ctx, cache.GetClient(), cache.GlobalFeedKey(limit, offset), cache.GlobalFeedTTL, func() ([]*models.Post, error) {
		var posts []*models.Post
		if err := r.withFeedDetails(r.db.WithContext(ctx)).
			Order("posts.created_at DESC, posts.id ASC").
			Limit(limit).
			Offset(offset).
			Find(&posts).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		return posts, nil
	})
}

func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]*models.Post, error) {
	if len(authorIDs) == 0 {
		return []*models.Post{}, nil
	}
	var posts []*models.Post
	if err := r.withFeedDetails(r.db.WithContext(ctx)).
		Where("posts.user_id IN ?", authorIDs).
		Order("posts.created_at DESC, posts.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// withFeedDetails preloads the author and the comment threads the feed
// renders. Comments come back newest first with their own authors.
func (r *postRepository) withFeedDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC, comments.id ASC")
		}).
		Preload("Comments.User")
}
