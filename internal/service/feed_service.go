package service

import (
	"context"
	"time"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

// FeedService resolves the global and following-only feeds.
type FeedService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
}

// FeedComment is the comment payload embedded in feed responses.
type FeedComment struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Text         string `json:"text"`
	CreationTime string `json:"creation_time"`
}

// FeedPost is the post payload returned by feed endpoints. Comments are
// embedded newest first.
type FeedPost struct {
	ID           uint          `json:"id"`
	UserID       uint          `json:"user_id"`
	Username     string        `json:"username"`
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	Text         string        `json:"text"`
	CreationTime string        `json:"creation_time"`
	Comments     []FeedComment `json:"comments"`
}

// Feed wraps a page of feed posts.
type Feed struct {
	Posts []FeedPost `json:"posts"`
}

// NewFeedService returns a new FeedService.
func NewFeedService(postRepo repository.PostRepository, profileRepo repository.ProfileRepository) *FeedService {
	return &FeedService{postRepo: postRepo, profileRepo: profileRepo}
}

// GlobalFeed returns a page of every user's posts, newest first.
func (s *FeedService) GlobalFeed(ctx context.Context, viewerID uint, limit, offset int) (*Feed, error) {
	observability.FeedRequests.WithLabelValues("global").Inc()

	// Accounts that predate profiles get one lazily on feed access.
	if _, err := s.profileRepo.GetOrCreate(ctx, viewerID); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return buildFeed(posts), nil
}

// FollowingFeed returns a page of posts authored by users the viewer
// follows. A viewer following nobody gets an empty feed; the viewer's
// own posts only appear if they follow themselves.
func (s *FeedService) FollowingFeed(ctx context.Context, viewerID uint, limit, offset int) (*Feed, error) {
	observability.FeedRequests.WithLabelValues("following").Inc()

	if _, err := s.profileRepo.GetOrCreate(ctx, viewerID); err != nil {
		return nil, err
	}

	authorIDs, err := s.profileRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(authorIDs) == 0 {
		return &Feed{Posts: []FeedPost{}}, nil
	}

	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, limit, offset)
	if err != nil {
		return nil, err
	}
	return buildFeed(posts), nil
}

func buildFeed(posts []*models.Post) *Feed {
	feed := &Feed{Posts: make([]FeedPost, 0, len(posts))}
	for _, p := range posts {
		fp := FeedPost{
			ID:           p.ID,
			UserID:       p.UserID,
			Username:     p.User.Username,
			FirstName:    p.User.FirstName,
			LastName:     p.User.LastName,
			Text:         p.Text,
			CreationTime: p.CreatedAt.UTC().Format(time.RFC3339Nano),
			Comments:     make([]FeedComment, 0, len(p.Comments)),
		}
		for _, c := range p.Comments {
			fp.Comments = append(fp.Comments, FeedComment{
				ID:           c.ID,
				UserID:       c.UserID,
				FirstName:    c.User.FirstName,
				LastName:     c.User.LastName,
				Text:         c.Text,
				CreationTime: c.CreatedAt.UTC().Format(time.RFC3339Nano),
			})
		}
		feed.Posts = append(feed.Posts, fp)
	}
	return feed
}
