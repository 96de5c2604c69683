package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

// ProfileService handles profile views, profile edits and the follow
// graph operations.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// ProfileView is the profile payload returned to clients. IsSelf and
// IsFollowing are resolved relative to the viewer.
type ProfileView struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email,omitempty"`
	Bio         string `json:"bio"`
	Picture     string `json:"picture"`
	IsSelf      bool   `json:"is_self"`
	IsFollowing bool   `json:"is_following"`
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	UserID  uint
	Bio     string
	Picture string
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// MyProfile returns the viewer's own profile, creating it on first
// access. Email is only included on the self view.
func (s *ProfileService) MyProfile(ctx context.Context, userID uint) (*ProfileView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Bio:       profile.Bio,
		Picture:   profile.Picture,
		IsSelf:    true,
	}, nil
}

// OtherProfile returns another user's profile as seen by the viewer.
func (s *ProfileService) OtherProfile(ctx context.Context, viewerID, targetID uint) (*ProfileView, error) {
	if viewerID == targetID {
		return s.MyProfile(ctx, viewerID)
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetOrCreate(ctx, targetID)
	if err != nil {
		return nil, err
	}
	following, err := s.profileRepo.IsFollowing(ctx, viewerID, targetID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		UserID:      user.ID,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Bio:         profile.Bio,
		Picture:     profile.Picture,
		IsFollowing: following,
	}, nil
}

// UpdateProfile edits the viewer's bio and picture reference.
func (s *ProfileService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*ProfileView, error) {
	if err := validation.ValidateBio(in.Bio); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	profile, err := s.profileRepo.GetOrCreate(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	profile.Bio = in.Bio
	if in.Picture != "" {
		profile.Picture = in.Picture
	}
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return s.MyProfile(ctx, in.UserID)
}

// Follow adds a directed edge from the viewer to the target. The target
// must exist; re-following is a no-op. Both sides get a profile created
// on first touch.
func (s *ProfileService) Follow(ctx context.Context, followerID, followeeID uint) error {
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}
	if _, err := s.profileRepo.GetOrCreate(ctx, followerID); err != nil {
		return err
	}
	if _, err := s.profileRepo.GetOrCreate(ctx, followeeID); err != nil {
		return err
	}
	return s.profileRepo.Follow(ctx, followerID, followeeID)
}

// Unfollow removes the edge. Unfollowing someone not followed is a
// no-op.
func (s *ProfileService) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}
	return s.profileRepo.Unfollow(ctx, followerID, followeeID)
}

// ListFollowing returns the users the given user follows.
func (s *ProfileService) ListFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.profileRepo.ListFollowing(ctx, userID)
}

// ListFollowers returns the users following the given user.
func (s *ProfileService) ListFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.profileRepo.ListFollowers(ctx, userID)
}
