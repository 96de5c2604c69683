// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultPassword is the password every seeded user gets.
const DefaultPassword = "password123"

// Seeder populates the database with generated users, posts, comments
// and follow edges.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	now := time.Now().UnixNano()
	gofakeit.Seed(now)
	return &Seeder{db: db, rand: rand.New(rand.NewSource(now))}
}

// ClearAll wipes every seedable table. Child tables go first so foreign
// keys stay satisfied on databases that enforce them.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"comments", "posts", "follows", "profiles", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	log.Println("cleared existing data")
	return nil
}

// SeedUsers creates n users with profiles. All of them share
// DefaultPassword.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		user := &models.User{
			Username:  fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(10, 99)),
			FirstName: truncate(first, 20),
			LastName:  truncate(last, 20),
			Email:     truncate(gofakeit.Email(), 50),
			Password:  string(hashed),
		}
		user.Username = truncate(user.Username, 20)
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}

		profile := &models.Profile{
			UserID: user.ID,
			Bio:    truncate(gofakeit.Sentence(12), 500),
		}
		if err := s.db.Create(profile).Error; err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		users = append(users, user)
	}

	log.Printf("seeded %d users", len(users))
	return users, nil
}

// SeedPosts creates n posts spread over the past maxDays days and
// attaches a few comments to each.
func (s *Seeder) SeedPosts(users []*models.User, n, maxDays int) error {
	if len(users) == 0 {
		return fmt.Errorf("no users to author posts")
	}
	if maxDays <= 0 {
		maxDays = 30
	}

	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		post := &models.Post{
			UserID:    author.ID,
			Text:      truncate(gofakeit.Sentence(10), 280),
			CreatedAt: s.pastTime(maxDays),
		}
		if err := s.db.Create(post).Error; err != nil {
			return fmt.Errorf("create post: %w", err)
		}

		for j := 0; j < s.rand.Intn(4); j++ {
			commenter := users[s.rand.Intn(len(users))]
			comment := &models.Comment{
				UserID:    commenter.ID,
				PostID:    post.ID,
				Text:      truncate(gofakeit.Sentence(8), 280),
				CreatedAt: post.CreatedAt.Add(time.Duration(j+1) * time.Minute),
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
		}
	}

	log.Printf("seeded %d posts", n)
	return nil
}

// SeedFollows gives every user a handful of random followees.
func (s *Seeder) SeedFollows(users []*models.User, perUser int) error {
	if len(users) < 2 {
		return nil
	}

	for _, follower := range users {
		for j := 0; j < perUser; j++ {
			followee := users[s.rand.Intn(len(users))]
			if followee.ID == follower.ID {
				continue
			}
			edge := &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
			if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error; err != nil {
				return fmt.Errorf("create follow: %w", err)
			}
		}
	}

	log.Printf("seeded follow edges for %d users", len(users))
	return nil
}

func (s *Seeder) pastTime(maxDays int) time.Time {
	daysBack := s.rand.Intn(maxDays)
	minsBack := s.rand.Intn(24 * 60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(minsBack)*time.Minute)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
