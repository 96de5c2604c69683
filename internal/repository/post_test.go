package repository

import (
	"context"
	"testing"
	"time"

	"ripple/internal/cache"
	"ripple/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")

	post := &models.Post{UserID: alice.ID, Text: "hello"}
	require.NoError(t, repo.Create(ctx, post))
	require.NotZero(t, post.ID)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Text)
	assert.Equal(t, "alice", got.User.Username)
}

func TestPostRepository_GetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"first", "second", "third"} {
		post := &models.Post{UserID: alice.ID, Text: text, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, db.Create(post).Error)
	}

	posts, err := repo.List(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Text)
	assert.Equal(t, "second", posts[1].Text)
	assert.Equal(t, "first", posts[2].Text)
}

func TestPostRepository_ListEqualTimestampsKeepInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")

	when := time.Now().Truncate(time.Second)
	for _, text := range []string{"a", "b", "c"} {
		post := &models.Post{UserID: alice.ID, Text: text, CreatedAt: when}
		require.NoError(t, db.Create(post).Error)
	}

	posts, err := repo.List(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	// Ties on created_at break on ascending id so equal-timestamp posts
	// keep a stable order across requests.
	assert.Equal(t, "a", posts[0].Text)
	assert.Equal(t, "b", posts[1].Text)
	assert.Equal(t, "c", posts[2].Text)
}

func TestPostRepository_ListByAuthors(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	base := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&models.Post{UserID: alice.ID, Text: "from alice", CreatedAt: base}).Error)
	require.NoError(t, db.Create(&models.Post{UserID: bob.ID, Text: "from bob", CreatedAt: base.Add(time.Minute)}).Error)
	require.NoError(t, db.Create(&models.Post{UserID: carol.ID, Text: "from carol", CreatedAt: base.Add(2 * time.Minute)}).Error)

	posts, err := repo.ListByAuthors(ctx, []uint{bob.ID, carol.ID}, 20, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "from carol", posts[0].Text)
	assert.Equal(t, "from bob", posts[1].Text)

	empty, err := repo.ListByAuthors(ctx, nil, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPostRepository_ListPreloadsCommentsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	post := &models.Post{UserID: alice.ID, Text: "hello"}
	require.NoError(t, db.Create(post).Error)

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"oldest", "middle", "newest"} {
		comment := &models.Comment{UserID: bob.ID, PostID: post.ID, Text: text, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, db.Create(comment).Error)
	}

	posts, err := repo.List(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Len(t, posts[0].Comments, 3)
	assert.Equal(t, "newest", posts[0].Comments[0].Text)
	assert.Equal(t, "middle", posts[0].Comments[1].Text)
	assert.Equal(t, "oldest", posts[0].Comments[2].Text)
	assert.Equal(t, "bob", posts[0].Comments[0].User.Username)
}

func TestPostRepository_ListCachesFeedPage(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	alice := createTestUser(t, db, "alice")
	first := &models.Post{UserID: alice.ID, Text: "hello"}
	require.NoError(t, repo.Create(ctx, first))

	posts, err := repo.List(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	key := cache.GlobalFeedKey(20, 0)
	assert.True(t, mr.Exists(key))

	// A new post drops every cached feed page and the next read sees it.
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: alice.ID, Text: "hi"}))
	assert.False(t, mr.Exists(key))

	posts, err = repo.List(ctx, 20, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.True(t, mr.Exists(key))

	// Comments render inside feed posts, so they invalidate too.
	commentRepo := NewCommentRepository(db)
	require.NoError(t, commentRepo.Create(ctx, &models.Comment{UserID: alice.ID, PostID: first.ID, Text: "nice"}))
	assert.False(t, mr.Exists(key))
}

func TestPostRepository_Exists(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	post := &models.Post{UserID: alice.ID, Text: "hello"}
	require.NoError(t, repo.Create(ctx, post))

	exists, err := repo.Exists(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}
