package service

import (
	"path/filepath"
	"testing"

	"microblog/database"
	"microblog/database/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})
	return db
}

func insertPost(t *testing.T, db *gorm.DB, id, content, timestamp string) {
	t.Helper()
	err := db.Create(&model.Post{Id: id, Content: content, Timestamp: timestamp}).Error
	assert.NoError(t, err)
}

func TestPostLifecycle(t *testing.T) {
	db := setupTestDB(t)
	service := NewPostService(db)

	post, err := service.Create("hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", post.Content)
	assert.NotEmpty(t, post.Id)
	assert.NotEmpty(t, post.Timestamp)

	count, err := service.Count()
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)

	posts, err := service.List(10, 0)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, post.Id, posts[0].Id)

	err = service.Delete(post.Id)
	assert.NoError(t, err)

	count, err = service.Count()
	assert.NoError(t, err)
	assert.EqualValues(t, 0, count)

	posts, err = service.List(0, 0)
	assert.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCreateRequiresContent(t *testing.T) {
	db := setupTestDB(t)
	service := NewPostService(db)

	_, err := service.Create("")
	assert.Error(t, err)

	// whitespace-only content is rejected as well
	_, err = service.Create("   \n\t")
	assert.Error(t, err)

	count, err := service.Count()
	assert.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestListOrdering(t *testing.T) {
	db := setupTestDB(t)
	service := NewPostService(db)

	insertPost(t, db, "b", "second", "2025-06-02T10:00:00.000Z")
	insertPost(t, db, "c", "third", "2025-06-03T10:00:00.000Z")
	insertPost(t, db, "a", "first", "2025-06-01T10:00:00.000Z")

	posts, err := service.List(0, 0)
	assert.NoError(t, err)
	assert.Len(t, posts, 3)
	assert.Equal(t, "c", posts[0].Id)
	assert.Equal(t, "b", posts[1].Id)
	assert.Equal(t, "a", posts[2].Id)
}

func TestListPagination(t *testing.T) {
	db := setupTestDB(t)
	service := NewPostService(db)

	timestamps := []string{
		"2025-06-01T10:00:00.000Z",
		"2025-06-02T10:00:00.000Z",
		"2025-06-03T10:00:00.000Z",
		"2025-06-04T10:00:00.000Z",
		"2025-06-05T10:00:00.000Z",
	}
	ids := []string{"p1", "p2", "p3", "p4", "p5"}
	for i := range ids {
		insertPost(t, db, ids[i], "content", timestamps[i])
	}

	// limit only: first N in descending order
	posts, err := service.List(2, 0)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "p5", posts[0].Id)
	assert.Equal(t, "p4", posts[1].Id)

	// 1-indexed page: slice [(page-1)*limit, page*limit)
	posts, err = service.List(2, 2)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "p3", posts[0].Id)
	assert.Equal(t, "p2", posts[1].Id)

	// beyond range
	posts, err = service.List(2, 4)
	assert.NoError(t, err)
	assert.Empty(t, posts)
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	service := NewPostService(db)

	_, err := service.Create("keep me")
	assert.NoError(t, err)

	err = service.Delete("no-such-id")
	assert.NoError(t, err)

	count, err := service.Count()
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestListVisible(t *testing.T) {
	db := setupTestDB(t)
	service := NewPostService(db)
	settingService := NewSettingService(db)

	_, err := service.Create("visible?")
	assert.NoError(t, err)

	// public feed: everyone sees everything
	posts, err := service.ListVisible(false, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)

	err = settingService.saveSetting(SettingPostsPublic, "false")
	assert.NoError(t, err)

	// private feed: anonymous callers get an empty list
	posts, err = service.ListVisible(false, 0, 0)
	assert.NoError(t, err)
	assert.Empty(t, posts)

	// private feed: admin claim restores full visibility
	posts, err = service.ListVisible(true, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)

	// count is not gated by the visibility policy
	count, err := service.Count()
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCanViewPosts(t *testing.T) {
	assert.True(t, CanViewPosts(true, false))
	assert.True(t, CanViewPosts(true, true))
	assert.True(t, CanViewPosts(false, true))
	assert.False(t, CanViewPosts(false, false))
}
