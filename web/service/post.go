package service

import (
	"strings"
	"time"

	"microblog/database/model"
	"microblog/logger"
	"microblog/util/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// timestampFormat is ISO-8601 UTC with fixed-width milliseconds, so that
// lexicographic order on the stored string matches chronological order.
const timestampFormat = "2006-01-02T15:04:05.000Z"

// PostService implements the post ledger: create, list, count and delete over
// the posts table, newest first.
type PostService struct {
	db             *gorm.DB
	settingService *SettingService
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		db:             db,
		settingService: NewSettingService(db),
	}
}

// List returns posts ordered by timestamp descending. limit == 0 returns all
// posts; limit > 0 alone returns the first limit posts; limit > 0 with
// page > 0 returns the 1-indexed page at offset (page-1)*limit.
func (s *PostService) List(limit, page int) ([]model.Post, error) {
	posts := make([]model.Post, 0)
	query := s.db.Model(model.Post{}).Order("timestamp desc")
	if limit > 0 {
		query = query.Limit(limit)
		if page > 0 {
			query = query.Offset((page - 1) * limit)
		}
	}
	err := query.Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListVisible applies the visibility policy before touching the posts table:
// a private feed and no admin claim short-circuits to an empty list without
// running the query.
func (s *PostService) ListVisible(isAdmin bool, limit, page int) ([]model.Post, error) {
	postsPublic, err := s.settingService.GetPostsPublic()
	if err != nil {
		return nil, err
	}
	if !CanViewPosts(postsPublic, isAdmin) {
		return make([]model.Post, 0), nil
	}
	return s.List(limit, page)
}

// Count returns the total post count, independent of the visibility policy.
func (s *PostService) Count() (int64, error) {
	var count int64
	err := s.db.Model(model.Post{}).Count(&count).Error
	return count, err
}

// Create stores a new post with a collision-resistant opaque id and the
// current UTC timestamp. Content must be non-empty after trimming; it is
// stored as given. No server-side length cap is enforced.
func (s *PostService) Create(content string) (*model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, common.NewValidationError("content is required")
	}
	post := &model.Post{
		Id:        uuid.NewString(),
		Content:   content,
		Timestamp: time.Now().UTC().Format(timestampFormat),
	}
	err := s.db.Create(post).Error
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post with the given id. Deleting an unknown id is not an
// error, callers cannot distinguish the two outcomes.
func (s *PostService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&model.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		logger.Debugf("delete post: no post with id %s", id)
	}
	return nil
}
