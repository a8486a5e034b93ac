package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/adiweb12/Devwatsee/internal/model"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create inserts a new catalog row.
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// GetByID looks a video up by primary key.
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	if err := r.db.Where("id = ?", id).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// List returns the whole catalog in insertion order. The catalog is listed
// unpaginated.
func (r *VideoRepository) List() ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Order("id ASC").Find(&videos).Error
	return videos, err
}

// GetByIDs batch-loads videos by primary key. Order is not guaranteed.
func (r *VideoRepository) GetByIDs(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}

// Update applies a partial field map and returns gorm.ErrRecordNotFound when
// the row does not exist.
func (r *VideoRepository) Update(id int64, updates map[string]interface{}) error {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchByKeyword does a case-insensitive substring match over title and
// category. Fallback path when the search index is unavailable.
func (r *VideoRepository) SearchByKeyword(keyword string) ([]model.Video, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	var videos []model.Video
	err := r.db.
		Where("LOWER(title) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&videos).Error
	return videos, err
}
