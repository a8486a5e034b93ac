package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/adiweb12/Devwatsee/internal/model"
)

type SavedVideoRepository struct {
	db *gorm.DB
}

func NewSavedVideoRepository(db *gorm.DB) *SavedVideoRepository {
	return &SavedVideoRepository{db: db}
}

// Save records a bookmark. ON CONFLICT DO NOTHING against the composite
// unique index makes concurrent duplicate saves land on a single row.
func (r *SavedVideoRepository) Save(userID, videoID int64) error {
	entry := &model.SavedVideo{UserID: userID, VideoID: videoID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(entry).Error
}

// Delete removes every ledger row for the pair and reports whether anything
// was there to remove.
func (r *SavedVideoRepository) Delete(userID, videoID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&model.SavedVideo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists reports whether the user has the video saved.
func (r *SavedVideoRepository) Exists(userID, videoID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.SavedVideo{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).Count(&count).Error
	return count > 0, err
}

// CountByUser counts the ledger rows of one user.
func (r *SavedVideoRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.SavedVideo{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ListVideosByUser joins the ledger to the catalog and returns the saved
// videos, most recently saved first.
func (r *SavedVideoRepository) ListVideosByUser(userID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Model(&model.Video{}).
		Joins("JOIN saved_videos ON saved_videos.video_id = videos.id").
		Where("saved_videos.user_id = ?", userID).
		Order("saved_videos.created_at DESC, saved_videos.id DESC").
		Find(&videos).Error
	return videos, err
}
