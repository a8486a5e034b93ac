package model

import "time"

// SavedVideo is one row of the bookmark ledger. The composite unique index
// makes concurrent duplicate saves collapse into a single row.
type SavedVideo struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_video_save" json:"user_id"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_user_video_save" json:"video_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name.
func (SavedVideo) TableName() string {
	return "saved_videos"
}
