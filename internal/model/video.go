package model

import "time"

// Video is one catalog entry. The URL columns point at the external media
// host; the database never stores media bytes.
type Video struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"type:varchar(256);not null" json:"title"`
	Category     string    `gorm:"type:varchar(64);not null;index" json:"category"`
	Section      string    `gorm:"type:varchar(64);not null;default:Latest" json:"section"`
	VideoURL     string    `gorm:"type:varchar(512);not null" json:"video_url"`
	ThumbnailURL string    `gorm:"type:varchar(512);not null" json:"thumbnail_url"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name.
func (Video) TableName() string {
	return "videos"
}
