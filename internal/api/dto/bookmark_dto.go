package dto

// SaveVideoRequest names the video to save or unsave.
type SaveVideoRequest struct {
	VideoID int64 `json:"video_id" binding:"required"`
}

// SaveStateResponse reports the resulting saved state.
type SaveStateResponse struct {
	Saved bool `json:"saved"`
}

// SavedVideoItem is one entry of the member's saved list.
type SavedVideoItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}
