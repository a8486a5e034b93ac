package dto

// VideoItem is one catalog entry as the clients see it. The thumbnail URL is
// exposed under the key "thumbnail".
type VideoItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Section   string `json:"section"`
	VideoURL  string `json:"video_url"`
	Thumbnail string `json:"thumbnail"`
}

// UpdateVideoRequest is a partial catalog edit. Absent fields keep their
// stored values.
type UpdateVideoRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=256"`
	Category *string `json:"category" binding:"omitempty,min=1,max=64"`
	Section  *string `json:"section" binding:"omitempty,min=1,max=64"`
}
