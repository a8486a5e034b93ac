package service

import (
	"github.com/adiweb12/Devwatsee/internal/api/dto"
	"github.com/adiweb12/Devwatsee/internal/repository"
)

// BookmarkService owns the saved-video ledger.
type BookmarkService struct {
	savedRepo *repository.SavedVideoRepository
}

func NewBookmarkService(savedRepo *repository.SavedVideoRepository) *BookmarkService {
	return &BookmarkService{savedRepo: savedRepo}
}

// Save records the bookmark. Saving an already-saved video is a no-op; the
// unique index guarantees a single ledger row per pair either way.
func (s *BookmarkService) Save(userID, videoID int64) error {
	return s.savedRepo.Save(userID, videoID)
}

// Unsave removes every ledger row for the pair. Unsaving a video that was
// never saved succeeds.
func (s *BookmarkService) Unsave(userID, videoID int64) error {
	_, err := s.savedRepo.Delete(userID, videoID)
	return err
}

// ListSaved returns the member's saved videos.
func (s *BookmarkService) ListSaved(userID int64) ([]dto.SavedVideoItem, error) {
	videos, err := s.savedRepo.ListVideosByUser(userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SavedVideoItem, 0, len(videos))
	for i := range videos {
		items = append(items, dto.SavedVideoItem{
			ID:        videos[i].ID,
			Title:     videos[i].Title,
			Thumbnail: videos[i].ThumbnailURL,
		})
	}
	return items, nil
}
