package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/adiweb12/Devwatsee/internal/api/dto"
	"github.com/adiweb12/Devwatsee/internal/model"
	"github.com/adiweb12/Devwatsee/internal/repository"
	"github.com/adiweb12/Devwatsee/pkg/logger"
)

// SearchIndex answers keyword queries with matching video ids in relevance
// order.
type SearchIndex interface {
	SearchVideoIDs(ctx context.Context, keyword string) ([]int64, error)
}

// SearchService finds catalog entries by keyword. When the index is absent
// or failing it falls back to a database substring match.
type SearchService struct {
	videoRepo *repository.VideoRepository
	index     SearchIndex
}

func NewSearchService(videoRepo *repository.VideoRepository, index SearchIndex) *SearchService {
	return &SearchService{videoRepo: videoRepo, index: index}
}

// SearchVideos matches title and category against the keyword. An empty
// keyword returns the whole catalog.
func (s *SearchService) SearchVideos(ctx context.Context, keyword string) ([]dto.VideoItem, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		videos, err := s.videoRepo.List()
		if err != nil {
			return nil, err
		}
		return videosToItems(videos), nil
	}

	if s.index != nil {
		items, err := s.searchFromIndex(ctx, keyword)
		if err == nil {
			return items, nil
		}
		logger.Warn("Index search failed, fallback to DB",
			zap.String("keyword", keyword),
			zap.Error(err),
		)
	}

	videos, err := s.videoRepo.SearchByKeyword(keyword)
	if err != nil {
		return nil, err
	}
	return videosToItems(videos), nil
}

// searchFromIndex resolves ids from the index, loads the rows and restores
// relevance order. Ids without a backing row are dropped.
func (s *SearchService) searchFromIndex(ctx context.Context, keyword string) ([]dto.VideoItem, error) {
	ids, err := s.index.SearchVideoIDs(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []dto.VideoItem{}, nil
	}

	videos, err := s.videoRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}

	items := make([]dto.VideoItem, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			items = append(items, videoToItem(v))
		}
	}
	return items, nil
}
