package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/adiweb12/Devwatsee/internal/api/dto"
	infraKafka "github.com/adiweb12/Devwatsee/internal/infra/kafka"
	"github.com/adiweb12/Devwatsee/internal/model"
	"github.com/adiweb12/Devwatsee/internal/repository"
	"github.com/adiweb12/Devwatsee/pkg/logger"
)

var ErrVideoNotFound = errors.New("video not found")

const (
	defaultSection  = "Latest"
	videoFolder     = "videos"
	thumbnailFolder = "thumbnails"

	videoListCacheKey = "videos:all"
	uploadTimeout     = 5 * time.Minute
)

// MediaStore is the external host for video and thumbnail blobs. Upload
// returns the public URL of the stored object.
type MediaStore interface {
	Upload(ctx context.Context, folder, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

// CatalogCache keeps the serialized video list.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
	Invalidate(ctx context.Context, keys ...string) error
}

// EventPublisher announces catalog writes to downstream consumers.
type EventPublisher interface {
	PublishCatalogEvent(ctx context.Context, event *infraKafka.CatalogEvent) error
}

// Blob is one uploaded file as it arrives from the request.
type Blob struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}

// CatalogService owns the video catalog. cache and events are optional;
// a nil value means the capability is off and the service runs straight
// against the database.
type CatalogService struct {
	videoRepo *repository.VideoRepository
	media     MediaStore
	cache     CatalogCache
	events    EventPublisher
}

func NewCatalogService(videoRepo *repository.VideoRepository, media MediaStore, cache CatalogCache, events EventPublisher) *CatalogService {
	return &CatalogService{videoRepo: videoRepo, media: media, cache: cache, events: events}
}

// List returns the whole catalog, serving from the cache when it holds the
// list. Any cache failure degrades to the database.
func (s *CatalogService) List(ctx context.Context) ([]dto.VideoItem, error) {
	if s.cache != nil {
		payload, hit, err := s.cache.Get(ctx, videoListCacheKey)
		if err != nil {
			logger.Warn("Video list cache read failed", zap.Error(err))
		} else if hit {
			var items []dto.VideoItem
			if err := json.Unmarshal(payload, &items); err != nil {
				logger.Warn("Video list cache payload corrupt", zap.Error(err))
			} else {
				return items, nil
			}
		}
	}

	videos, err := s.videoRepo.List()
	if err != nil {
		return nil, err
	}
	items := videosToItems(videos)

	if s.cache != nil {
		if payload, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, videoListCacheKey, payload); err != nil {
				logger.Warn("Video list cache write failed", zap.Error(err))
			}
		}
	}

	return items, nil
}

// Create uploads the two blobs to the media host, video first, then commits
// one catalog row with the returned URLs. The uploads are sequential and
// there is no rollback of the first when the second fails.
func (s *CatalogService) Create(ctx context.Context, title, category, section string, video, thumbnail *Blob) (*dto.VideoItem, error) {
	if section == "" {
		section = defaultSection
	}

	uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	videoURL, err := s.uploadBlob(uploadCtx, videoFolder, video)
	if err != nil {
		return nil, fmt.Errorf("upload video: %w", err)
	}

	thumbnailURL, err := s.uploadBlob(uploadCtx, thumbnailFolder, thumbnail)
	if err != nil {
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	row := &model.Video{
		Title:        title,
		Category:     category,
		Section:      section,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
	}
	if err := s.videoRepo.Create(row); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, infraKafka.EventVideoCreated, row)

	item := videoToItem(row)
	return &item, nil
}

// Update applies a partial edit. Fields absent from the request keep their
// stored values.
func (s *CatalogService) Update(ctx context.Context, id int64, req *dto.UpdateVideoRequest) (*dto.VideoItem, error) {
	row, err := s.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
		row.Title = *req.Title
	}
	if req.Category != nil {
		updates["category"] = *req.Category
		row.Category = *req.Category
	}
	if req.Section != nil {
		updates["section"] = *req.Section
		row.Section = *req.Section
	}

	if len(updates) > 0 {
		if err := s.videoRepo.Update(id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVideoNotFound
			}
			return nil, err
		}
	}

	s.afterWrite(ctx, infraKafka.EventVideoUpdated, row)

	item := videoToItem(row)
	return &item, nil
}

// uploadBlob stores one blob under a fresh object name and returns its URL.
func (s *CatalogService) uploadBlob(ctx context.Context, folder string, blob *Blob) (string, error) {
	ext := strings.ToLower(filepath.Ext(blob.Filename))
	filename := uuid.New().String() + ext

	contentType := blob.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return s.media.Upload(ctx, folder, filename, blob.Reader, blob.Size, contentType)
}

// afterWrite invalidates the list cache and publishes the catalog event.
// Both are fire-and-forget; the write has already committed.
func (s *CatalogService) afterWrite(ctx context.Context, eventType string, row *model.Video) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, videoListCacheKey); err != nil {
			logger.Warn("Video list cache invalidation failed",
				zap.Int64("video_id", row.ID),
				zap.Error(err),
			)
		}
	}

	if s.events != nil {
		event := &infraKafka.CatalogEvent{
			Type:     eventType,
			VideoID:  row.ID,
			Title:    row.Title,
			Category: row.Category,
			Section:  row.Section,
		}
		if err := s.events.PublishCatalogEvent(ctx, event); err != nil {
			logger.Error("Catalog event publish failed",
				zap.String("type", eventType),
				zap.Int64("video_id", row.ID),
				zap.Error(err),
			)
		}
	}
}

func videoToItem(v *model.Video) dto.VideoItem {
	return dto.VideoItem{
		ID:        v.ID,
		Title:     v.Title,
		Category:  v.Category,
		Section:   v.Section,
		VideoURL:  v.VideoURL,
		Thumbnail: v.ThumbnailURL,
	}
}

func videosToItems(videos []model.Video) []dto.VideoItem {
	items := make([]dto.VideoItem, 0, len(videos))
	for i := range videos {
		items = append(items, videoToItem(&videos[i]))
	}
	return items
}
