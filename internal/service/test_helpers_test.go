package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	infraKafka "github.com/adiweb12/Devwatsee/internal/infra/kafka"
	"github.com/adiweb12/Devwatsee/internal/model"
	"github.com/adiweb12/Devwatsee/pkg/logger"
)

func TestMain(m *testing.M) {
	// the services log through the package-global zap instance
	if err := logger.Init("error", "console", "stdout", ""); err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// newTestDB opens a throwaway in-memory database, named after the test so
// nothing leaks between cases.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Video{}, &model.SavedVideo{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedVideo(t *testing.T, db *gorm.DB, title, category, section string) *model.Video {
	t.Helper()
	video := &model.Video{
		Title:        title,
		Category:     category,
		Section:      section,
		VideoURL:     "http://media.test/videos/" + title,
		ThumbnailURL: "http://media.test/thumbnails/" + title,
	}
	if err := db.Create(video).Error; err != nil {
		t.Fatalf("seed video %s: %v", title, err)
	}
	return video
}

// fakeMailer records the last password-reset mail instead of sending it.
type fakeMailer struct {
	to           string
	username     string
	tempPassword string
	err          error
}

func (f *fakeMailer) SendPasswordReset(to, username, tempPassword string) error {
	if f.err != nil {
		return f.err
	}
	f.to = to
	f.username = username
	f.tempPassword = tempPassword
	return nil
}

type uploadCall struct {
	folder      string
	filename    string
	size        int64
	contentType string
}

// fakeMediaStore hands back deterministic URLs and keeps every upload.
type fakeMediaStore struct {
	uploads []uploadCall
	err     error
}

func (f *fakeMediaStore) Upload(ctx context.Context, folder, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, uploadCall{folder: folder, filename: filename, size: size, contentType: contentType})
	return "http://media.test/" + folder + "/" + filename, nil
}

// fakeCache is an in-memory CatalogCache.
type fakeCache struct {
	data   map[string][]byte
	getErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	payload, ok := f.data[key]
	return payload, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, payload []byte) error {
	f.sets++
	f.data[key] = payload
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

// fakePublisher collects catalog events.
type fakePublisher struct {
	events []infraKafka.CatalogEvent
	err    error
}

func (f *fakePublisher) PublishCatalogEvent(ctx context.Context, event *infraKafka.CatalogEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, *event)
	return nil
}

// fakeIndex answers every keyword with a canned id list.
type fakeIndex struct {
	ids []int64
	err error
}

func (f *fakeIndex) SearchVideoIDs(ctx context.Context, keyword string) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ids, nil
}
