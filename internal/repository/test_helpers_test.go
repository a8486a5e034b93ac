package repository

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adiweb12/Devwatsee/internal/model"
)

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

func seedUser(t *testing.T, repo *UserRepository, username, email string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Name:     "Member " + username,
		Email:    email,
		Password: "bcrypt-hash",
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedVideo(t *testing.T, repo *VideoRepository, title, category string) *model.Video {
	t.Helper()
	video := &model.Video{
		Title:        title,
		Category:     category,
		Section:      "Latest",
		VideoURL:     "http://media.test/videos/" + title,
		ThumbnailURL: "http://media.test/thumbnails/" + title,
	}
	if err := repo.Create(video); err != nil {
		t.Fatalf("seed video %s: %v", title, err)
	}
	return video
}
