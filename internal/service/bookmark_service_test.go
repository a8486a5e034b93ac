package service

import (
	"testing"

	"github.com/adiweb12/Devwatsee/internal/repository"
)

func TestBookmarkSaveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	savedRepo := repository.NewSavedVideoRepository(db)
	svc := NewBookmarkService(savedRepo)
	video := seedVideo(t, db, "Launch Trailer", "Gaming", "Latest")

	if err := svc.Save(7, video.ID); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Save(7, video.ID); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	count, err := savedRepo.CountByUser(7)
	if err != nil {
		t.Fatalf("CountByUser: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single ledger row, got %d", count)
	}
}

func TestBookmarkUnsaveNeverSaved(t *testing.T) {
	svc := NewBookmarkService(repository.NewSavedVideoRepository(newTestDB(t)))

	if err := svc.Unsave(7, 12345); err != nil {
		t.Fatalf("expected unsaving an unsaved video to succeed: %v", err)
	}
}

func TestBookmarkListSaved(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService(repository.NewSavedVideoRepository(db))
	first := seedVideo(t, db, "First", "Tech", "Latest")
	second := seedVideo(t, db, "Second", "Food", "Latest")

	if err := svc.Save(7, first.ID); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Save(7, second.ID); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// another member's ledger stays invisible
	if err := svc.Save(8, first.ID); err != nil {
		t.Fatalf("Save: %v", err)
	}

	items, err := svc.ListSaved(7)
	if err != nil {
		t.Fatalf("ListSaved: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 saved videos, got %d", len(items))
	}
	// most recently saved first
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("unexpected order: %+v", items)
	}
	if items[0].Title != "Second" {
		t.Fatalf("expected the title carried over, got %q", items[0].Title)
	}
	if items[0].Thumbnail == "" {
		t.Fatal("expected the thumbnail URL carried over")
	}

	if err := svc.Unsave(7, second.ID); err != nil {
		t.Fatalf("Unsave: %v", err)
	}
	items, err = svc.ListSaved(7)
	if err != nil {
		t.Fatalf("ListSaved: %v", err)
	}
	if len(items) != 1 || items[0].ID != first.ID {
		t.Fatalf("expected only the remaining bookmark, got %+v", items)
	}
}
