package service

import (
	"context"
	"errors"
	"testing"

	"github.com/adiweb12/Devwatsee/internal/repository"
)

func TestSearchEmptyKeywordReturnsCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(repository.NewVideoRepository(db), nil)
	seedVideo(t, db, "First", "Tech", "Latest")
	seedVideo(t, db, "Second", "Food", "Latest")

	items, err := svc.SearchVideos(context.Background(), "   ")
	if err != nil {
		t.Fatalf("SearchVideos: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected the whole catalog, got %d items", len(items))
	}
}

func TestSearchFallsBackToDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(repository.NewVideoRepository(db), nil) // no index wired
	seedVideo(t, db, "Go Concurrency Patterns", "Tech", "Latest")
	seedVideo(t, db, "Weeknight Pasta", "Food", "Latest")

	items, err := svc.SearchVideos(context.Background(), "PASTA")
	if err != nil {
		t.Fatalf("SearchVideos: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Weeknight Pasta" {
		t.Fatalf("expected the case-insensitive title match, got %+v", items)
	}

	items, err = svc.SearchVideos(context.Background(), "tech")
	if err != nil {
		t.Fatalf("SearchVideos: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Go Concurrency Patterns" {
		t.Fatalf("expected the category match, got %+v", items)
	}
}

func TestSearchUsesIndexOrder(t *testing.T) {
	db := newTestDB(t)
	first := seedVideo(t, db, "First", "Tech", "Latest")
	second := seedVideo(t, db, "Second", "Tech", "Latest")
	index := &fakeIndex{ids: []int64{second.ID, 999, first.ID}}
	svc := NewSearchService(repository.NewVideoRepository(db), index)

	items, err := svc.SearchVideos(context.Background(), "tech")
	if err != nil {
		t.Fatalf("SearchVideos: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected the unknown id to be dropped, got %d items", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected relevance order to hold, got %+v", items)
	}
}

func TestSearchIndexAnswersEmpty(t *testing.T) {
	db := newTestDB(t)
	seedVideo(t, db, "First", "Tech", "Latest")
	svc := NewSearchService(repository.NewVideoRepository(db), &fakeIndex{})

	items, err := svc.SearchVideos(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("SearchVideos: %v", err)
	}
	// an empty index answer is an answer, not a failure
	if len(items) != 0 {
		t.Fatalf("expected no hits, got %+v", items)
	}
}

func TestSearchIndexFailureFallsBack(t *testing.T) {
	db := newTestDB(t)
	seedVideo(t, db, "Go Concurrency Patterns", "Tech", "Latest")
	index := &fakeIndex{err: errors.New("cluster red")}
	svc := NewSearchService(repository.NewVideoRepository(db), index)

	items, err := svc.SearchVideos(context.Background(), "go")
	if err != nil {
		t.Fatalf("expected the fallback to cover the index failure: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Go Concurrency Patterns" {
		t.Fatalf("expected the database match, got %+v", items)
	}
}
