package repository

import "testing"

func TestSavedVideoRepositorySaveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewSavedVideoRepository(db)
	video := seedVideo(t, NewVideoRepository(db), "Launch Trailer", "Gaming")

	if err := repo.Save(7, video.ID); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(7, video.ID); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	count, err := repo.CountByUser(7)
	if err != nil {
		t.Fatalf("CountByUser: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single ledger row, got %d", count)
	}

	saved, err := repo.Exists(7, video.ID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !saved {
		t.Fatal("expected the pair to be saved")
	}
}

func TestSavedVideoRepositoryDeleteReportsRemoval(t *testing.T) {
	db := newTestDB(t)
	repo := NewSavedVideoRepository(db)
	video := seedVideo(t, NewVideoRepository(db), "Launch Trailer", "Gaming")

	if err := repo.Save(7, video.ID); err != nil {
		t.Fatalf("Save: %v", err)
	}

	removed, err := repo.Delete(7, video.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Fatal("expected the first delete to remove the row")
	}

	removed, err = repo.Delete(7, video.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if removed {
		t.Fatal("expected the second delete to find nothing")
	}
}

func TestSavedVideoRepositoryListVideosByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewSavedVideoRepository(db)
	videoRepo := NewVideoRepository(db)
	first := seedVideo(t, videoRepo, "First", "Tech")
	second := seedVideo(t, videoRepo, "Second", "Food")
	third := seedVideo(t, videoRepo, "Third", "Sports")

	for _, videoID := range []int64{first.ID, third.ID} {
		if err := repo.Save(7, videoID); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	// another member's ledger stays invisible
	if err := repo.Save(8, second.ID); err != nil {
		t.Fatalf("Save: %v", err)
	}

	videos, err := repo.ListVideosByUser(7)
	if err != nil {
		t.Fatalf("ListVideosByUser: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("expected 2 saved videos, got %d", len(videos))
	}
	// most recently saved first
	if videos[0].ID != third.ID || videos[1].ID != first.ID {
		t.Fatalf("unexpected order: %d then %d", videos[0].ID, videos[1].ID)
	}
}
