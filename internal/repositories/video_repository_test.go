package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/testhelpers"
)

func seedVideos(t *testing.T, repo *VideoRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		v := models.Video{
			Title:       fmt.Sprintf("Video %02d", i),
			YouTubeID:   fmt.Sprintf("yt-%08d", i),
			Category:    models.VideoLecture,
			PublishedAt: time.Date(2024, 1, i, 0, 0, 0, 0, time.UTC),
		}
		if i%2 == 0 {
			v.Category = models.VideoInterview
		}
		if err := repo.DB.Create(&v).Error; err != nil {
			t.Fatalf("failed to seed video: %v", err)
		}
	}
}

func TestVideoRepository_ListAfterCursor(t *testing.T) {
	repo := &VideoRepository{DB: testhelpers.SetupTestDB(t)}
	seedVideos(t, repo, 7)

	// first page: newest first, one extra row probed but not returned
	page1, err := repo.ListAfterCursor("", 3, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page1.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(page1.Items))
	}
	if page1.Items[0].Title != "Video 07" {
		t.Fatalf("expected newest first, got %q", page1.Items[0].Title)
	}
	if !page1.HasNextPage || page1.NextCursor == nil {
		t.Fatalf("expected a next page")
	}

	// second page continues past the cursor with no overlap
	page2, err := repo.ListAfterCursor(*page1.NextCursor, 3, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page2.Items[0].Title != "Video 04" {
		t.Fatalf("expected Video 04 first on page 2, got %q", page2.Items[0].Title)
	}
	if !page2.HasNextPage {
		t.Fatalf("expected a third page")
	}

	// final page: one item, no next cursor
	page3, err := repo.ListAfterCursor(*page2.NextCursor, 3, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page3.Items) != 1 || page3.HasNextPage || page3.NextCursor != nil {
		t.Fatalf("expected a final page of 1, got %+v", page3)
	}
}

func TestVideoRepository_ExactPageBoundary(t *testing.T) {
	repo := &VideoRepository{DB: testhelpers.SetupTestDB(t)}
	seedVideos(t, repo, 3)

	page, err := repo.ListAfterCursor("", 3, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(page.Items))
	}
	if page.HasNextPage || page.NextCursor != nil {
		t.Fatalf("a full page with no extra row must not report a next page")
	}
}

func TestVideoRepository_CategoryFilter(t *testing.T) {
	repo := &VideoRepository{DB: testhelpers.SetupTestDB(t)}
	seedVideos(t, repo, 6)

	page, err := repo.ListAfterCursor("", 10, models.VideoInterview)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 3 {
		t.Fatalf("expected 3 interviews, got %d", len(page.Items))
	}
	for _, v := range page.Items {
		if v.Category != models.VideoInterview {
			t.Fatalf("category filter leaked %q", v.Category)
		}
	}
}

func TestVideoRepository_BadCursorActsAsFirstPage(t *testing.T) {
	repo := &VideoRepository{DB: testhelpers.SetupTestDB(t)}
	seedVideos(t, repo, 2)

	page, err := repo.ListAfterCursor("not-a-number", 5, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected the full first page, got %d items", len(page.Items))
	}
}
