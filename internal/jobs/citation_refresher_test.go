package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

type fakeStore struct {
	pubs    []models.Publication
	updates map[uint]int
	listErr error
}

func (f *fakeStore) WithDOIs() ([]models.Publication, error) {
	return f.pubs, f.listErr
}

func (f *fakeStore) UpdateCitationCount(id uint, count *int) error {
	if f.updates == nil {
		f.updates = make(map[uint]int)
	}
	f.updates[id] = *count
	return nil
}

type fakeSource struct {
	counts map[string]*int
}

func (f *fakeSource) CitationCount(_ context.Context, doi string) *int {
	return f.counts[doi]
}

func pubWithDOI(id uint, doi string, count *int) models.Publication {
	p := models.Publication{Title: doi, Type: models.PubJournalArticle, DOI: doi, CitationCount: count}
	p.ID = id
	return p
}

func TestRunOnce_UpdatesChangedCounts(t *testing.T) {
	three, five, seven := 3, 5, 7
	store := &fakeStore{pubs: []models.Publication{
		pubWithDOI(1, "10.1000/a", &three), // source says 5, should update
		pubWithDOI(2, "10.1000/b", &seven), // unchanged, skipped
		pubWithDOI(3, "10.1000/c", nil),    // unknown upstream, left alone
	}}
	source := &fakeSource{counts: map[string]*int{
		"10.1000/a": &five,
		"10.1000/b": &seven,
	}}

	job := NewCitationRefresherJob(store, source, "0 3 * * *", nil)
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}

	if len(store.updates) != 1 {
		t.Fatalf("expected exactly one update, got %v", store.updates)
	}
	if store.updates[1] != 5 {
		t.Fatalf("expected publication 1 updated to 5, got %v", store.updates)
	}
}

func TestRunOnce_ListError(t *testing.T) {
	store := &fakeStore{listErr: errors.New("db down")}
	job := NewCitationRefresherJob(store, &fakeSource{}, "0 3 * * *", nil)

	if err := job.RunOnce(context.Background()); err == nil {
		t.Fatal("expected error when loading publications fails")
	}
}

func TestRunOnce_HonorsContextCancel(t *testing.T) {
	one := 1
	store := &fakeStore{pubs: []models.Publication{pubWithDOI(1, "10.1000/a", nil)}}
	source := &fakeSource{counts: map[string]*int{"10.1000/a": &one}}
	job := NewCitationRefresherJob(store, source, "0 3 * * *", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := job.RunOnce(ctx); err == nil {
		t.Fatal("expected context error")
	}
	if len(store.updates) != 0 {
		t.Fatalf("no updates expected after cancellation, got %v", store.updates)
	}
}
