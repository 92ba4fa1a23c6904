package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	sitestorage "github.com/oracledocs/oracledocs.dev/internal/services/site/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "feedback.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSaveFeedbackAndTotals(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	entries := []sitestorage.FeedbackEntry{
		{Slug: "ton-price-feeds", Helpful: true},
		{Slug: "ton-price-feeds", Helpful: true},
		{Slug: "ton-price-feeds", Helpful: false},
		{Slug: "evm-price-feeds", Helpful: true},
	}
	for _, entry := range entries {
		if err := store.SaveFeedback(ctx, entry); err != nil {
			t.Fatalf("save feedback: %v", err)
		}
	}

	totals, err := store.FeedbackTotals(ctx, "ton-price-feeds")
	if err != nil {
		t.Fatalf("feedback totals: %v", err)
	}
	if totals.Helpful != 2 || totals.Unhelpful != 1 {
		t.Fatalf("totals = %d/%d, want 2/1", totals.Helpful, totals.Unhelpful)
	}
}

func TestFeedbackTotalsEmptyPage(t *testing.T) {
	store := openTestStore(t)

	totals, err := store.FeedbackTotals(context.Background(), "how-price-feeds-work")
	if err != nil {
		t.Fatalf("feedback totals: %v", err)
	}
	if totals.Helpful != 0 || totals.Unhelpful != 0 {
		t.Fatalf("expected zero totals, got %d/%d", totals.Helpful, totals.Unhelpful)
	}
}

func TestSaveFeedbackRequiresSlug(t *testing.T) {
	store := openTestStore(t)

	err := store.SaveFeedback(context.Background(), sitestorage.FeedbackEntry{
		Slug:       "   ",
		Helpful:    true,
		RecordedAt: time.Now(),
	})
	if err == nil {
		t.Fatal("expected error for missing slug")
	}
}

func TestFeedbackTotalsRequiresSlug(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.FeedbackTotals(context.Background(), ""); err == nil {
		t.Fatal("expected error for missing slug")
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
	if err := store.SaveFeedback(context.Background(), sitestorage.FeedbackEntry{Slug: "x"}); err == nil {
		t.Fatal("expected error from nil store save")
	}
}
