// Package storage defines the persistence contract for page feedback.
package storage

import (
	"context"
	"time"
)

// FeedbackEntry records one "was this page helpful" signal.
type FeedbackEntry struct {
	// Slug is the documentation page the signal belongs to.
	Slug string
	// Helpful is true for a positive signal.
	Helpful bool
	// RecordedAt is when the signal was received.
	RecordedAt time.Time
}

// FeedbackTotals tallies recorded signals for one page.
type FeedbackTotals struct {
	Slug      string
	Helpful   int64
	Unhelpful int64
}

// Store persists page feedback.
type Store interface {
	SaveFeedback(ctx context.Context, entry FeedbackEntry) error
	FeedbackTotals(ctx context.Context, slug string) (FeedbackTotals, error)
	Close() error
}
