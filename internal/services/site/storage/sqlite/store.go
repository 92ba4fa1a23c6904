// Package sqlite provides the sqlite-backed feedback store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/oracledocs/oracledocs.dev/internal/platform/storage/sqlitemigrate"
	sitestorage "github.com/oracledocs/oracledocs.dev/internal/services/site/storage"
	"github.com/oracledocs/oracledocs.dev/internal/services/site/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides sqlite-backed persistence for page feedback.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a feedback store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying sqlite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveFeedback appends one feedback signal for a page.
func (s *Store) SaveFeedback(ctx context.Context, entry sitestorage.FeedbackEntry) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	entry.Slug = strings.TrimSpace(entry.Slug)
	if entry.Slug == "" {
		return fmt.Errorf("page slug is required")
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO page_feedback (slug, helpful, recorded_at) VALUES (?, ?, ?)`,
		entry.Slug,
		boolToInt(entry.Helpful),
		entry.RecordedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}
	return nil
}

// FeedbackTotals tallies recorded signals for one page.
func (s *Store) FeedbackTotals(ctx context.Context, slug string) (sitestorage.FeedbackTotals, error) {
	if s == nil || s.sqlDB == nil {
		return sitestorage.FeedbackTotals{}, fmt.Errorf("storage is not configured")
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return sitestorage.FeedbackTotals{}, fmt.Errorf("page slug is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT
		   COALESCE(SUM(CASE WHEN helpful = 1 THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN helpful = 0 THEN 1 ELSE 0 END), 0)
		 FROM page_feedback
		 WHERE slug = ?`,
		slug,
	)

	totals := sitestorage.FeedbackTotals{Slug: slug}
	if err := row.Scan(&totals.Helpful, &totals.Unhelpful); err != nil {
		return sitestorage.FeedbackTotals{}, fmt.Errorf("tally feedback: %w", err)
	}
	return totals, nil
}

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}

var _ sitestorage.Store = (*Store)(nil)
