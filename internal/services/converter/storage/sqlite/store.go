package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/roman/internal/platform/id"
	"github.com/louisbranch/roman/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/roman/internal/services/converter/storage"
	"github.com/louisbranch/roman/internal/services/converter/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// timeFormat is fixed width so created_at sorts lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Store is a SQLite-backed conversion history.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
	newID func() (string, error)
}

// Open opens (creating if needed) the history database at path and applies
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{
		sqlDB: sqlDB,
		now:   func() time.Time { return time.Now().UTC() },
		newID: id.NewID,
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record inserts one conversion. Missing ID and CreatedAt are filled in.
func (s *Store) Record(ctx context.Context, conversion storage.Conversion) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(conversion.Direction) == "" {
		return fmt.Errorf("direction is required")
	}
	if strings.TrimSpace(conversion.Code) == "" {
		return fmt.Errorf("code is required")
	}
	if conversion.ID == "" {
		generated, err := s.newID()
		if err != nil {
			return fmt.Errorf("generate conversion id: %w", err)
		}
		conversion.ID = generated
	}
	if conversion.CreatedAt.IsZero() {
		conversion.CreatedAt = s.now()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO conversions (id, direction, input, output, code, request_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		conversion.ID,
		conversion.Direction,
		conversion.Input,
		conversion.Output,
		conversion.Code,
		conversion.RequestID,
		conversion.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert conversion: %w", err)
	}
	return nil
}

// ListRecent returns up to limit conversions, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]storage.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, direction, input, output, code, request_id, created_at
		 FROM conversions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		storage.ClampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	defer rows.Close()

	var conversions []storage.Conversion
	for rows.Next() {
		var (
			c         storage.Conversion
			createdAt string
		)
		if err := rows.Scan(&c.ID, &c.Direction, &c.Input, &c.Output, &c.Code, &c.RequestID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		c.CreatedAt, err = time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		conversions = append(conversions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return conversions, nil
}

var _ storage.HistoryStore = (*Store)(nil)
