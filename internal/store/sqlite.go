package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/bio-browser/internal/model"
)

// SQLiteStore persists imported snapshots in SQLite. Load returns the most
// recently imported snapshot.
type SQLiteStore struct {
	db      *sql.DB
	path    string
	entropy io.Reader
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		path:    dbPath,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) newID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id           TEXT PRIMARY KEY,
		source       TEXT NOT NULL,
		record_count INTEGER NOT NULL,
		created_at   TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS records (
		snapshot_id          TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		seq                  INTEGER NOT NULL,
		id                   INTEGER NOT NULL,
		biography            TEXT NOT NULL,
		predicted_label      INTEGER NOT NULL DEFAULT 0,
		predicted_profession TEXT NOT NULL DEFAULT '',
		reason               TEXT NOT NULL DEFAULT '',
		skill_domain         TEXT NOT NULL,
		experience_level     INTEGER NOT NULL,
		confidence_score     REAL NOT NULL DEFAULT 0,
		ai_confidence        TEXT NOT NULL,
		biography_length     TEXT NOT NULL,
		PRIMARY KEY (snapshot_id, seq),
		UNIQUE (snapshot_id, id)
	);
	CREATE INDEX IF NOT EXISTS idx_records_domain ON records(snapshot_id, skill_domain);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save validates records and stores them as a new snapshot, preserving
// their order.
func (s *SQLiteStore) Save(ctx context.Context, source string, records []model.Record) (*Snapshot, error) {
	if err := ValidateRecords(records); err != nil {
		return nil, fmt.Errorf("validate records: %w", err)
	}

	now := time.Now().UTC()
	snap := &Snapshot{
		ID:          s.newID(now),
		Source:      source,
		RecordCount: len(records),
		CreatedAt:   now.Truncate(time.Second),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, source, record_count, created_at) VALUES (?, ?, ?, ?)`,
		snap.ID, snap.Source, snap.RecordCount, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (snapshot_id, seq, id, biography, predicted_label, predicted_profession,
		                      reason, skill_domain, experience_level, confidence_score, ai_confidence, biography_length)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		_, err = stmt.ExecContext(ctx,
			snap.ID, i, r.ID, r.Biography, r.PredictedLabel, r.PredictedProfession,
			r.Reason, r.SkillDomain, r.ExperienceLevel, r.ConfidenceScore, r.AIConfidence, r.BiographyLength)
		if err != nil {
			return nil, fmt.Errorf("insert record %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Load returns the records of the latest snapshot in base order.
func (s *SQLiteStore) Load(ctx context.Context) ([]model.Record, error) {
	snap, err := s.Latest(ctx)
	if err != nil {
		return nil, &LoadError{Source: s.path, Op: OpRead, Cause: err}
	}
	records, err := s.Records(ctx, snap.ID)
	if err != nil {
		return nil, &LoadError{Source: s.path, Op: OpRead, Cause: err}
	}
	return records, nil
}

// Records returns the records of one snapshot in base order.
func (s *SQLiteStore) Records(ctx context.Context, snapshotID string) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, biography, predicted_label, predicted_profession, reason, skill_domain,
		        experience_level, confidence_score, ai_confidence, biography_length
		 FROM records WHERE snapshot_id = ? ORDER BY seq`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Latest returns the most recently imported snapshot, or ErrNoSnapshot.
func (s *SQLiteStore) Latest(ctx context.Context) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, record_count, created_at FROM snapshots ORDER BY id DESC LIMIT 1`)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Snapshots lists imported snapshots, newest first.
func (s *SQLiteStore) Snapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, record_count, created_at FROM snapshots ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (model.Record, error) {
	var r model.Record
	err := row.Scan(
		&r.ID, &r.Biography, &r.PredictedLabel, &r.PredictedProfession, &r.Reason,
		&r.SkillDomain, &r.ExperienceLevel, &r.ConfidenceScore, &r.AIConfidence, &r.BiographyLength,
	)
	return r, err
}

func scanSnapshot(row scanner) (Snapshot, error) {
	var snap Snapshot
	var createdAt string
	if err := row.Scan(&snap.ID, &snap.Source, &snap.RecordCount, &createdAt); err != nil {
		return snap, err
	}
	snap.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return snap, nil
}
