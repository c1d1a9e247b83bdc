// Package archive persists computed readings as opaque snapshots so they
// can be retrieved without recomputation.
package archive

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aristath/meridian/internal/modules/chart"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrNotFound is returned when no archived reading matches the given id.
var ErrNotFound = errors.New("archived reading not found")

// Record is one archived reading: the msgpack snapshot plus the indexed
// metadata used for listing.
type Record struct {
	ID        string    `json:"id"`
	DayMaster string    `json:"day_master"`
	SunSign   string    `json:"sun_sign"`
	CreatedAt time.Time `json:"created_at"`
	Reading   chart.Reading
}

// Summary is the listing view of a record, without the snapshot payload.
type Summary struct {
	ID        string    `json:"id"`
	DayMaster string    `json:"day_master"`
	SunSign   string    `json:"sun_sign"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository provides archive operations over SQLite.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new archive repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the readings table if it does not exist.
func (r *Repository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS readings (
			id         TEXT PRIMARY KEY,
			day_master TEXT NOT NULL,
			sun_sign   TEXT NOT NULL,
			snapshot   BLOB NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_readings_created_at ON readings(created_at);
	`)
	if err != nil {
		return fmt.Errorf("failed to create readings schema: %w", err)
	}
	return nil
}

// Save stores a reading and returns the record id.
func (r *Repository) Save(reading chart.Reading) (string, error) {
	snapshot, err := msgpack.Marshal(reading)
	if err != nil {
		return "", fmt.Errorf("failed to encode reading snapshot: %w", err)
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err = r.db.Exec(
		"INSERT INTO readings (id, day_master, sun_sign, snapshot, created_at) VALUES (?, ?, ?, ?, ?)",
		id,
		reading.Chart.FourPillars.DayMaster().String(),
		reading.SunSign.String(),
		snapshot,
		createdAt.Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to store reading: %w", err)
	}

	return id, nil
}

// Get returns the full archived record, snapshot decoded.
func (r *Repository) Get(id string) (Record, error) {
	var (
		record    Record
		snapshot  []byte
		createdAt int64
	)

	err := r.db.QueryRow(
		"SELECT id, day_master, sun_sign, snapshot, created_at FROM readings WHERE id = ?",
		id,
	).Scan(&record.ID, &record.DayMaster, &record.SunSign, &snapshot, &createdAt)
	if err == sql.ErrNoRows {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to get reading %s: %w", id, err)
	}

	if err := msgpack.Unmarshal(snapshot, &record.Reading); err != nil {
		return Record{}, fmt.Errorf("failed to decode reading snapshot %s: %w", id, err)
	}
	record.CreatedAt = time.Unix(createdAt, 0).UTC()

	return record, nil
}

// List returns the most recent records, newest first, without snapshots.
func (r *Repository) List(limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		"SELECT id, day_master, sun_sign, created_at FROM readings ORDER BY created_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}
	defer rows.Close()

	summaries := make([]Summary, 0, limit)
	for rows.Next() {
		var (
			s         Summary
			createdAt int64
		)
		if err := rows.Scan(&s.ID, &s.DayMaster, &s.SunSign, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan reading row: %w", err)
		}
		s.CreatedAt = time.Unix(createdAt, 0).UTC()
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reading rows: %w", err)
	}

	return summaries, nil
}

// Delete removes one record. Deleting a missing id returns ErrNotFound.
func (r *Repository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM readings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete reading %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// PurgeOlderThan removes records created before now − retention.
// Returns the number of rows deleted.
func (r *Repository) PurgeOlderThan(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention).Unix()

	result, err := r.db.Exec("DELETE FROM readings WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old readings: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get purged row count: %w", err)
	}
	return deleted, nil
}

// Count returns the number of archived readings.
func (r *Repository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM readings").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count readings: %w", err)
	}
	return count, nil
}
