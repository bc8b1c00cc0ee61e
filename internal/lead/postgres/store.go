package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/signcontract/leadbot/internal/lead"
)

// Store implements lead.Sink and lead.StatsProvider over the leads table.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps an already connected database.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Emit inserts one lead row. Status and notes follow the same fixed values
// the spreadsheet backend writes.
func (s *Store) Emit(ctx context.Context, l lead.Lead) error {
	const q = `
		INSERT INTO leads (captured_at, name, phone, segment, action, username, user_id, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := s.db.ExecContext(ctx, q,
		l.CapturedAt, l.Name, l.Phone, l.Segment, l.Action,
		l.Username, l.UserID, lead.StatusNew, lead.NotesSource,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

type bucketRow struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

// Statistics aggregates lead counts in the database.
func (s *Store) Statistics(ctx context.Context) (lead.Statistics, error) {
	stats := lead.Statistics{
		BySegment: make(map[string]int),
		ByAction:  make(map[string]int),
	}

	if err := s.db.GetContext(ctx, &stats.Total, `SELECT count(*) FROM leads`); err != nil {
		return lead.Statistics{}, fmt.Errorf("count leads: %w", err)
	}

	if err := s.bucket(ctx, `SELECT segment AS key, count(*) AS count FROM leads GROUP BY segment`, stats.BySegment); err != nil {
		return lead.Statistics{}, err
	}
	if err := s.bucket(ctx, `SELECT action AS key, count(*) AS count FROM leads GROUP BY action`, stats.ByAction); err != nil {
		return lead.Statistics{}, err
	}
	return stats, nil
}

func (s *Store) bucket(ctx context.Context, q string, dst map[string]int) error {
	var rows []bucketRow
	if err := s.db.SelectContext(ctx, &rows, q); err != nil {
		return fmt.Errorf("aggregate leads: %w", err)
	}
	for _, r := range rows {
		key := r.Key
		if key == "" {
			key = "unknown"
		}
		dst[key] = r.Count
	}
	return nil
}
