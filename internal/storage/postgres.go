package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	pq "github.com/lib/pq"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

const summaryColumns = `id, code, start_time, end_time, oldest, newest, min_price, max_price`

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a Repository backed by Postgres.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ExistsCode checks whether code is registered.
func (r *postgresRepository) ExistsCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM crypto_codes WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists code %s: %w", code, err)
	}
	return exists, nil
}

// ListCodes returns all registered codes ordered alphabetically.
func (r *postgresRepository) ListCodes(ctx context.Context) ([]models.AssetCode, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code FROM crypto_codes ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.AssetCode
	for rows.Next() {
		var c models.AssetCode
		if err := rows.Scan(&c.ID, &c.Code); err != nil {
			return nil, fmt.Errorf("scan code: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// InsertCode registers code. A unique violation maps to ErrDuplicateKey.
func (r *postgresRepository) InsertCode(ctx context.Context, code string) (models.AssetCode, error) {
	c := models.AssetCode{Code: code}
	err := r.db.QueryRowContext(ctx, `INSERT INTO crypto_codes (code) VALUES ($1) RETURNING id`, code).Scan(&c.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return models.AssetCode{}, fmt.Errorf("insert code %s: %w", code, ErrDuplicateKey)
		}
		return models.AssetCode{}, fmt.Errorf("insert code %s: %w", code, err)
	}
	return c, nil
}

// FindExact returns the summary stored for exactly this window, if any.
func (r *postgresRepository) FindExact(ctx context.Context, code string, start, end time.Time) (*models.Summary, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+summaryColumns+`
		FROM price_summaries
		WHERE code = $1 AND start_time = $2 AND end_time = $3
	`, code, start.UTC(), end.UTC())

	s, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find summary %s: %w", code, err)
	}
	return &s, nil
}

// UpsertSummary inserts s or updates the prices of the row with the same
// code, start_time and end_time in one statement.
func (r *postgresRepository) UpsertSummary(ctx context.Context, s models.Summary) (models.Summary, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO price_summaries (code, start_time, end_time, oldest, newest, min_price, max_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (code, start_time, end_time)
		DO UPDATE SET oldest = EXCLUDED.oldest,
					  newest = EXCLUDED.newest,
					  min_price = EXCLUDED.min_price,
					  max_price = EXCLUDED.max_price,
					  updated_at = NOW()
		RETURNING id
	`, s.Code, s.StartTime.UTC(), s.EndTime.UTC(), s.Oldest, s.Newest, s.Min, s.Max).Scan(&s.ID)
	if err != nil {
		return models.Summary{}, fmt.Errorf("upsert summary %s: %w", s.Code, err)
	}
	return s, nil
}

// FindSince returns summaries of code whose start_time is after since.
func (r *postgresRepository) FindSince(ctx context.Context, code string, since time.Time) ([]models.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+summaryColumns+`
		FROM price_summaries
		WHERE code = $1 AND start_time > $2
		ORDER BY start_time
	`, code, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("find summaries %s: %w", code, err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Summary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// FindAllSince returns every summary whose start_time is after since,
// grouped by code.
func (r *postgresRepository) FindAllSince(ctx context.Context, since time.Time) (map[string][]models.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+summaryColumns+`
		FROM price_summaries
		WHERE start_time > $1
		ORDER BY code, start_time
	`, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("find all summaries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string][]models.Summary)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out[s.Code] = append(out[s.Code], s)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (models.Summary, error) {
	var s models.Summary
	err := row.Scan(&s.ID, &s.Code, &s.StartTime, &s.EndTime, &s.Oldest, &s.Newest, &s.Min, &s.Max)
	if err != nil {
		return models.Summary{}, err
	}
	s.StartTime = s.StartTime.UTC()
	s.EndTime = s.EndTime.UTC()
	return s, nil
}
