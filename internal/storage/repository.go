package storage

import (
	"context"
	"time"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// CodeRepository persists the registry of supported asset codes.
type CodeRepository interface {
	ExistsCode(ctx context.Context, code string) (bool, error)
	// ListCodes returns every code ordered by code.
	ListCodes(ctx context.Context) ([]models.AssetCode, error)
	// InsertCode fails with ErrDuplicateKey when code is already registered.
	InsertCode(ctx context.Context, code string) (models.AssetCode, error)
}

// SummaryRepository persists computed summaries keyed by code+start+end.
type SummaryRepository interface {
	// FindExact returns (nil, nil) when no summary covers exactly that window.
	FindExact(ctx context.Context, code string, start, end time.Time) (*models.Summary, error)
	// UpsertSummary inserts s, or overwrites the prices of the summary with
	// the same window. The stored summary is returned with its ID.
	UpsertSummary(ctx context.Context, s models.Summary) (models.Summary, error)
	// FindSince returns the summaries of code starting strictly after since.
	FindSince(ctx context.Context, code string, since time.Time) ([]models.Summary, error)
	// FindAllSince groups by code the summaries starting strictly after since.
	FindAllSince(ctx context.Context, since time.Time) (map[string][]models.Summary, error)
}

// Repository is the full persistence contract used by the service.
type Repository interface {
	CodeRepository
	SummaryRepository
	Ping(ctx context.Context) error
}
