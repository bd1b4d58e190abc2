package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/cryptopulse/internal/apperr"
	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/ingestion"
	"github.com/guttosm/cryptopulse/internal/logger"
	"github.com/guttosm/cryptopulse/internal/observability"
	"github.com/guttosm/cryptopulse/internal/stats"
	"github.com/guttosm/cryptopulse/internal/storage"
)

// CryptoService defines the caller-facing operations over crypto prices.
//
// Dates are DD-MM-YYYY strings (empty means the whole file) and months are
// raw query values; both are validated here so every transport gets the
// same failures.
type CryptoService interface {
	GetAll(ctx context.Context, date string) ([]models.Summary, error)
	GetByCode(ctx context.Context, code, date string) (models.Summary, error)
	GetHighestForDay(ctx context.Context, date string) (models.Summary, error)
	GetCodes(ctx context.Context) ([]models.AssetCode, error)
	AddCode(ctx context.Context, code string) (models.AssetCode, error)
	GetHistoryAll(ctx context.Context, months string) ([]models.Summary, error)
	GetHistoryByCode(ctx context.Context, code, months string) (models.Summary, error)
	Ping(ctx context.Context) error
}

// Options tunes a Service.
type Options struct {
	// Location is the calendar used for day filters. Nil means UTC.
	Location *time.Location
	// Parallel bounds concurrent file scans; <= 0 uses NumCPU.
	Parallel int
	// CodesFromFolder iterates over the price files instead of the registry.
	CodesFromFolder bool
	// Now is the clock used for history lookbacks. Nil means time.Now.
	Now     func() time.Time
	Metrics *observability.Metrics
}

// Service implements CryptoService on top of a price folder and a repository.
type Service struct {
	repo    storage.Repository
	parser  *ingestion.FileParser
	folder  *ingestion.Folder
	codes   CodeSource
	rules   []CodeRule
	loc     *time.Location
	par     int
	now     func() time.Time
	metrics *observability.Metrics
	log     zerolog.Logger
}

var _ CryptoService = (*Service)(nil)

// NewService wires a Service.
func NewService(repo storage.Repository, folder *ingestion.Folder, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	var codes CodeSource = RegistrySource{Repo: repo}
	if opts.CodesFromFolder {
		codes = FolderSource{Folder: folder}
	}

	return &Service{
		repo:    repo,
		parser:  ingestion.NewFileParser(folder, loc),
		folder:  folder,
		codes:   codes,
		rules:   RegistrationRules(repo.ExistsCode),
		loc:     loc,
		par:     opts.Parallel,
		now:     now,
		metrics: opts.Metrics,
		log:     logger.With("service"),
	}
}

// GetAll summarizes every known code, optionally for one day, ranked by
// normalized range. Codes whose file is missing, corrupted or has no data
// for the day are skipped; an empty result is not an error.
func (s *Service) GetAll(ctx context.Context, date string) ([]models.Summary, error) {
	day, err := ParseDay(date, s.loc)
	if err != nil {
		return nil, err
	}
	computed, err := s.scanAll(ctx, day)
	if err != nil {
		return nil, err
	}
	stored, err := s.persist(ctx, computed)
	if err != nil {
		return nil, err
	}
	return stats.Rank(stored), nil
}

// GetByCode summarizes one code, optionally for one day.
func (s *Service) GetByCode(ctx context.Context, code, date string) (models.Summary, error) {
	day, err := ParseDay(date, s.loc)
	if err != nil {
		return models.Summary{}, err
	}
	code, err = s.known(ctx, code)
	if err != nil {
		return models.Summary{}, err
	}

	sum, err := s.parser.Parse(ctx, code, day)
	s.observeSource(err, sum)
	if err != nil {
		return models.Summary{}, err
	}
	if sum == nil {
		return models.Summary{}, apperr.NoData()
	}

	stored, err := s.persist(ctx, []models.Summary{*sum})
	if err != nil {
		return models.Summary{}, err
	}
	return stored[0], nil
}

// GetHighestForDay returns the code with the highest normalized range.
func (s *Service) GetHighestForDay(ctx context.Context, date string) (models.Summary, error) {
	all, err := s.GetAll(ctx, date)
	if err != nil {
		return models.Summary{}, err
	}
	top, ok := stats.Top(all)
	if !ok {
		return models.Summary{}, apperr.NoData()
	}
	return top, nil
}

// GetCodes lists the known codes.
func (s *Service) GetCodes(ctx context.Context) ([]models.AssetCode, error) {
	codes, err := s.codes.Codes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}
	return codes, nil
}

// AddCode validates and registers a new code.
func (s *Service) AddCode(ctx context.Context, code string) (models.AssetCode, error) {
	code = NormalizeCode(code)
	if err := ValidateCode(ctx, code, s.rules); err != nil {
		return models.AssetCode{}, err
	}

	c, err := s.repo.InsertCode(ctx, code)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return models.AssetCode{}, apperr.DuplicateCode(code)
	}
	if err != nil {
		return models.AssetCode{}, err
	}

	s.metrics.ObserveRegistered()
	s.log.Info().Str("code", code).Msg("code registered")
	return c, nil
}

// GetHistoryByCode merges the stored summaries of code that start within
// the last months months.
func (s *Service) GetHistoryByCode(ctx context.Context, code, months string) (models.Summary, error) {
	m, err := ParseMonths(months)
	if err != nil {
		return models.Summary{}, err
	}
	code, err = s.known(ctx, code)
	if err != nil {
		return models.Summary{}, err
	}

	subs, err := s.repo.FindSince(ctx, code, s.since(m))
	if err != nil {
		return models.Summary{}, err
	}
	merged, err := stats.Merge(code, m, subs)
	if err != nil {
		return models.Summary{}, err
	}

	stored, err := s.persist(ctx, []models.Summary{merged})
	if err != nil {
		return models.Summary{}, err
	}
	return stored[0], nil
}

// GetHistoryAll merges the recent history of every known code and ranks it.
func (s *Service) GetHistoryAll(ctx context.Context, months string) ([]models.Summary, error) {
	m, err := ParseMonths(months)
	if err != nil {
		return nil, err
	}
	codes, err := s.GetCodes(ctx)
	if err != nil {
		return nil, err
	}
	grouped, err := s.repo.FindAllSince(ctx, s.since(m))
	if err != nil {
		return nil, err
	}

	merged, err := stats.MergeAll(codeNames(codes), m, grouped)
	if err != nil {
		return nil, err
	}
	stored, err := s.persist(ctx, merged)
	if err != nil {
		return nil, err
	}
	return stats.Rank(stored), nil
}

// Location returns the calendar used for day filters.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Ping checks the repository.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Ingest computes and stores the full-file summary of every known code.
//
// Corrupted or missing files are logged and skipped. It fails only when
// there were codes to ingest and none of them produced a summary.
func (s *Service) Ingest(ctx context.Context) (int, error) {
	start := time.Now()
	computed, err := s.scanAll(ctx, nil)
	if err != nil {
		return 0, err
	}
	if len(computed) == 0 {
		codes, err := s.GetCodes(ctx)
		if err != nil {
			return 0, err
		}
		if len(codes) > 0 {
			return 0, fmt.Errorf("ingest: no summary produced for %d codes", len(codes))
		}
		s.log.Warn().Msg("ingest: no codes to ingest")
		return 0, nil
	}

	stored, err := s.persist(ctx, computed)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("summaries", len(stored)).Dur("elapsed", time.Since(start)).Msg("ingest done")
	return len(stored), nil
}

// SeedCodes registers every code that has a price file. Codes that are
// already registered or not valid are skipped.
func (s *Service) SeedCodes(ctx context.Context) (int, error) {
	names, err := s.folder.ListAvailableCodes()
	if err != nil {
		return 0, err
	}

	added := 0
	for _, n := range names {
		if _, err := s.AddCode(ctx, n); err != nil {
			if apperr.ClassOf(err) == apperr.ClassRegistration {
				s.log.Debug().Str("code", n).Str("reason", err.Error()).Msg("seed: skipped")
				continue
			}
			return added, err
		}
		added++
	}
	s.log.Info().Int("found", len(names)).Int("added", added).Msg("seed done")
	return added, nil
}

// known normalizes code and fails with UnknownCode when it is not known.
func (s *Service) known(ctx context.Context, code string) (string, error) {
	code = NormalizeCode(code)
	ok, err := s.codes.Exists(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exists code %s: %w", code, err)
	}
	if !ok {
		return "", apperr.UnknownCode(code)
	}
	return code, nil
}

func (s *Service) since(months int) time.Time {
	return s.now().AddDate(0, -months, 0)
}

// scanAll parses the file of every known code and keeps the successes.
func (s *Service) scanAll(ctx context.Context, day *time.Time) ([]models.Summary, error) {
	codes, err := s.GetCodes(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.parser.Scan(ctx, codeNames(codes), day, s.par)
	if err != nil {
		return nil, err
	}

	out := make([]models.Summary, 0, len(results))
	for _, r := range results {
		s.observeSource(r.Err, r.Summary)
		if r.Err != nil {
			s.log.Warn().
				Str("code", r.Code).
				Str("kind", apperr.KindOf(r.Err).String()).
				Err(r.Err).
				Msg("source skipped")
			continue
		}
		if r.Summary != nil {
			out = append(out, *r.Summary)
		}
	}
	return out, nil
}

// persist stores each summary unless an identical one is already stored.
func (s *Service) persist(ctx context.Context, in []models.Summary) ([]models.Summary, error) {
	out := make([]models.Summary, 0, len(in))
	written := 0
	for _, sum := range in {
		cur, err := s.repo.FindExact(ctx, sum.Code, sum.StartTime, sum.EndTime)
		if err != nil {
			return nil, err
		}
		if cur != nil && samePrices(*cur, sum) {
			out = append(out, *cur)
			continue
		}
		stored, err := s.repo.UpsertSummary(ctx, sum)
		if err != nil {
			return nil, err
		}
		written++
		out = append(out, stored)
	}
	s.metrics.ObservePersisted(written)
	return out, nil
}

func samePrices(a, b models.Summary) bool {
	return a.Oldest == b.Oldest && a.Newest == b.Newest && a.Min == b.Min && a.Max == b.Max
}

func (s *Service) observeSource(err error, sum *models.Summary) {
	switch {
	case err == nil && sum == nil:
		s.metrics.ObserveSource(observability.SourceNoData)
	case err == nil:
		s.metrics.ObserveSource(observability.SourceOK)
	case apperr.Is(err, apperr.KindSourceNotFound):
		s.metrics.ObserveSource(observability.SourceMissing)
	case apperr.ClassOf(err) == apperr.ClassIntegrity:
		s.metrics.ObserveSource(observability.SourceCorrupted)
	default:
		s.metrics.ObserveSource(observability.SourceError)
	}
}
