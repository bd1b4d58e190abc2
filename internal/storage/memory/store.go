// Package memory provides an in-process storage.Repository.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/storage"
)

type windowKey struct {
	code       string
	start, end int64
}

func keyOf(code string, start, end time.Time) windowKey {
	return windowKey{code: code, start: start.UnixNano(), end: end.UnixNano()}
}

// Store keeps codes and summaries in maps guarded by a RWMutex.
type Store struct {
	mu        sync.RWMutex
	codes     map[string]models.AssetCode
	summaries map[windowKey]models.Summary
	nextCode  int64
	nextSum   int64
}

var _ storage.Repository = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{
		codes:     make(map[string]models.AssetCode),
		summaries: make(map[windowKey]models.Summary),
	}
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) ExistsCode(_ context.Context, code string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.codes[code]
	return ok, nil
}

func (s *Store) ListCodes(context.Context) ([]models.AssetCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AssetCode, 0, len(s.codes))
	for _, c := range s.codes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *Store) InsertCode(_ context.Context, code string) (models.AssetCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.codes[code]; ok {
		return models.AssetCode{}, fmt.Errorf("insert code %s: %w", code, storage.ErrDuplicateKey)
	}
	s.nextCode++
	c := models.AssetCode{ID: s.nextCode, Code: code}
	s.codes[code] = c
	return c, nil
}

func (s *Store) FindExact(_ context.Context, code string, start, end time.Time) (*models.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.summaries[keyOf(code, start, end)]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// UpsertSummary keeps the identity of an existing window and overwrites its prices.
func (s *Store) UpsertSummary(_ context.Context, in models.Summary) (models.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := keyOf(in.Code, in.StartTime, in.EndTime)
	if cur, ok := s.summaries[k]; ok {
		in.ID = cur.ID
	} else {
		s.nextSum++
		in.ID = s.nextSum
	}
	in.StartTime = in.StartTime.UTC()
	in.EndTime = in.EndTime.UTC()
	s.summaries[k] = in
	return in, nil
}

func (s *Store) FindSince(_ context.Context, code string, since time.Time) ([]models.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Summary
	for _, v := range s.summaries {
		if v.Code == code && v.StartTime.After(since) {
			out = append(out, v)
		}
	}
	sortByStart(out)
	return out, nil
}

func (s *Store) FindAllSince(_ context.Context, since time.Time) (map[string][]models.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]models.Summary)
	for _, v := range s.summaries {
		if v.StartTime.After(since) {
			out[v.Code] = append(out[v.Code], v)
		}
	}
	for _, list := range out {
		sortByStart(list)
	}
	return out, nil
}

func sortByStart(in []models.Summary) {
	sort.Slice(in, func(i, j int) bool {
		if !in[i].StartTime.Equal(in[j].StartTime) {
			return in[i].StartTime.Before(in[j].StartTime)
		}
		return in[i].ID < in[j].ID
	})
}
