package ingestion

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/guttosm/cryptopulse/internal/apperr"
	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// RecordReader yields raw records until io.EOF. *csv.Reader satisfies it.
type RecordReader interface {
	Read() ([]string, error)
}

// Aggregator folds the records of one asset into a models.Summary.
// Day filters are evaluated in the aggregator's calendar location.
type Aggregator struct {
	loc *time.Location
}

// NewAggregator returns an Aggregator for the given calendar; nil means UTC.
func NewAggregator(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{loc: loc}
}

// Aggregate consumes r in a single pass and returns the summary of code.
//
// Behavior:
//   - Every record is parsed before the day filter applies; the first parse
//     failure aborts the pass and no partial summary is returned.
//   - When day is set, records from other calendar days are skipped.
//   - Start/end only move on strictly earlier/later timestamps, so the first
//     of several equal timestamps provides the oldest/newest price.
//
// Returns:
//   - (summary, nil) when at least one record survived filtering.
//   - (nil, nil) when day is set and nothing matched it.
//   - (nil, EmptySeries) when day is nil and the stream held no records.
func (a *Aggregator) Aggregate(r RecordReader, code string, day *time.Time) (*models.Summary, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var (
		acc  models.Summary
		seen bool
	)

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		obs, err := ParseRecord(rec, code)
		if err != nil {
			return nil, err
		}

		if day != nil && !a.sameDay(obs.Timestamp, *day) {
			continue
		}

		if !seen {
			acc = models.NewSummary(code, obs.Timestamp, obs.Price)
			seen = true
			continue
		}

		if obs.Timestamp.Before(acc.StartTime) {
			acc.StartTime = obs.Timestamp
			acc.Oldest = obs.Price
		}
		if obs.Timestamp.After(acc.EndTime) {
			acc.EndTime = obs.Timestamp
			acc.Newest = obs.Price
		}
		if obs.Price < acc.Min {
			acc.Min = obs.Price
		}
		if obs.Price > acc.Max {
			acc.Max = obs.Price
		}
	}

	if !seen {
		if day == nil {
			return nil, apperr.EmptySeries()
		}
		return nil, nil
	}
	return &acc, nil
}

func (a *Aggregator) sameDay(at, day time.Time) bool {
	y1, m1, d1 := at.In(a.loc).Date()
	y2, m2, d2 := day.In(a.loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
