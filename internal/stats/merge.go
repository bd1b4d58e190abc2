// Package stats combines and orders price summaries.
package stats

import (
	"github.com/guttosm/cryptopulse/internal/apperr"
	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// Merge folds the summaries of one asset into a single summary covering them.
//
// Start/oldest come from the summary with the earliest start and end/newest
// from the one with the latest end (first occurrence wins ties). Min and max
// are the extremes across all inputs. An empty input fails with
// NoHistoricalData; months is only used for that message.
func Merge(code string, months int, subs []models.Summary) (models.Summary, error) {
	if len(subs) == 0 {
		return models.Summary{}, apperr.NoHistoricalData(code, months)
	}

	out := subs[0]
	out.ID = 0
	out.Code = code

	for _, s := range subs[1:] {
		if s.StartTime.Before(out.StartTime) {
			out.StartTime = s.StartTime
			out.Oldest = s.Oldest
		}
		if s.EndTime.After(out.EndTime) {
			out.EndTime = s.EndTime
			out.Newest = s.Newest
		}
		out.Min = min(out.Min, s.Min)
		out.Max = max(out.Max, s.Max)
	}
	return out, nil
}

// MergeAll merges the history of every code and ranks the results.
//
// Codes without summaries are skipped. The call fails with
// NoHistoryAcrossCodes only when no code produced a summary.
func MergeAll(codes []string, months int, grouped map[string][]models.Summary) ([]models.Summary, error) {
	merged := make([]models.Summary, 0, len(codes))
	for _, code := range codes {
		s, err := Merge(code, months, grouped[code])
		if err != nil {
			if apperr.Is(err, apperr.KindNoHistoricalData) {
				continue
			}
			return nil, err
		}
		merged = append(merged, s)
	}
	if len(merged) == 0 {
		return nil, apperr.NoHistoryAcrossCodes(months)
	}
	return Rank(merged), nil
}
