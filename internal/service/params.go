package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/cryptopulse/internal/apperr"
	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// MaxHistoryMonths is the longest accepted history lookback.
const MaxHistoryMonths = 36

// ParseMonths validates a history lookback in months (1..36).
func ParseMonths(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, apperr.MonthsNotNumber(err)
	}
	if n <= 0 || n > MaxHistoryMonths {
		return 0, apperr.MonthsOutOfRange()
	}
	return n, nil
}

// ParseDay parses an optional DD-MM-YYYY day in loc. An empty string means
// no day filter and returns nil.
func ParseDay(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(models.DayLayout, s, loc)
	if err != nil {
		return nil, apperr.InvalidDateFormat(err)
	}
	return &d, nil
}
