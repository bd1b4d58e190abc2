package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Summary aggregates the prices of one asset over one period.
//
// Fields:
//   - Code: upper-case asset code (e.g., "BTC").
//   - StartTime/EndTime: instants of the earliest and latest observation.
//   - Oldest/Newest: prices at StartTime and EndTime.
//   - Min/Max: extreme prices observed in the period.
//
// The normalized range is derived from Min and Max on every call to
// NormalizedRange and is never stored.
//
// swagger:model Summary
type Summary struct {
	ID        int64
	Code      string
	StartTime time.Time
	EndTime   time.Time
	Oldest    float64
	Newest    float64
	Min       float64
	Max       float64
}

// NewSummary builds a Summary for a period with a single observation.
func NewSummary(code string, at time.Time, price float64) Summary {
	return Summary{
		Code:      code,
		StartTime: at,
		EndTime:   at,
		Oldest:    price,
		Newest:    price,
		Min:       price,
		Max:       price,
	}
}

// NormalizedRange returns (Max - Min) / Min, or 0 when Min is not positive.
func (s Summary) NormalizedRange() float64 {
	if s.Min <= 0 {
		return 0
	}
	return (s.Max - s.Min) / s.Min
}

// String renders the summary with its period in UTC. See Format.
func (s Summary) String() string {
	return s.Format(time.UTC)
}

// Format renders the summary as a single human-readable line, period dates
// taken in loc (nil means UTC) and prices with two decimals, e.g.:
//
//	Code : BTC | Period : 01-01-2022 - 31-01-2022 | Oldest Price : 46813.21 | ...
func (s Summary) Format(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	var b strings.Builder
	fmt.Fprintf(&b, " Code : %s", s.Code)
	fmt.Fprintf(&b, " | Period : %s - %s", s.StartTime.In(loc).Format(DayLayout), s.EndTime.In(loc).Format(DayLayout))
	fmt.Fprintf(&b, " | Oldest Price : %s", money(s.Oldest))
	fmt.Fprintf(&b, " | Newest Price : %s", money(s.Newest))
	fmt.Fprintf(&b, " | Min Price : %s", money(s.Min))
	fmt.Fprintf(&b, " | Max Price : %s", money(s.Max))
	fmt.Fprintf(&b, " | Normalized Range : %s", money(s.NormalizedRange()))
	return b.String()
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixedBank(2)
}
