package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedRange(t *testing.T) {
	s := Summary{Min: 33276.59, Max: 47722.66}
	assert.InDelta(t, 0.4341908, s.NormalizedRange(), 1e-6)

	assert.Zero(t, NewSummary("BTC", time.Now(), 10).NormalizedRange())
	assert.Zero(t, Summary{}.NormalizedRange())
}

func TestNormalizedRange_FollowsMutation(t *testing.T) {
	s := Summary{Min: 10, Max: 20}
	assert.Equal(t, 1.0, s.NormalizedRange())
	s.Min = 5
	s.Max = 30
	assert.Equal(t, 5.0, s.NormalizedRange())
	assert.False(t, math.IsNaN(s.NormalizedRange()))
}

func TestSummary_String(t *testing.T) {
	s := Summary{
		Code:      "BTC",
		StartTime: time.Date(2022, 1, 1, 4, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2022, 1, 31, 20, 0, 0, 0, time.UTC),
		Oldest:    46813.21,
		Newest:    38415.79,
		Min:       33276.59,
		Max:       47722.66,
	}
	want := " Code : BTC | Period : 01-01-2022 - 31-01-2022 | Oldest Price : 46813.21 | Newest Price : 38415.79 | Min Price : 33276.59 | Max Price : 47722.66 | Normalized Range : 0.43"
	assert.Equal(t, want, s.String())
}

func TestSummary_Format_UsesLocationForPeriod(t *testing.T) {
	// 2022-02-02T02:00Z is still 01-02-2022 three hours west of UTC.
	at := time.Date(2022, 2, 2, 2, 0, 0, 0, time.UTC)
	s := NewSummary("BTC", at, 38415.79)
	west := time.FixedZone("UTC-3", -3*3600)

	assert.Contains(t, s.Format(west), " | Period : 01-02-2022 - 01-02-2022 | ")
	assert.Contains(t, s.String(), " | Period : 02-02-2022 - 02-02-2022 | ")
	assert.Equal(t, s.String(), s.Format(nil))
}
