package ingestion

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/cryptopulse/internal/apperr"
	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// recordFields is the column count of a prices file row.
const recordFields = 3

// ParseRecord converts a single CSV record into a models.Observation.
//
// Column order:
//
//	0 timestamp → Timestamp (epoch milliseconds, UTC instant)
//	1 symbol    → Code (must match expectedCode, case-insensitive)
//	2 price     → Price (float, must be > 0)
//
// Checks run in a fixed order and the first failure wins:
// field count, timestamp/price format, code, price sign.
func ParseRecord(rec []string, expectedCode string) (models.Observation, error) {
	var o models.Observation

	if len(rec) < recordFields {
		return o, apperr.InsufficientFields(len(rec))
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
	if err != nil {
		return o, apperr.MalformedTimestampOrPrice(err)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return o, apperr.MalformedTimestampOrPrice(err)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return o, apperr.MalformedTimestampOrPrice(nil)
	}

	code := strings.TrimSpace(rec[1])
	if !strings.EqualFold(code, expectedCode) {
		return o, apperr.CodeMismatch(code, expectedCode)
	}

	if price <= 0 {
		return o, apperr.NonPositivePrice(price)
	}

	o.Code = strings.ToUpper(code)
	o.Timestamp = time.UnixMilli(ms).UTC()
	o.Price = price
	return o, nil
}
