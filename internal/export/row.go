// Package export writes ranked price summaries to files.
package export

import "github.com/guttosm/cryptopulse/internal/domain/models"

// Row is the flat shape of a summary written by every Saver.
// Times are Unix milliseconds, matching the price files.
type Row struct {
	Code            string  `json:"code" parquet:"code"`
	StartTime       int64   `json:"start_time" parquet:"start_time"`
	EndTime         int64   `json:"end_time" parquet:"end_time"`
	Oldest          float64 `json:"oldest" parquet:"oldest"`
	Newest          float64 `json:"newest" parquet:"newest"`
	Min             float64 `json:"min" parquet:"min"`
	Max             float64 `json:"max" parquet:"max"`
	NormalizedRange float64 `json:"normalized_range" parquet:"normalized_range"`
}

// Rows flattens summaries in order.
func Rows(in []models.Summary) []Row {
	out := make([]Row, len(in))
	for i, s := range in {
		out[i] = Row{
			Code:            s.Code,
			StartTime:       s.StartTime.UnixMilli(),
			EndTime:         s.EndTime.UnixMilli(),
			Oldest:          s.Oldest,
			Newest:          s.Newest,
			Min:             s.Min,
			Max:             s.Max,
			NormalizedRange: s.NormalizedRange(),
		}
	}
	return out
}
