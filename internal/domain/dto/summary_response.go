package dto

import (
	"time"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// SummaryResponse represents one summary in the JSON returned by the
// /api/v1/cryptos and /api/v1/history endpoints.
//
// Fields match the API contract and may differ from internal domain models.
type SummaryResponse struct {
	Code            string    `json:"code" example:"BTC"`
	StartTime       time.Time `json:"start_time" example:"2022-01-01T04:00:00Z"`
	EndTime         time.Time `json:"end_time" example:"2022-01-31T20:00:00Z"`
	Oldest          float64   `json:"oldest" example:"46813.21"`
	Newest          float64   `json:"newest" example:"38415.79"`
	Min             float64   `json:"min" example:"33276.59"`
	Max             float64   `json:"max" example:"47722.66"`
	NormalizedRange float64   `json:"normalized_range" example:"0.4341908"`
}

// FromSummary maps a domain summary to its API shape.
func FromSummary(s models.Summary) SummaryResponse {
	return SummaryResponse{
		Code:            s.Code,
		StartTime:       s.StartTime.UTC(),
		EndTime:         s.EndTime.UTC(),
		Oldest:          s.Oldest,
		Newest:          s.Newest,
		Min:             s.Min,
		Max:             s.Max,
		NormalizedRange: s.NormalizedRange(),
	}
}

// FromSummaries maps a ranked slice, preserving order.
func FromSummaries(in []models.Summary) []SummaryResponse {
	out := make([]SummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromSummary(s))
	}
	return out
}

// CodeResponse represents one registered asset code.
type CodeResponse struct {
	Code string `json:"code" example:"BTC"`
}

// FromCodes maps registered codes to their API shape.
func FromCodes(in []models.AssetCode) []CodeResponse {
	out := make([]CodeResponse, 0, len(in))
	for _, c := range in {
		out = append(out, CodeResponse{Code: c.Code})
	}
	return out
}
