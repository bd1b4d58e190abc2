package models

import "time"

// DayLayout is the calendar date format accepted by day filters (DD-MM-YYYY).
const DayLayout = "02-01-2006"

// Observation represents a single row of a crypto prices file.
//
// Column order:
//  1. Timestamp (epoch milliseconds)
//  2. Code
//  3. Price
type Observation struct {
	Code      string
	Timestamp time.Time
	Price     float64
}
