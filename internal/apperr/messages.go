package apperr

import "fmt"

const (
	corruptedPrefix = "The crypto prices file is corrupted"

	msgTimeOrPriceFormat  = corruptedPrefix + "(time or price format)"
	msgInsufficientData   = corruptedPrefix + "(insufficient data)"
	msgOtherCodes         = corruptedPrefix + "(other codes)"
	msgNonPositivePrices  = corruptedPrefix + "(zero or negative prices)"
	msgNoData             = corruptedPrefix + "(no data)"
	msgUnreadable         = corruptedPrefix
	msgSourceNotFound     = "The crypto prices file cannot be found"
	msgSourceIO           = "IO error reading the crypto prices file"
	msgInvalidDate        = "Incorrect format for date parameter"
	msgMonthsNotNumber    = "The number of months to search for in history must be a number"
	msgMonthsOutOfRange   = "The number of months to search for in history must be greater than zero and less than 36(3y)"
	msgNoDataForDay       = "There is no crypto price data for this date"
	msgCodeTooLong        = "The crypto code cannot have more than 5 characters"
	msgInvalidCodeFormat  = "The crypto code must contain only alphabetic characters"
	fmtDuplicateCode      = "The crypto code %s already exists"
	fmtUnknownCode        = "The crypto code %s is not supported"
	fmtNoHistoricalData   = "There is no data for the crypto %s in the last %d months"
	fmtNoHistoryAcrossAll = "There is no crypto data in the last %d months"
)

// MalformedTimestampOrPrice reports a timestamp or price that is not a number.
func MalformedTimestampOrPrice(err error) *Error {
	return Wrap(KindMalformedTimestampOrPrice, msgTimeOrPriceFormat, err)
}

// InsufficientFields reports a record with fewer than three fields.
func InsufficientFields(got int) *Error {
	return Wrap(KindInsufficientFields, msgInsufficientData, fmt.Errorf("record has %d fields, want 3", got))
}

// CodeMismatch reports a record belonging to another code than its file.
func CodeMismatch(got, want string) *Error {
	return Wrap(KindCodeMismatch, msgOtherCodes, fmt.Errorf("record code %q does not match %q", got, want))
}

// NonPositivePrice reports a zero or negative price.
func NonPositivePrice(price float64) *Error {
	return Wrap(KindNonPositivePrice, msgNonPositivePrices, fmt.Errorf("price %v is not positive", price))
}

// EmptySeries reports a file without any price record.
func EmptySeries() *Error {
	return New(KindEmptySeries, msgNoData)
}

// UnreadableSource reports a file that is not valid CSV.
func UnreadableSource(err error) *Error {
	return Wrap(KindUnreadableSource, msgUnreadable, err)
}

// SourceNotFound reports a missing price file.
func SourceNotFound(err error) *Error {
	return Wrap(KindSourceNotFound, msgSourceNotFound, err)
}

// SourceIO reports any other failure while reading a price file.
func SourceIO(err error) *Error {
	return Wrap(KindSourceIO, msgSourceIO, err)
}

// InvalidDateFormat reports a date parameter that is not DD-MM-YYYY.
func InvalidDateFormat(err error) *Error {
	return Wrap(KindInvalidDateFormat, msgInvalidDate, err)
}

// MonthsNotNumber reports a months parameter that is not an integer.
func MonthsNotNumber(err error) *Error {
	return Wrap(KindInvalidMonthsParameter, msgMonthsNotNumber, err)
}

// MonthsOutOfRange reports a months parameter outside 1..36.
func MonthsOutOfRange() *Error {
	return New(KindInvalidMonthsParameter, msgMonthsOutOfRange)
}

// NoData is the single-code outcome of a day query that matched nothing.
func NoData() *Error {
	return New(KindNoData, msgNoDataForDay)
}

// NoHistoricalData reports that code has no stored summary in the lookback.
func NoHistoricalData(code string, months int) *Error {
	return New(KindNoHistoricalData, fmt.Sprintf(fmtNoHistoricalData, code, months))
}

// NoHistoryAcrossCodes reports that no code has a stored summary in the lookback.
func NoHistoryAcrossCodes(months int) *Error {
	return New(KindNoHistoryAcrossCodes, fmt.Sprintf(fmtNoHistoryAcrossAll, months))
}

// UnknownCode reports a code that is not registered.
func UnknownCode(code string) *Error {
	return New(KindUnknownCode, fmt.Sprintf(fmtUnknownCode, code))
}

// DuplicateCode reports a registration of an existing code.
func DuplicateCode(code string) *Error {
	return New(KindDuplicateCode, fmt.Sprintf(fmtDuplicateCode, code))
}

// CodeTooLong reports a code longer than five characters.
func CodeTooLong() *Error {
	return New(KindCodeTooLong, msgCodeTooLong)
}

// InvalidCodeFormat reports an empty or non-alphabetic code.
func InvalidCodeFormat() *Error {
	return New(KindInvalidCodeFormat, msgInvalidCodeFormat)
}
