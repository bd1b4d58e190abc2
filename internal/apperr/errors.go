// Package apperr defines the user-facing failures of the price summary engine.
//
// Every failure carries a Kind used for classification and a literal message
// that is returned to callers verbatim.
package apperr

import (
	"errors"
	"fmt"
)

// Kind identifies a failure independently of its message.
type Kind int

const (
	KindUnknown Kind = iota

	KindMalformedTimestampOrPrice
	KindInsufficientFields
	KindInvalidDateFormat
	KindInvalidMonthsParameter

	KindCodeMismatch
	KindNonPositivePrice
	KindEmptySeries
	KindUnreadableSource

	KindNoData
	KindNoHistoricalData
	KindNoHistoryAcrossCodes
	KindUnknownCode
	KindSourceNotFound

	KindDuplicateCode
	KindCodeTooLong
	KindInvalidCodeFormat

	KindSourceIO
)

var kindNames = map[Kind]string{
	KindUnknown:                   "unknown",
	KindMalformedTimestampOrPrice: "malformed_timestamp_or_price",
	KindInsufficientFields:        "insufficient_fields",
	KindInvalidDateFormat:         "invalid_date_format",
	KindInvalidMonthsParameter:    "invalid_months_parameter",
	KindCodeMismatch:              "code_mismatch",
	KindNonPositivePrice:          "non_positive_price",
	KindEmptySeries:               "empty_series",
	KindUnreadableSource:          "unreadable_source",
	KindNoData:                    "no_data",
	KindNoHistoricalData:          "no_historical_data",
	KindNoHistoryAcrossCodes:      "no_history_across_codes",
	KindUnknownCode:               "unknown_code",
	KindSourceNotFound:            "source_not_found",
	KindDuplicateCode:             "duplicate_code",
	KindCodeTooLong:               "code_too_long",
	KindInvalidCodeFormat:         "invalid_code_format",
	KindSourceIO:                  "source_io",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Class groups kinds by how a caller should react to them.
type Class int

const (
	ClassInternal Class = iota
	ClassInput
	ClassIntegrity
	ClassAbsence
	ClassRegistration
)

// Class reports the group a kind belongs to.
func (k Kind) Class() Class {
	switch k {
	case KindMalformedTimestampOrPrice, KindInsufficientFields, KindCodeMismatch,
		KindNonPositivePrice, KindEmptySeries, KindUnreadableSource:
		return ClassIntegrity
	case KindInvalidDateFormat, KindInvalidMonthsParameter:
		return ClassInput
	case KindNoData, KindNoHistoricalData, KindNoHistoryAcrossCodes, KindUnknownCode, KindSourceNotFound:
		return ClassAbsence
	case KindDuplicateCode, KindCodeTooLong, KindInvalidCodeFormat:
		return ClassRegistration
	default:
		return ClassInternal
	}
}

// Error is a classified failure with a fixed human-readable message.
//
// Source names the price file the failure relates to; when set it is appended
// to the message as " : <source>".
type Error struct {
	Kind    Kind
	Message string
	Source  string
	Err     error
}

func (e *Error) Error() string {
	if e.Source == "" {
		return e.Message
	}
	return e.Message + " : " + e.Source
}

func (e *Error) Unwrap() error { return e.Err }

// WithSource returns a copy of e attributed to the given price file.
func (e *Error) WithSource(source string) *Error {
	cp := *e
	cp.Source = source
	return &cp
}

// New builds an Error without an underlying cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap builds an Error around a cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ClassOf returns the class of err; errors outside the taxonomy are internal.
func ClassOf(err error) Class {
	return KindOf(err).Class()
}
