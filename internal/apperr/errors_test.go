package apperr

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages_AreLiteral(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"duplicate", DuplicateCode("BTC"), "The crypto code BTC already exists"},
		{"too long", CodeTooLong(), "The crypto code cannot have more than 5 characters"},
		{"format", InvalidCodeFormat(), "The crypto code must contain only alphabetic characters"},
		{"months range", MonthsOutOfRange(), "The number of months to search for in history must be greater than zero and less than 36(3y)"},
		{"months nan", MonthsNotNumber(nil), "The number of months to search for in history must be a number"},
		{"unknown code", UnknownCode("BTX"), "The crypto code BTX is not supported"},
		{"no history", NoHistoricalData("BTC", 12), "There is no data for the crypto BTC in the last 12 months"},
		{"no history all", NoHistoryAcrossCodes(12), "There is no crypto data in the last 12 months"},
		{"no data day", NoData(), "There is no crypto price data for this date"},
		{"date", InvalidDateFormat(nil), "Incorrect format for date parameter"},
		{"other codes", CodeMismatch("ETH", "BTC").WithSource("BTC_values.csv"), "The crypto prices file is corrupted(other codes) : BTC_values.csv"},
		{"no data file", EmptySeries().WithSource("DOGE_values.csv"), "The crypto prices file is corrupted(no data) : DOGE_values.csv"},
		{"zero price", NonPositivePrice(0).WithSource("ETH_values.csv"), "The crypto prices file is corrupted(zero or negative prices) : ETH_values.csv"},
		{"format file", MalformedTimestampOrPrice(nil).WithSource("XRP_values.csv"), "The crypto prices file is corrupted(time or price format) : XRP_values.csv"},
		{"insufficient", InsufficientFields(2).WithSource("BTX_values.csv"), "The crypto prices file is corrupted(insufficient data) : BTX_values.csv"},
		{"missing", SourceNotFound(nil).WithSource("BTZ_values.csv"), "The crypto prices file cannot be found : BTZ_values.csv"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestWithSource_DoesNotMutateOriginal(t *testing.T) {
	base := EmptySeries()
	attributed := base.WithSource("BTC_values.csv")

	assert.Empty(t, base.Source)
	assert.Equal(t, "BTC_values.csv", attributed.Source)
	assert.Equal(t, base.Kind, attributed.Kind)
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	inner := CodeMismatch("ETH", "BTC")
	wrapped := fmt.Errorf("parse: %w", inner)

	assert.Equal(t, KindCodeMismatch, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindCodeMismatch))
	assert.False(t, Is(wrapped, KindNonPositivePrice))
	assert.Equal(t, ClassIntegrity, ClassOf(wrapped))

	assert.Equal(t, KindUnknown, KindOf(io.EOF))
	assert.Equal(t, ClassInternal, ClassOf(io.EOF))
	assert.False(t, Is(nil, KindUnknown))
}

func TestUnwrap_ExposesCause(t *testing.T) {
	cause := errors.New("disk gone")
	err := SourceIO(cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, ClassInternal, err.Kind.Class())
}

func TestKindClasses(t *testing.T) {
	cases := map[Kind]Class{
		KindInvalidDateFormat:      ClassInput,
		KindInvalidMonthsParameter: ClassInput,
		KindEmptySeries:            ClassIntegrity,
		KindUnreadableSource:       ClassIntegrity,
		KindNoHistoryAcrossCodes:   ClassAbsence,
		KindSourceNotFound:         ClassAbsence,
		KindCodeTooLong:            ClassRegistration,
		KindUnknown:                ClassInternal,
	}
	for k, want := range cases {
		assert.Equal(t, want, k.Class(), k.String())
	}
	assert.Equal(t, "kind(999)", Kind(999).String())
}
