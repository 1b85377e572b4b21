package gridconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDMSPair(t *testing.T) {
	pair, err := ParseDMSPair("09°11′51″N, 012°39′15″E")
	require.NoError(t, err)

	assert.Equal(t, DMSComponents{Degrees: 9, Minutes: 11, Seconds: 51, Hemisphere: 'N'}, pair.Latitude)
	assert.Equal(t, DMSComponents{Degrees: 12, Minutes: 39, Seconds: 15, Hemisphere: 'E'}, pair.Longitude)
	assert.Equal(t, "09°11′51″N", pair.LatitudeText)
	assert.Equal(t, " 012°39′15″E", pair.LongitudeText)

	assert.InDelta(t, 9.1975, pair.Latitude.Decimal(), 1e-9)
	assert.InDelta(t, 12.654166, pair.Longitude.Decimal(), 1e-6)
}

func TestParseDMSPairSpaces(t *testing.T) {
	pair, err := ParseDMSPair("09 11 51.72 S, 012 39 15.48 W")
	require.NoError(t, err)

	assert.InDelta(t, -9.1977, pair.Latitude.Decimal(), 1e-9)
	assert.InDelta(t, -12.6543, pair.Longitude.Decimal(), 1e-9)
}

func TestParseDMSPairErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		kind  error
		msg   string
	}{
		{
			name:  "latitude degrees",
			value: "99°11′51″N, 012°39′15″E",
			kind:  ErrRange,
			msg:   "Degrees of latitude must be a whole number between 0 and 90",
		},
		{
			name:  "latitude minutes",
			value: "9°111′51″N, 012°39′15″E",
			kind:  ErrRange,
			msg:   "Minutes of latitude must be a whole number between 0 - 60",
		},
		{
			name:  "latitude seconds",
			value: "9°11′511″N, 012°39′15″E",
			kind:  ErrRange,
			msg:   "Seconds of latitude must be a whole number between 0 - 60",
		},
		{
			name:  "latitude direction",
			value: "09°11′51″D, 012°39′15″E",
			kind:  ErrFormat,
			msg:   "Direction of latitude must be either North (N) or South (S)",
		},
		{
			name:  "longitude degrees",
			value: "09°11′51″N, 912°39′15″E",
			kind:  ErrRange,
			msg:   "Degrees of longitude must be a whole number between 0 and 180",
		},
		{
			name:  "longitude minutes",
			value: "09°11′51″N, 12°139′15″E",
			kind:  ErrRange,
			msg:   "Minutes of longitude must be a whole number between 0 - 60",
		},
		{
			name:  "longitude seconds",
			value: "09°11′51″N, 12°39′115″E",
			kind:  ErrRange,
			msg:   "Seconds of longitude must be a whole number between 0 - 60",
		},
		{
			name:  "longitude direction",
			value: "09°11′51″N, 012°39′15″D",
			kind:  ErrFormat,
			msg:   "Direction of longitude must be either East (E) or West (W)",
		},
		{
			name:  "missing comma",
			value: "09°11′51″N 012°39′15″E",
			kind:  ErrFormat,
			msg:   "Expected latitude and longitude separated by a comma",
		},
		{
			name:  "fractional degrees",
			value: "9.5°11′51″N, 012°39′15″E",
			kind:  ErrRange,
			msg:   "Degrees of latitude must be a whole number between 0 and 90",
		},
		{
			name:  "missing seconds",
			value: "09°11′N, 012°39′15″E",
			kind:  ErrRange,
			msg:   "Seconds of latitude must be a whole number between 0 - 60",
		},
		{
			name:  "empty seconds between separators",
			value: "09°11′″N, 012°39′15″E",
			kind:  ErrRange,
			msg:   "Seconds of latitude must be a whole number between 0 - 60",
		},
		{
			name:  "non-numeric minutes",
			value: "09°x′51″N, 012°39′15″E",
			kind:  ErrRange,
			msg:   "Minutes of latitude must be a whole number between 0 - 60",
		},
		{
			name:  "lower case direction",
			value: "09°11′51″n, 012°39′15″E",
			kind:  ErrFormat,
			msg:   "Direction of latitude must be either North (N) or South (S)",
		},
		{
			name:  "extra field",
			value: "09°11′51″N X, 012°39′15″E",
			kind:  ErrFormat,
			msg:   "Direction of latitude must be either North (N) or South (S)",
		},
		{
			name:  "wrong axis letter",
			value: "09°11′51″E, 012°39′15″N",
			kind:  ErrFormat,
			msg:   "Direction of latitude must be either North (N) or South (S)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := ParseDMSPair(tt.value)
			require.ErrorIs(t, err, tt.kind)
			assert.EqualError(t, err, tt.msg)
			assert.Equal(t, DMSPair{}, pair)
		})
	}
}

func TestParseDMSPairBoundaries(t *testing.T) {
	_, err := ParseDMSPair("90°00′00″N, 180°00′00″W")
	require.NoError(t, err)

	_, err = ParseDMSPair("00°59′59.999″S, 000°00′00″E")
	require.NoError(t, err)

	_, err = ParseDMSPair("00°60′00″S, 000°00′00″E")
	require.ErrorIs(t, err, ErrRange)
}
