package gridconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMGRS(t *testing.T) {
	tests := []struct {
		name     string
		mgrs     string
		expected MGRSRecord
	}{
		{
			name: "spaced",
			mgrs: "33P TL 42247 17553",
			expected: MGRSRecord{
				LonZone: 33, LatZone: 'P', Digraph: "TL", Easting: "42247", Northing: "17553", LonZoneText: "33",
			},
		},
		{
			name: "compact lower case",
			mgrs: "33ptl4224717553",
			expected: MGRSRecord{
				LonZone: 33, LatZone: 'P', Digraph: "TL", Easting: "42247", Northing: "17553", LonZoneText: "33",
			},
		},
		{
			name: "single digit zone",
			mgrs: "4QFJ1234567890",
			expected: MGRSRecord{
				LonZone: 4, LatZone: 'Q', Digraph: "FJ", Easting: "12345", Northing: "67890", LonZoneText: "4",
			},
		},
		{
			name: "100 km square only",
			mgrs: "19TCH",
			expected: MGRSRecord{
				LonZone: 19, LatZone: 'T', Digraph: "CH", LonZoneText: "19",
			},
		},
		{
			name: "non-numeric zone is kept as written",
			mgrs: "_3P TL 42247 17553",
			expected: MGRSRecord{
				LonZone: 0, LatZone: 'P', Digraph: "TL", Easting: "42247", Northing: "17553", LonZoneText: "_3",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := DecodeMGRS(tt.mgrs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rec)
		})
	}
}

const oddDigitsMsg = "MGRSPoint has to have an even number of digits after the zone letter and two 100km letters - " +
	"front half for easting meters, second half for northing meters: "

func TestDecodeMGRSErrors(t *testing.T) {
	tests := []struct {
		name string
		mgrs string
		kind error
		msg  string
	}{
		{name: "too short", mgrs: "a", kind: ErrMinLengthNotMet, msg: "MGRSPoint min length not met: A"},
		{name: "zone only", mgrs: "33P", kind: ErrMinLengthNotMet, msg: "MGRSPoint min length not met: 33P"},
		{name: "no zone", mgrs: "PTL4224717553", kind: ErrMinLengthNotMet, msg: "MGRSPoint min length not met: PTL4224717553"},
		{name: "zone letter A", mgrs: "22A TL 3 3", kind: ErrZoneLetterNotHandled, msg: "MGRSPoint zone letter A not handled: 22ATL33"},
		{name: "zone letter Z", mgrs: "22Z TL 3 3", kind: ErrZoneLetterNotHandled, msg: "MGRSPoint zone letter Z not handled: 22ZTL33"},
		{name: "zone letter I", mgrs: "22I TL 3 3", kind: ErrZoneLetterNotHandled, msg: "MGRSPoint zone letter I not handled: 22ITL33"},
		{name: "three digit zone", mgrs: "333P TL 42247 17553", kind: ErrBadConversion, msg: "MGRSPoint bad conversion from: 333PTL4224717553"},
		{name: "digits only", mgrs: "12345", kind: ErrBadConversion, msg: "MGRSPoint bad conversion from: 12345"},
		{name: "odd digit count", mgrs: "33P TL 422.47 17553", kind: ErrOddDigitCount, msg: oddDigitsMsg + "33PTL422.4717553"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMGRS(tt.mgrs)
			require.ErrorIs(t, err, tt.kind)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestMGRSRecordFormatting(t *testing.T) {
	rec, err := DecodeMGRS("33ptl4224717553")
	require.NoError(t, err)

	assert.Equal(t, "33P TL 42247 17553", rec.String())
	assert.Equal(t, "33PTL4224717553", rec.Compact())
	assert.Equal(t, 1, rec.Precision())

	rec, err = DecodeMGRS("19TCH06132600")
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Precision())

	rec, err = DecodeMGRS("19TCH")
	require.NoError(t, err)
	assert.Equal(t, "19T CH", rec.String())
	assert.Equal(t, 100000, rec.Precision())
}
