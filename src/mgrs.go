package gridconv

import (
	"strconv"
	"strings"
)

// MGRSRecord is an MGRS reference split into its parts.
//
//	33P TL 42247 17553
//	|| |  |     +- northing
//	|| |  +------- easting
//	|| +---------- 100 km square digraph
//	|+------------ latitude band
//	+------------- longitude zone
type MGRSRecord struct {
	LonZone  int
	LatZone  byte
	Digraph  string
	Easting  string
	Northing string

	// The zone prefix as written.  Kept so that a prefix that is not a
	// number ("_3") can still be reported by the NATO checks.
	LonZoneText string
}

// String gives the spaced form "33P TL 42247 17553".
func (r MGRSRecord) String() string {
	var s = r.ZoneText() + string(r.LatZone) + " " + r.Digraph
	if r.Easting != "" || r.Northing != "" {
		s += " " + r.Easting + " " + r.Northing
	}

	return s
}

// Compact gives the unspaced form "33PTL4224717553".
func (r MGRSRecord) Compact() string {
	return r.ZoneText() + string(r.LatZone) + r.Digraph + r.Easting + r.Northing
}

// ZoneText is the longitude zone as text, or the original prefix when it
// was not a number.
func (r MGRSRecord) ZoneText() string {
	if r.LonZoneText != "" {
		if _, ok := parseLeadingInt(r.LonZoneText); !ok {
			return r.LonZoneText
		}
	}

	return strconv.Itoa(r.LonZone)
}

// Precision is the size in metres of the square the digits describe:
// 100000 for no digits down to 1 for five digits per axis.
func (r MGRSRecord) Precision() int {
	var p = 100000
	for i := 0; i < len(r.Easting); i++ {
		p /= 10
	}

	return p
}

func isUpperLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

/*------------------------------------------------------------------
 *
 * Name:        DecodeMGRS
 *
 * Purpose:     Split an MGRS string into zone, band, digraph,
 *		easting and northing.
 *
 * Inputs:      s	- "33P TL 42247 17553", "33ptl4224717553", ...
 *			  Spaces are ignored and case doesn't matter.
 *
 * Description:	Only the shape is checked here.  Field values are
 *		checked by ValidateNATO.
 *
 *		A good MGRS string has to be 4-5 characters long,
 *		##AAA/#AAA at least.
 *
 *----------------------------------------------------------------*/

func DecodeMGRS(s string) (MGRSRecord, error) {
	var mgrs = strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	var length = len(mgrs)

	var i = 0
	for i >= length || !isUpperLetter(mgrs[i]) {
		if i >= 2 {
			return MGRSRecord{}, newErrorf(KindBadConversion, "MGRSPoint bad conversion from: %s", mgrs)
		}
		i++
	}

	if i == 0 || i+3 > length {
		return MGRSRecord{}, newErrorf(KindMinLengthNotMet, "MGRSPoint min length not met: %s", mgrs)
	}

	var zoneText = mgrs[:i]
	var zone, _ = parseLeadingInt(zoneText)

	var zoneLetter = mgrs[i]
	i++

	if zoneLetter <= 'A' || zoneLetter == 'B' || zoneLetter == 'Y' || zoneLetter >= 'Z' || zoneLetter == 'I' || zoneLetter == 'O' {
		return MGRSRecord{}, newErrorf(KindZoneLetterNotHandled, "MGRSPoint zone letter %c not handled: %s", zoneLetter, mgrs)
	}

	var digraph = mgrs[i : i+2]
	i += 2

	var remainder = length - i
	if remainder%2 != 0 {
		return MGRSRecord{}, newErrorf(KindOddDigitCount,
			"MGRSPoint has to have an even number of digits after the zone letter and two 100km letters - front half for easting meters, second half for northing meters: %s", mgrs)
	}

	var sep = remainder / 2

	return MGRSRecord{
		LonZone:     zone,
		LatZone:     zoneLetter,
		Digraph:     digraph,
		Easting:     mgrs[i : i+sep],
		Northing:    mgrs[i+sep:],
		LonZoneText: zoneText,
	}, nil
}
