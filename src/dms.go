package gridconv

import (
	"math"
	"strings"
)

// DMSComponents is one validated axis of a strict DMS pair.  The sign is
// carried by Hemisphere, never by Degrees.
type DMSComponents struct {
	Degrees    int
	Minutes    int
	Seconds    float64
	Hemisphere byte // N, S, E or W
}

// Decimal gives signed decimal degrees, negative for S and W.
func (c DMSComponents) Decimal() float64 {
	var deg = float64(c.Degrees) + float64(c.Minutes)/60 + c.Seconds/3600
	if c.Hemisphere == 'S' || c.Hemisphere == 'W' {
		deg = -deg
	}

	return deg
}

// DMSPair is a parsed "<lat>, <lon>" DMS value.
type DMSPair struct {
	Latitude  DMSComponents
	Longitude DMSComponents

	// The two halves as written, for the lenient decoder.
	LatitudeText  string
	LongitudeText string
}

// axisRules holds the limits and the user-facing messages for one axis.
type axisRules struct {
	maxDegrees   float64
	hemispheres  string
	degreesMsg   string
	minutesMsg   string
	secondsMsg   string
	directionMsg string
}

var latitudeRules = axisRules{
	maxDegrees:   90,
	hemispheres:  "NS",
	degreesMsg:   "Degrees of latitude must be a whole number between 0 and 90",
	minutesMsg:   "Minutes of latitude must be a whole number between 0 - 60",
	secondsMsg:   "Seconds of latitude must be a whole number between 0 - 60",
	directionMsg: "Direction of latitude must be either North (N) or South (S)",
}

var longitudeRules = axisRules{
	maxDegrees:   180,
	hemispheres:  "EW",
	degreesMsg:   "Degrees of longitude must be a whole number between 0 and 180",
	minutesMsg:   "Minutes of longitude must be a whole number between 0 - 60",
	secondsMsg:   "Seconds of longitude must be a whole number between 0 - 60",
	directionMsg: "Direction of longitude must be either East (E) or West (W)",
}

const missingCommaMsg = "Expected latitude and longitude separated by a comma"

// splitPair splits "<lat>, <lon>" at the first comma.
func splitPair(value string) (string, string, error) {
	var lat, lon, found = strings.Cut(value, ",")
	if !found {
		return "", "", newError(KindFormat, missingCommaMsg)
	}

	return lat, lon, nil
}

func isDMSSeparator(r rune) bool {
	switch r {
	case ' ', '°', '′', '″':
		return true
	default:
		return false
	}
}

/*------------------------------------------------------------------
 *
 * Name:        ParseDMSPair
 *
 * Purpose:     Parse and validate a strict DMS latitude, longitude pair.
 *
 * Inputs:      value	- "09°11′51″N, 012°39′15″E" or "09 11 51 N, 012 39 15 E".
 *
 * Description:	Each half is split on runs of space, °, ′ and ″ into
 *		degrees, minutes, seconds and hemisphere.  Checks are
 *		made in a fixed order and the first failure is reported.
 *
 *----------------------------------------------------------------*/

func ParseDMSPair(value string) (DMSPair, error) {
	var latText, lonText, err = splitPair(value)
	if err != nil {
		return DMSPair{}, err
	}

	var pair = DMSPair{
		LatitudeText:  latText,
		LongitudeText: lonText,
	}

	pair.Latitude, err = parseDMSAxis(latText, latitudeRules)
	if err != nil {
		return DMSPair{}, err
	}

	pair.Longitude, err = parseDMSAxis(strings.TrimLeft(lonText, " \t"), longitudeRules)
	if err != nil {
		return DMSPair{}, err
	}

	return pair, nil
}

func parseDMSAxis(text string, rules axisRules) (DMSComponents, error) {
	// A run of separators is one boundary, so "09°11′″N" has no seconds
	// field and fails on seconds rather than reading them as 0.
	var fields = strings.FieldsFunc(text, isDMSSeparator)

	var field = func(i int) string {
		if i < len(fields) {
			return fields[i]
		}

		return ""
	}

	var degrees, status = parseNumber(field(0))
	if status != numberOK || degrees < 0 || degrees > rules.maxDegrees || degrees != math.Trunc(degrees) {
		return DMSComponents{}, newError(KindRange, rules.degreesMsg)
	}

	var minutes float64
	minutes, status = parseNumber(field(1))
	if status != numberOK || minutes < 0 || minutes >= 60 || minutes != math.Trunc(minutes) {
		return DMSComponents{}, newError(KindRange, rules.minutesMsg)
	}

	var seconds float64
	seconds, status = parseNumber(field(2))
	if status != numberOK || seconds < 0 || seconds >= 60 {
		return DMSComponents{}, newError(KindRange, rules.secondsMsg)
	}

	var direction = field(3)
	if len(fields) != 4 || len(direction) != 1 || !strings.Contains(rules.hemispheres, direction) {
		return DMSComponents{}, newError(KindFormat, rules.directionMsg)
	}

	return DMSComponents{
		Degrees:    int(degrees),
		Minutes:    int(minutes),
		Seconds:    seconds,
		Hemisphere: direction[0],
	}, nil
}
