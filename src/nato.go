package gridconv

import (
	"strings"
	"unicode/utf8"
)

/*------------------------------------------------------------------
 *
 * Name:        ValidateNATO
 *
 * Purpose:     Check the separated fields of an MGRS reference before
 *		it is handed to the Grid Transformer.
 *
 * Inputs:      easting, northing	- Digit strings of equal length.
 *		lonZone			- Longitude zone 1 thru 60.
 *		latZone			- Latitude band letter.
 *		digraph			- 100 km square letters.
 *
 * Description:	Checks are made in a fixed order and the first one to
 *		fail is reported.  Only the alphabetic rules for the
 *		digraph are applied here, not whether the square
 *		actually exists in that zone.
 *
 *----------------------------------------------------------------*/

func ValidateNATO(easting, northing, lonZone, latZone, digraph string) (MGRSRecord, error) {
	digraph = strings.ToUpper(digraph)
	latZone = strings.ToUpper(latZone)

	if strings.Contains(easting, ".") || strings.Contains(northing, ".") {
		return MGRSRecord{}, newError(KindFormat, "Easting and northing must be integers")
	}

	var e, eStatus = parseNumber(easting)
	var n, nStatus = parseNumber(northing)
	var zone, zStatus = parseNumber(lonZone)
	if eStatus == numberNotNumeric || nStatus == numberNotNumeric || zStatus == numberNotNumeric {
		return MGRSRecord{}, newError(KindFormat, "Easting, northing and longitude zone must all be valid numbers")
	}

	if zone < 1 || zone > 60 || zone != float64(int(zone)) {
		return MGRSRecord{}, newError(KindRange, "Longitude zone must be between 1 and 60")
	}

	if e < 0 || e > 100000 || n < 0 || n > 100000 {
		return MGRSRecord{}, newError(KindRange, "Easting and northing values must be between 0 and 100000")
	}

	if len(easting) != len(northing) {
		return MGRSRecord{}, newError(KindFormat, "Easting and northing must have the same length")
	}

	if utf8.RuneCountInString(digraph) != 2 {
		return MGRSRecord{}, newError(KindFormat, "Digraphs must be two characters in length")
	}

	if utf8.RuneCountInString(latZone) != 1 {
		return MGRSRecord{}, newError(KindFormat, "Latitude zone must be 1 character only")
	}

	var eltr = digraph[0]
	var nltr = digraph[1]

	if !isUpperLetter(eltr) || !isUpperLetter(nltr) {
		return MGRSRecord{}, newError(KindFormat, "Digraph must consist of letters only")
	}

	if !isUpperLetter(latZone[0]) {
		return MGRSRecord{}, newError(KindFormat, "Latitude zone must consist of a single letter")
	}

	if eltr == 'I' || eltr == 'O' {
		return MGRSRecord{}, newError(KindFormat, "I and O are not valid first characters for a digraph")
	}

	if nltr >= 'W' {
		return MGRSRecord{}, newError(KindFormat, "W, X, Y and Z are not valid second letters for a digraph")
	}

	return MGRSRecord{
		LonZone:  int(zone),
		LatZone:  latZone[0],
		Digraph:  digraph,
		Easting:  easting,
		Northing: northing,
	}, nil
}

// ConvertNATO validates the fields and looks up the point they name.
func (c *Converter) ConvertNATO(easting, northing, lonZone, latZone, digraph string) (GeographicPoint, error) {
	var rec, err = ValidateNATO(easting, northing, lonZone, latZone, digraph)
	if err != nil {
		return GeographicPoint{}, err
	}

	return c.lookupMGRS(rec)
}

func (c *Converter) lookupMGRS(rec MGRSRecord) (GeographicPoint, error) {
	var compact = rec.Compact()

	var lng, lat, err = c.grid.MGRSToPoint(compact)
	if err != nil {
		c.logger.Warn("grid lookup failed", "mgrs", compact, "err", err)
		return GeographicPoint{}, err
	}

	return GeographicPoint{Latitude: lat, Longitude: lng}, nil
}
