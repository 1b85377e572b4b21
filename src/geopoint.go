package gridconv

import "strings"

// GeographicPoint is a latitude and longitude in decimal degrees.
type GeographicPoint struct {
	Latitude  float64
	Longitude float64
}

const (
	latitudeRangeMsg  = "Degrees of latitude must be a decimal number between 90 and -90"
	longitudeRangeMsg = "Degrees of longitude must be a decimal number between 180 and -180"
)

// Validate rejects a point outside -90..90, -180..180.  Nothing is clamped.
func (p GeographicPoint) Validate() error {
	if !(p.Latitude >= -90 && p.Latitude <= 90) {
		return newError(KindRange, latitudeRangeMsg)
	}

	if !(p.Longitude >= -180 && p.Longitude <= 180) {
		return newError(KindRange, longitudeRangeMsg)
	}

	return nil
}

// ParseDD reads "<lat>,<lon>" in decimal degrees and checks the range.
// A trailing degree sign on either number is allowed, so the output of
// an MGRS to DD conversion reads back.
func ParseDD(value string) (GeographicPoint, error) {
	var latText, lonText, err = splitPair(value)
	if err != nil {
		return GeographicPoint{}, err
	}

	var lat, latStatus = parseNumber(trimDegreeSign(latText))
	if latStatus != numberOK {
		return GeographicPoint{}, newError(KindFormat, "Degrees of latitude must be a valid decimal number")
	}

	if !(lat >= -90 && lat <= 90) {
		return GeographicPoint{}, newError(KindRange, latitudeRangeMsg)
	}

	var lon, lonStatus = parseNumber(trimDegreeSign(lonText))
	if lonStatus != numberOK {
		return GeographicPoint{}, newError(KindFormat, "Degrees of longitude must be a valid decimal number")
	}

	var p = GeographicPoint{Latitude: lat, Longitude: lon}
	if err := p.Validate(); err != nil {
		return GeographicPoint{}, err
	}

	return p, nil
}

func trimDegreeSign(s string) string {
	return strings.TrimSuffix(strings.TrimSpace(s), degreeSymbol)
}
