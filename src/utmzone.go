package gridconv

import "math"

// ZoneOf gives the UTM longitude zone for a position, including the
// irregular zones around Norway and Svalbard.
//
// The result is not clamped to 1..60: a longitude outside -180..180 gives
// a zone outside that range too.
func ZoneOf(lat, lng float64) int {
	// Exception around Norway.
	if lat >= 56 && lat < 64 && lng >= 3 && lng < 12 {
		return 32
	}

	// Exceptions around Svalbard.
	if lat >= 72 && lat < 84 {
		switch {
		case lng >= 0 && lng < 9:
			return 31
		case lng >= 9 && lng < 21:
			return 33
		case lng >= 21 && lng < 33:
			return 35
		case lng >= 33 && lng < 42:
			return 37
		}
	}

	return int(math.Floor((lng+180)/6)) + 1
}

// gridZone is ZoneOf for the MGRS grid, where 180° belongs to zone 60.
func gridZone(lat, lng float64) int {
	if lng == 180 {
		return 60
	}

	return ZoneOf(lat, lng)
}

// Latitude bands, 8° each from 80°S, with X stretched to 84°N.
const latitudeBands = "CDEFGHJKLMNPQRSTUVWX"

// LatitudeBand gives the MGRS latitude band letter.
func LatitudeBand(lat float64) (byte, error) {
	if math.IsNaN(lat) || lat < -80 || lat > 84 {
		return 0, newErrorf(KindRange, "Latitude %v is outside the UTM grid (80°S to 84°N)", lat)
	}

	var i = int(math.Floor((lat + 80) / 8))
	if i >= len(latitudeBands) {
		i = len(latitudeBands) - 1
	}

	return latitudeBands[i], nil
}
