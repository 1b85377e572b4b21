package gridconv

// Utilities for working with https://github.com/tzneal/coordconv

import (
	"fmt"
	"sync"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

// coordconv's default converters are package globals.
var coordconvMu sync.Mutex

func HemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}

// BandHemisphere gives the hemisphere of an MGRS latitude band letter:
// N and later are north.
func BandHemisphere(band byte) coordconv.Hemisphere {
	if band < 'C' || band > 'X' || band == 'I' || band == 'O' {
		return coordconv.HemisphereInvalid
	}

	if band >= 'N' {
		return coordconv.HemisphereNorth
	}

	return coordconv.HemisphereSouth
}

func southHemisphere(south bool) coordconv.Hemisphere {
	if south {
		return coordconv.HemisphereSouth
	}

	return coordconv.HemisphereNorth
}

func utmCoord(s System, easting, northing float64) coordconv.UTMCoord {
	return coordconv.UTMCoord{
		Zone:       s.Zone,
		Hemisphere: southHemisphere(s.South),
		Easting:    easting,
		Northing:   northing,
	}
}

// utmFromGeodetic projects onto WGS84 UTM in the given zone.
func utmFromGeodetic(lat, lng float64, zone int) (coordconv.UTMCoord, error) {
	coordconvMu.Lock()
	defer coordconvMu.Unlock()

	return coordconv.DefaultUTMConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lng), zone)
}

// utmToGeodetic is the inverse of utmFromGeodetic, giving degrees.
func utmToGeodetic(utm coordconv.UTMCoord) (float64, float64, error) {
	coordconvMu.Lock()
	defer coordconvMu.Unlock()

	var latlng, err = coordconv.DefaultUTMConverter.ConvertToGeodetic(utm)
	if err != nil {
		return 0, 0, err
	}

	return latlng.Lat.Degrees(), latlng.Lng.Degrees(), nil
}

// mgrsToGeodetic reads an unspaced MGRS string, giving degrees.
func mgrsToGeodetic(mgrs string) (float64, float64, error) {
	coordconvMu.Lock()
	defer coordconvMu.Unlock()

	var latlng, err = coordconv.DefaultMGRSConverter.ConvertToGeodetic(mgrs)
	if err != nil {
		return 0, 0, err
	}

	return latlng.Lat.Degrees(), latlng.Lng.Degrees(), nil
}

// MGRSAt gives the MGRS string for a point with 1 (10 km) thru 5 (1 m)
// digits per axis.  This almost always agrees with Grid; very rarely
// GeoTrans comes out 1 m higher in the last digit.
func MGRSAt(lat, lng float64, precision int) (string, error) {
	if precision < 1 || precision > 5 {
		return "", newErrorf(KindRange, "MGRS precision must be between 1 and 5, got %d", precision)
	}

	coordconvMu.Lock()
	defer coordconvMu.Unlock()

	var mgrs, err = coordconv.DefaultMGRSConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lng), precision)
	if err != nil {
		return "", wrapProjection(err, "Conversion to MGRS failed")
	}

	return fmt.Sprint(mgrs), nil
}
