package gridconv

import (
	"fmt"
	"math"
)

// GridTransformer maps between geographic points and MGRS strings.
type GridTransformer interface {
	PointToMGRS(lng, lat float64) (string, error)
	MGRSToPoint(mgrs string) (lng, lat float64, err error)
}

// Grid is the GridTransformer used by default.  Points are projected onto
// WGS84 UTM through its Projector and lettered here; MGRS strings are read
// back by coordconv.
type Grid struct {
	Projector Projector
}

// Column letters for the three 100 km column sets, and the 20 row letters.
var (
	columnLetters = [3]string{"ABCDEFGH", "JKLMNPQR", "STUVWXYZ"}
	rowLetters    = "ABCDEFGHJKLMNPQRSTUV"
)

/*------------------------------------------------------------------
 *
 * Name:        PointToMGRS
 *
 * Purpose:     Convert a point to a 1 m MGRS string.
 *
 * Inputs:      lng, lat	- Degrees, WGS84.
 *
 * Returns:	Unspaced MGRS, e.g. "33PTL4224717553".
 *
 * Description:	Easting and northing are truncated, not rounded, so
 *		the string names the 1 m square containing the point.
 *
 *----------------------------------------------------------------*/

func (g Grid) PointToMGRS(lng, lat float64) (string, error) {
	var band, err = LatitudeBand(lat)
	if err != nil {
		return "", err
	}

	var zone = gridZone(lat, lng)
	var projector = g.Projector
	if projector == nil {
		projector = Engine{}
	}

	var easting, northing float64
	easting, northing, err = projector.Transform(GeographicSystem(WGS84), UTMSystem(WGS84, zone, lat < 0), lng, lat)
	if err != nil {
		return "", err
	}

	var digraph string
	digraph, err = squareID(zone, easting, northing)
	if err != nil {
		return "", err
	}

	var e = int(math.Trunc(easting)) % 100000
	var n = int(math.Trunc(northing)) % 100000

	return fmt.Sprintf("%d%c%s%05d%05d", zone, band, digraph, e, n), nil
}

// squareID gives the two letter 100 km square identifier.
func squareID(zone int, easting, northing float64) (string, error) {
	var set = zone % 6
	if set == 0 {
		set = 6
	}

	var column = int(math.Floor(easting / 100000))
	if column < 1 || column > 8 {
		return "", newErrorf(KindRange, "Easting %.0f is outside the 100 km columns of zone %d", easting, zone)
	}

	var row = int(math.Floor(northing/100000)) % 20
	if row < 0 {
		return "", newErrorf(KindRange, "Northing %.0f is negative", northing)
	}

	if set%2 == 0 {
		row = (row + 5) % 20
	}

	return string(columnLetters[(set-1)%3][column-1]) + string(rowLetters[row]), nil
}

func (g Grid) MGRSToPoint(mgrs string) (float64, float64, error) {
	var lat, lng, err = mgrsToGeodetic(mgrs)
	if err != nil {
		return 0, 0, wrapProjection(err, "Conversion from MGRS %s failed", mgrs)
	}

	return lng, lat, nil
}
