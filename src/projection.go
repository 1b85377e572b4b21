package gridconv

import (
	"math"
	"strconv"

	"github.com/tzneal/coordconv"
)

// SystemKind says whether a System is geographic or projected.
type SystemKind int

const (
	Geographic SystemKind = iota
	ProjectedUTM
)

// System describes a coordinate system for the Projection Engine.
type System struct {
	Kind      SystemKind
	Ellipsoid Ellipsoid
	Zone      int  // UTM only
	South     bool // UTM only: add the 10000000 m false northing
}

func GeographicSystem(ell Ellipsoid) System {
	return System{Kind: Geographic, Ellipsoid: ell}
}

func UTMSystem(ell Ellipsoid, zone int, south bool) System {
	return System{Kind: ProjectedUTM, Ellipsoid: ell, Zone: zone, South: south}
}

// String gives the system as a proj definition, e.g.
// "+proj=utm +zone=33 +ellps=WGS84 +south +no_defs".
func (s System) String() string {
	if s.Kind == Geographic {
		return "+proj=longlat +ellps=" + s.Ellipsoid.Name + " +units=m +no_defs"
	}

	var proj = "+proj=utm +zone=" + strconv.Itoa(s.Zone) + " +ellps=" + s.Ellipsoid.Name
	if s.South {
		proj += " +south"
	}

	return proj + " +no_defs"
}

// Projector converts a point between two coordinate systems.  x is
// longitude or easting, y is latitude or northing.
type Projector interface {
	Transform(from, to System, x, y float64) (float64, float64, error)
}

// Engine is the Projector used by default.  WGS84 UTM goes through
// coordconv; other ellipsoids use the Krüger series in tmerc.go.
//
// Geographic to geographic is the identity: there is no datum shift.
type Engine struct{}

func (Engine) Transform(from, to System, x, y float64) (float64, float64, error) {
	var lng, lat, err = toGeographic(from, x, y)
	if err != nil {
		return 0, 0, err
	}

	return fromGeographic(to, lng, lat)
}

func checkZone(s System) error {
	if s.Kind == ProjectedUTM && (s.Zone < 1 || s.Zone > 60) {
		return newError(KindRange, "Longitude zone must be between 1 and 60")
	}

	return nil
}

func toGeographic(s System, x, y float64) (float64, float64, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, newError(KindInvalidInput, "coordinates must be numbers")
	}

	if s.Kind == Geographic {
		return x, y, nil
	}

	if err := checkZone(s); err != nil {
		return 0, 0, err
	}

	if s.Ellipsoid == WGS84 {
		var lat, lng, err = utmToGeodetic(utmCoord(s, x, y))
		if err != nil {
			return 0, 0, wrapProjection(err, "Conversion from UTM zone %d failed", s.Zone)
		}

		return lng, lat, nil
	}

	var lat, lng = newKruger(s.Ellipsoid).inverse(x, y, s.Zone, s.South)

	return lng, lat, nil
}

// Below this many degrees of latitude the Krüger series is used even on
// WGS84.
const equatorSnap = 1e-6

func fromGeographic(s System, lng, lat float64) (float64, float64, error) {
	if s.Kind == Geographic {
		return lng, lat, nil
	}

	if err := checkZone(s); err != nil {
		return 0, 0, err
	}

	// coordconv snaps latitudes a hair south of the equator to 0.
	if s.Ellipsoid == WGS84 && math.Abs(lat) >= equatorSnap {
		var utm, err = utmFromGeodetic(lat, lng, s.Zone)
		if err != nil {
			return 0, 0, wrapProjection(err, "Conversion to UTM zone %d failed", s.Zone)
		}

		// coordconv picks the false northing from the latitude, the
		// descriptor picks it explicitly.
		var northing = utm.Northing
		if utm.Hemisphere == coordconv.HemisphereSouth && !s.South {
			northing -= utmFalseNorthing
		} else if utm.Hemisphere == coordconv.HemisphereNorth && s.South {
			northing += utmFalseNorthing
		}

		return utm.Easting, northing, nil
	}

	var easting, northing = newKruger(s.Ellipsoid).forward(lat, lng, s.Zone, s.South)

	return easting, northing, nil
}
