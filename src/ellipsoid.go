package gridconv

import "strings"

// Ellipsoid is a reference ellipsoid for the Projection Engine.
type Ellipsoid struct {
	Name              string
	SemiMajorAxis     float64 // metres
	InverseFlattening float64
}

func (e Ellipsoid) Flattening() float64 {
	return 1 / e.InverseFlattening
}

var (
	WGS84             = Ellipsoid{Name: "WGS84", SemiMajorAxis: 6378137.0, InverseFlattening: 298.257223563}
	GRS80             = Ellipsoid{Name: "GRS80", SemiMajorAxis: 6378137.0, InverseFlattening: 298.257222101}
	Clarke1866        = Ellipsoid{Name: "clrk66", SemiMajorAxis: 6378206.4, InverseFlattening: 294.9786982}
	International1924 = Ellipsoid{Name: "intl", SemiMajorAxis: 6378388.0, InverseFlattening: 297.0}
)

// Names accepted by LookupEllipsoid.  NAD83 is defined on GRS80 and NAD27
// on Clarke 1866.
var ellipsoidNames = map[string]Ellipsoid{
	"wgs84":  WGS84,
	"grs80":  GRS80,
	"nad83":  GRS80,
	"clrk66": Clarke1866,
	"nad27":  Clarke1866,
	"intl":   International1924,
}

// LookupEllipsoid finds an ellipsoid by name, ignoring case.
func LookupEllipsoid(name string) (Ellipsoid, error) {
	var e, ok = ellipsoidNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Ellipsoid{}, newErrorf(KindInvalidInput, "Unknown ellipsoid %q", name)
	}

	return e, nil
}
