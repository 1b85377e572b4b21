package gridconv

/*------------------------------------------------------------------
 *
 * Purpose:	Convert a coordinate between decimal degrees, degrees
 *		minutes seconds, and MGRS.
 *
 * Description:	Convert("DD", "MGRS", "9.1977,12.6543") gives
 *		"33P TL 42247 17553".
 *
 *		Input is always validated for the notation it is in,
 *		even when the target is the same notation.
 *
 *------------------------------------------------------------------*/

import (
	"math"
	"strings"

	"github.com/charmbracelet/log"
)

// Converter runs conversions.  It holds no per-call state and is safe for
// concurrent use.
type Converter struct {
	projector Projector
	grid      GridTransformer
	ellipsoid Ellipsoid
	logger    *log.Logger
}

type Option func(*Converter)

// WithProjector replaces the Projection Engine.
func WithProjector(p Projector) Option {
	return func(c *Converter) {
		c.projector = p
	}
}

// WithGrid replaces the Grid Transformer.
func WithGrid(g GridTransformer) Option {
	return func(c *Converter) {
		c.grid = g
	}
}

// WithEllipsoid sets the ellipsoid for the UTM figures reported by ToGrid.
// MGRS strings are always on WGS84.
func WithEllipsoid(e Ellipsoid) Option {
	return func(c *Converter) {
		c.ellipsoid = e
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

func NewConverter(opts ...Option) *Converter {
	var c = &Converter{
		projector: Engine{},
		ellipsoid: WGS84,
		logger:    log.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.grid == nil {
		c.grid = Grid{Projector: c.projector}
	}

	return c
}

var defaultConverter = NewConverter()

// Convert converts value from one notation to another with the default
// Converter.
func Convert(from, to, value string) (string, error) {
	return defaultConverter.Convert(from, to, value)
}

func unsupported(from, to string) error {
	return newErrorf(KindUnsupportedConversion, "Unsupported conversion: %s to %s", from, to)
}

func invalid(from, to string) error {
	return newErrorf(KindInvalidConversion, "Invalid conversion: %s to %s", from, to)
}

// Convert converts value from one notation to another.  Notation names are
// not case sensitive.
func (c *Converter) Convert(from, to, value string) (string, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	var src, srcOK = ParseNotation(from)
	var dst, dstOK = ParseNotation(to)

	if !srcOK {
		return "", unsupported(from, to)
	}

	c.logger.Debug("converting", "from", from, "to", to, "value", value)

	switch src {
	case NotationDD:
		var p, err = ParseDD(value)
		if err != nil {
			return "", err
		}

		if !dstOK {
			return "", unsupported(from, to)
		}

		return c.fromDD(dst, p, value)

	case NotationDMS:
		var pair, err = ParseDMSPair(value)
		if err != nil {
			return "", err
		}

		if !dstOK {
			return "", invalid(from, to)
		}

		return c.fromDMS(dst, pair, value)

	case NotationMGRS:
		var rec, err = DecodeMGRS(value)
		if err != nil {
			return "", err
		}

		rec, err = ValidateNATO(rec.Easting, rec.Northing, rec.ZoneText(), string(rec.LatZone), rec.Digraph)
		if err != nil {
			return "", err
		}

		if !dstOK {
			return "", invalid(from, to)
		}

		return c.fromMGRS(dst, rec, value)

	default:
		return "", unsupported(from, to)
	}
}

func (c *Converter) fromDD(dst Notation, p GeographicPoint, value string) (string, error) {
	switch dst {
	case NotationDD:
		return value, nil

	case NotationDMS:
		return formatDMSPair(p)

	case NotationMGRS:
		var pos, err = c.ToGrid(p.Latitude, p.Longitude)
		if err != nil {
			return "", err
		}

		return pos.MGRS.String(), nil

	default:
		return "", unsupported(NotationDD.String(), dst.String())
	}
}

func (c *Converter) fromDMS(dst Notation, pair DMSPair, value string) (string, error) {
	switch dst {
	case NotationDD:
		// Back through the decoder, as text, then to 4 places.
		var lat = roundTo(DecodeDegrees(formatNumber(pair.Latitude.Decimal())), 4)
		var lon = roundTo(DecodeDegrees(formatNumber(pair.Longitude.Decimal())), 4)

		return formatNumber(lat) + ", " + formatNumber(lon), nil

	case NotationDMS:
		return value, nil

	case NotationMGRS:
		var lat = DecodeDegrees(pair.LatitudeText)
		var lon = DecodeDegrees(pair.LongitudeText)

		var pos, err = c.ToGrid(lat, lon)
		if err != nil {
			return "", err
		}

		return pos.MGRS.String(), nil

	default:
		return "", invalid(NotationDMS.String(), dst.String())
	}
}

func (c *Converter) fromMGRS(dst Notation, rec MGRSRecord, value string) (string, error) {
	switch dst {
	case NotationMGRS:
		return value, nil

	case NotationDD:
		var p, err = c.lookupMGRS(rec)
		if err != nil {
			return "", err
		}

		return formatDDPair(p)

	case NotationDMS:
		var p, err = c.lookupMGRS(rec)
		if err != nil {
			return "", err
		}

		return formatDMSPair(p)

	default:
		return "", invalid(NotationMGRS.String(), dst.String())
	}
}

// GridPosition is everything the DD to MGRS path works out for a point.
type GridPosition struct {
	Zone      int
	South     bool
	Ellipsoid Ellipsoid
	Easting   float64 // metres, rounded
	Northing  float64 // metres, rounded
	MGRS      MGRSRecord
}

/*------------------------------------------------------------------
 *
 * Name:        ToGrid
 *
 * Purpose:     Work out the UTM and MGRS position of a point.
 *
 * Inputs:      lat, lon	- Decimal degrees.
 *
 * Description:	The UTM easting and northing come from the Projection
 *		Engine on the converter's ellipsoid.  The MGRS string
 *		comes from the Grid Transformer and is decoded again
 *		rather than trusted as is.
 *
 *----------------------------------------------------------------*/

func (c *Converter) ToGrid(lat, lon float64) (GridPosition, error) {
	var p = GeographicPoint{Latitude: lat, Longitude: lon}
	if err := p.Validate(); err != nil {
		return GridPosition{}, err
	}

	var zone = gridZone(lat, lon)
	var south = lat < 0

	var geo = GeographicSystem(c.ellipsoid)
	var utm = UTMSystem(c.ellipsoid, zone, south)

	c.logger.Debug("projecting", "from", geo, "to", utm)

	var easting, northing, err = c.projector.Transform(geo, utm, lon, lat)
	if err != nil {
		c.logger.Warn("projection failed", "zone", zone, "err", err)
		return GridPosition{}, err
	}

	var mgrs string
	mgrs, err = c.grid.PointToMGRS(lon, lat)
	if err != nil {
		c.logger.Warn("grid transform failed", "zone", zone, "err", err)
		return GridPosition{}, err
	}

	var rec MGRSRecord
	rec, err = DecodeMGRS(mgrs)
	if err != nil {
		return GridPosition{}, err
	}

	return GridPosition{
		Zone:      zone,
		South:     south,
		Ellipsoid: c.ellipsoid,
		Easting:   math.Round(easting),
		Northing:  math.Round(northing),
		MGRS:      rec,
	}, nil
}

// formatDMSPair gives "09°11′52″N, 012°39′15″E".
func formatDMSPair(p GeographicPoint) (string, error) {
	var lat, err = formatLatitude(p.Latitude, FormatDMS, 0)
	if err != nil {
		return "", err
	}

	var lon string
	lon, err = formatLongitude(p.Longitude, FormatDMS, 0)
	if err != nil {
		return "", err
	}

	return lat + ", " + lon, nil
}

// formatDDPair gives "9.1977°, 12.6543°", with a minus sign for south and
// west.
func formatDDPair(p GeographicPoint) (string, error) {
	var lat, err = formatSignedDegrees(p.Latitude)
	if err != nil {
		return "", err
	}

	var lon string
	lon, err = formatSignedDegrees(p.Longitude)
	if err != nil {
		return "", err
	}

	return lat + ", " + lon, nil
}

// formatSignedDegrees puts a minus sign in front of south and west values.
// EncodeDegrees on its own always gives the unsigned magnitude.
func formatSignedDegrees(deg float64) (string, error) {
	var s, err = EncodeDegrees(deg, FormatD, 4)
	if err != nil {
		return "", err
	}

	if deg < 0 && roundTo(-deg, 4) != 0 {
		s = "-" + s
	}

	return s, nil
}
