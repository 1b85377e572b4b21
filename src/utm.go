package gridconv

import "strings"

// Hemisphere gives 'N' or 'S'.
func (p GridPosition) Hemisphere() rune {
	return HemisphereToRune(southHemisphere(p.South))
}

/*------------------------------------------------------------------
 *
 * Name:        ParseUTMZone
 *
 * Purpose:     Read a UTM zone with an optional latitude band,
 *		e.g. "19" or "19T".
 *
 * Returns:	Zone number and whether it is the southern half.
 *		With no band the zone is taken to be north.
 *
 *----------------------------------------------------------------*/

func ParseUTMZone(text string) (int, bool, error) {
	text = strings.ToUpper(strings.TrimSpace(text))

	var zone, ok = parseLeadingInt(text)
	if !ok || zone < 1 || zone > 60 {
		return 0, false, newError(KindRange, "Longitude zone must be between 1 and 60")
	}

	var digits = strings.IndexFunc(text, func(r rune) bool { return r < '0' || r > '9' })
	if digits < 0 {
		return zone, false, nil
	}

	var band = text[digits:]
	if len(band) != 1 || !strings.Contains(latitudeBands, band) {
		return 0, false, newErrorf(KindFormat, "Latitudinal band must be one of %s", latitudeBands)
	}

	return zone, HemisphereToRune(BandHemisphere(band[0])) == 'S', nil
}

// FromUTM gives the point at a UTM position on the converter's ellipsoid.
func (c *Converter) FromUTM(zone int, south bool, easting, northing float64) (GeographicPoint, error) {
	var utm = UTMSystem(c.ellipsoid, zone, south)

	c.logger.Debug("projecting", "from", utm, "to", GeographicSystem(c.ellipsoid))

	var lng, lat, err = c.projector.Transform(utm, GeographicSystem(c.ellipsoid), easting, northing)
	if err != nil {
		c.logger.Warn("projection failed", "zone", zone, "err", err)
		return GeographicPoint{}, err
	}

	return GeographicPoint{Latitude: lat, Longitude: lng}, nil
}

// FromMGRS decodes and validates an MGRS reference, then looks it up.
func (c *Converter) FromMGRS(mgrs string) (GeographicPoint, error) {
	var rec, err = DecodeMGRS(mgrs)
	if err != nil {
		return GeographicPoint{}, err
	}

	return c.ConvertNATO(rec.Easting, rec.Northing, rec.ZoneText(), string(rec.LatZone), rec.Digraph)
}
