package gridconv

/*------------------------------------------------------------------
 *
 * Purpose:	Convert between decimal degrees and the sexagesimal
 *		degree / minute / second text forms.
 *
 * Description:	The encoder works on the magnitude only.  Callers
 *		append a hemisphere letter (or a minus sign) themselves.
 *
 *		The decoder is forgiving and reports unparsable text
 *		as NaN rather than as an error.
 *
 *------------------------------------------------------------------*/

import (
	"math"
	"reflect"
	"regexp"
	"strings"
)

// Format selects the sexagesimal layout produced by EncodeDegrees.
type Format int

const (
	FormatD   Format = iota // 9.1977°
	FormatDM                // 9°11.862′
	FormatDMS               // 009°11′51″
)

const (
	degreeSymbol = "°"
	minuteSymbol = "′"
	secondSymbol = "″"
)

func (f Format) String() string {
	switch f {
	case FormatD:
		return "D"
	case FormatDM:
		return "DM"
	case FormatDMS:
		return "DMS"
	default:
		return "?"
	}
}

// ParseFormat accepts "d", "dm" or "dms" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d":
		return FormatD, nil
	case "dm":
		return FormatDM, nil
	case "dms":
		return FormatDMS, nil
	default:
		return 0, newErrorf(KindInvalidInput, "unknown sexagesimal format %q", s)
	}
}

/*------------------------------------------------------------------
 *
 * Name:        EncodeDegrees
 *
 * Purpose:     Convert decimal degrees to text.
 *
 * Inputs:      deg	- Degrees.  Only the magnitude is used.
 *		format	- D, DM or DMS.
 *		dp	- Decimal places on the last field.
 *
 * Returns:	D	"9.1977°"
 *		DM	"180°0′"
 *		DMS	"009°11′51″"  (degrees padded to 3, minutes and
 *			seconds to 2)
 *
 *----------------------------------------------------------------*/

func EncodeDegrees(deg float64, format Format, dp int) (string, error) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return "", newError(KindInvalidInput, "degrees must be a number")
	}

	deg = math.Abs(deg)

	switch format {
	case FormatD:
		return formatNumber(roundTo(deg, dp)) + degreeSymbol, nil

	case FormatDM:
		var min = roundTo(deg*60, dp)
		var d = formatNumber(math.Floor(min / 60))
		var m = formatNumber(roundTo(math.Mod(min, 60), dp))
		return d + degreeSymbol + m + minuteSymbol, nil

	case FormatDMS:
		var sec = roundTo(deg*3600, dp)
		var d = formatNumber(math.Floor(sec / 3600))
		var m = formatNumber(math.Mod(math.Floor(sec/60), 60))
		var s = formatNumber(roundTo(math.Mod(sec, 60), dp))
		return padStart(d, 3, '0') + degreeSymbol +
			padStart(m, 2, '0') + minuteSymbol +
			padStart(s, 2, '0') + secondSymbol, nil

	default:
		return "", newErrorf(KindInvalidInput, "unknown sexagesimal format %d", int(format))
	}
}

// EncodeValue is EncodeDegrees for a value of any Go numeric type.  A value
// that is not numeric at all is reported differently from NaN.
func EncodeValue(v any, format Format, dp int) (string, error) {
	var rv = reflect.ValueOf(v)

	var deg float64
	switch rv.Kind() { //nolint:exhaustive
	case reflect.Float32, reflect.Float64:
		deg = rv.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		deg = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		deg = float64(rv.Uint())
	default:
		return "", newErrorf(KindInvalidInput, "degrees is a non-numeric %T value", v)
	}

	return EncodeDegrees(deg, format, dp)
}

// formatLatitude gives "09°11′51″N": two digit degrees and a hemisphere.
func formatLatitude(deg float64, format Format, dp int) (string, error) {
	var s, err = EncodeDegrees(deg, format, dp)
	if err != nil {
		return "", err
	}

	if format == FormatDMS {
		s = s[1:] // Degrees of latitude never need the third digit.
	}

	if deg < 0 {
		return s + "S", nil
	}

	return s + "N", nil
}

// formatLongitude gives "012°39′15″E".
func formatLongitude(deg float64, format Format, dp int) (string, error) {
	var s, err = EncodeDegrees(deg, format, dp)
	if err != nil {
		return "", err
	}

	if deg < 0 {
		return s + "W", nil
	}

	return s + "E", nil
}

var (
	plainDecimal    = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)
	leadingMinus    = regexp.MustCompile(`^-`)
	trailingCompass = regexp.MustCompile(`(?i)[NSEW]$`)
	fieldSeparators = regexp.MustCompile(`[^0-9.,]+`)
	negativeMarker  = regexp.MustCompile(`(?i)^-|[WS]$`)
)

/*------------------------------------------------------------------
 *
 * Name:        DecodeDegrees
 *
 * Purpose:     Convert free form degree text to decimal degrees.
 *
 * Inputs:      text	- Something like "51°28′40″N", "-0.0014",
 *			  "09 11 51 S" or "12°39.25′E".
 *
 * Returns:	Decimal degrees, negative for south or west.
 *		NaN if the text can't be understood.
 *
 * Description:	One numeric field is degrees, two are degrees and
 *		minutes, three are degrees, minutes and seconds.
 *		A leading minus or a trailing S or W makes the
 *		result negative.  Both together still only negate once.
 *
 *------------------------------------------------------------------*/

func DecodeDegrees(text string) float64 {
	var trimmed = strings.TrimSpace(text)

	if plainDecimal.MatchString(trimmed) {
		var v, status = parseNumber(trimmed)
		if status == numberOK {
			return v
		}
	}

	var body = leadingMinus.ReplaceAllString(trimmed, "")
	body = trailingCompass.ReplaceAllString(body, "")

	var fields = fieldSeparators.Split(body, -1)
	if len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1] // from trailing symbol
	}

	var deg float64
	switch len(fields) {
	case 3:
		deg = fieldValue(fields[0]) + fieldValue(fields[1])/60 + fieldValue(fields[2])/3600
	case 2:
		deg = fieldValue(fields[0]) + fieldValue(fields[1])/60
	case 1:
		deg = fieldValue(fields[0])
	default:
		return math.NaN()
	}

	if negativeMarker.MatchString(trimmed) {
		deg = -deg
	}

	return deg
}

// fieldValue reads one numeric field of DecodeDegrees.  An empty field
// counts as zero.
func fieldValue(field string) float64 {
	var v, status = parseNumber(field)

	switch status {
	case numberOK:
		return v
	case numberAbsent:
		return 0
	default:
		return math.NaN()
	}
}
