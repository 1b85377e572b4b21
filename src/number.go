package gridconv

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberStatus distinguishes the outcomes of reading a numeric field.
type numberStatus int

const (
	numberOK numberStatus = iota
	numberAbsent
	numberNotNumeric
)

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// parseNumber reads a plain signed decimal.  Exponents, hex and the
// special values Go's strconv would accept are not numbers here.
func parseNumber(text string) (float64, numberStatus) {
	var s = strings.TrimSpace(text)
	if s == "" {
		return 0, numberAbsent
	}

	if !decimalPattern.MatchString(s) {
		return math.NaN(), numberNotNumeric
	}

	var v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), numberNotNumeric
	}

	return v, numberOK
}

// parseLeadingInt reads an optional sign and the digits that follow it,
// ignoring anything after them.  ok is false when there are no digits.
func parseLeadingInt(text string) (int, bool) {
	var s = strings.TrimSpace(text)

	var end = 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}

	var digitsStart = end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	var v, err = strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return v, true
}

// roundHalfUp rounds to the nearest integer with ties going towards
// positive infinity.
func roundHalfUp(x float64) float64 {
	var r = math.Floor(x)
	if x-r >= 0.5 {
		r++
	}

	return r
}

// roundTo rounds x to dp decimal places, ties towards positive infinity.
func roundTo(x float64, dp int) float64 {
	var scale = math.Pow(10, float64(dp))

	return roundHalfUp(x*scale) / scale
}

// formatNumber gives the shortest decimal text that reads back as x.
func formatNumber(x float64) string {
	if x == 0 {
		return "0"
	}

	return strconv.FormatFloat(x, 'f', -1, 64)
}

func padStart(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(string(pad), width-len(s)) + s
}
