package gridconv

import "strings"

// Notation is one of the supported coordinate notations.
type Notation int

const (
	NotationDD   Notation = iota + 1 // decimal degrees
	NotationDMS                      // degrees, minutes, seconds
	NotationMGRS                     // Military Grid Reference System
)

func (n Notation) String() string {
	switch n {
	case NotationDD:
		return "DD"
	case NotationDMS:
		return "DMS"
	case NotationMGRS:
		return "MGRS"
	default:
		return "?"
	}
}

// ParseNotation recognises "DD", "DMS" and "MGRS" in any case.
func ParseNotation(s string) (Notation, bool) {
	switch strings.ToUpper(s) {
	case "DD":
		return NotationDD, true
	case "DMS":
		return NotationDMS, true
	case "MGRS":
		return NotationMGRS, true
	default:
		return 0, false
	}
}
