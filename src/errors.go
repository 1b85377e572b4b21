package gridconv

import "fmt"

// Kind is a machine-readable classification of a conversion failure.
type Kind string

const (
	KindRange                 Kind = "RANGE_ERROR"
	KindFormat                Kind = "FORMAT_ERROR"
	KindUnsupportedConversion Kind = "UNSUPPORTED_CONVERSION"
	KindInvalidConversion     Kind = "INVALID_CONVERSION"
	KindInvalidInput          Kind = "INVALID_INPUT"

	// MGRS grammar failures.
	KindBadConversion        Kind = "BAD_CONVERSION"
	KindMinLengthNotMet      Kind = "MIN_LENGTH_NOT_MET"
	KindZoneLetterNotHandled Kind = "ZONE_LETTER_NOT_HANDLED"
	KindOddDigitCount        Kind = "ODD_DIGIT_COUNT"

	// The Projection Engine or Grid Transformer refused the input.
	KindProjectionFailed Kind = "PROJECTION_FAILED"
)

// ConversionError is returned for every rejected conversion.  Msg is the
// user-facing text and is reported verbatim by Error.
type ConversionError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *ConversionError) Error() string {
	return e.Msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is matches any *ConversionError of the same Kind, so the sentinels below
// work with errors.Is.
func (e *ConversionError) Is(target error) bool {
	var t, ok = target.(*ConversionError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

var (
	ErrRange                 = &ConversionError{Kind: KindRange}
	ErrFormat                = &ConversionError{Kind: KindFormat}
	ErrUnsupportedConversion = &ConversionError{Kind: KindUnsupportedConversion}
	ErrInvalidConversion     = &ConversionError{Kind: KindInvalidConversion}
	ErrInvalidInput          = &ConversionError{Kind: KindInvalidInput}
	ErrBadConversion         = &ConversionError{Kind: KindBadConversion}
	ErrMinLengthNotMet       = &ConversionError{Kind: KindMinLengthNotMet}
	ErrZoneLetterNotHandled  = &ConversionError{Kind: KindZoneLetterNotHandled}
	ErrOddDigitCount         = &ConversionError{Kind: KindOddDigitCount}
	ErrProjectionFailed      = &ConversionError{Kind: KindProjectionFailed}
)

func newError(kind Kind, msg string) *ConversionError {
	return &ConversionError{Kind: kind, Msg: msg}
}

func newErrorf(kind Kind, format string, a ...any) *ConversionError {
	return &ConversionError{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

func wrapProjection(err error, format string, a ...any) *ConversionError {
	return &ConversionError{
		Kind: KindProjectionFailed,
		Msg:  fmt.Sprintf(format, a...) + ": " + err.Error(),
		Err:  err,
	}
}
