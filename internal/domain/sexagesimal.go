package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Frame selects the angular convention for conversion.
// - FrameDegrees: plain signed degrees (declination, latitude, longitude).
// - FrameHourAngle: hour angle (right ascension), 24h = 360°.
type Frame int

const (
	// FrameDegrees treats the sexagesimal fields as degrees:minutes:seconds.
	FrameDegrees Frame = iota
	// FrameHourAngle treats the sexagesimal fields as hours:minutes:seconds.
	FrameHourAngle
)

// multiplier returns the degrees-to-field scaling factor for formatting.
func (f Frame) multiplier() float64 {
	if f == FrameHourAngle {
		return 24.0 / 360.0
	}
	return 1.0
}

// Quadruple is the decomposed form of a sexagesimal angle string.
// A is hours (RA) or whole degrees (Dec), B is minutes, C is seconds.
type Quadruple struct {
	Sign int     // +1 or -1.
	A    int     // Hours or whole degrees (non-negative).
	B    int     // Minutes.
	C    float64 // Seconds, possibly fractional.
}

// ParseError reports an input string that matches neither a bare decimal
// number nor the sexagesimal grammar. It carries the original input for
// diagnostics.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q can not be converted to a decimal angle", e.Input)
}

// Grammar: optional sign, 1-2 digit field, separator (space : - h H),
// 1-2 digit field, separator (space : - m M), 1-2 digit field with optional
// fraction. Anchored at the start only; trailing content is ignored.
var sexagesimalRe = regexp.MustCompile(`^([+-])?(\d\d?)[ :hH-](\d\d?)[ :mM-](\d\d?(?:\.\d*)?)`)

// ParseSexagesimal decomposes a sexagesimal angle string into its sign and
// three fields. It returns a *ParseError when the string does not match the
// grammar.
func ParseSexagesimal(s string) (Quadruple, error) {
	m := sexagesimalRe.FindStringSubmatch(s)
	if m == nil {
		return Quadruple{}, &ParseError{Input: s}
	}

	sign := 1
	if m[1] == "-" {
		sign = -1
	}

	a, err := strconv.Atoi(m[2])
	if err != nil {
		return Quadruple{}, &ParseError{Input: s}
	}
	b, err := strconv.Atoi(m[3])
	if err != nil {
		return Quadruple{}, &ParseError{Input: s}
	}
	c, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return Quadruple{}, &ParseError{Input: s}
	}

	return Quadruple{Sign: sign, A: a, B: b, C: c}, nil
}

// AngleFromString converts a sexagesimal or bare-decimal angle string to
// decimal degrees, rounded to 6 decimal places.
//
// A string that parses as a plain number is returned as-is (rounded): bare
// decimals are already in degrees, so the frame is deliberately ignored for
// them. Otherwise the string is parsed against the sexagesimal grammar and,
// for FrameHourAngle, scaled from hours to degrees.
func AngleFromString(value string, frame Frame) (float64, error) {
	if v, err := strconv.ParseFloat(value, 64); err == nil {
		return roundTo(v, 6), nil
	}

	q, err := ParseSexagesimal(value)
	if err != nil {
		return 0, err
	}

	v := float64(q.Sign) * (((q.C/60)+float64(q.B))/60 + float64(q.A))
	if frame == FrameHourAngle {
		v = v / 24 * 360
	}
	return roundTo(v, 6), nil
}

// FormatSexagesimal renders decimal degrees as a sexagesimal string.
//
// signShown controls whether a leading '+' or '-' is emitted. sep is 1 to 3
// characters: a single character is used for both field separators, a third
// character is appended after the seconds field. precision is the number of
// fractional digits of the seconds field, which is zero-padded to two
// integer digits.
//
// The sign is negative for inputs <= 0: exactly zero formats with a '-'
// prefix. Callers relying on signed zero output depend on this.
func FormatSexagesimal(deg float64, frame Frame, signShown bool, sep string, precision int) string {
	seps := []rune(sep)
	if len(seps) == 1 {
		seps = []rune{seps[0], seps[0]}
	}

	sig := -1.0
	if deg > 0 {
		sig = 1.0
	}

	h := sig * frame.multiplier() * deg
	if h == 0 {
		h = 0 // drop IEEE negative zero so the fields print as "00"
	}
	m := math.Mod(h*60, 60)
	sec := math.Mod(m*60, 60)

	// Seconds width: two integer digits, decimal point, precision digits.
	width := precision + 3
	if precision == 0 {
		width = 2
	}

	var b strings.Builder
	if signShown {
		if sig > 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
	}
	fmt.Fprintf(&b, "%02d%c%02d%c%0*.*f", int(h), seps[0], int(m), seps[1], width, precision, sec)
	if len(seps) == 3 {
		b.WriteRune(seps[2])
	}
	return b.String()
}

// RAToDecimal converts a right ascension string (sexagesimal hours or bare
// decimal degrees) to decimal degrees.
func RAToDecimal(hms string) (float64, error) {
	return AngleFromString(hms, FrameHourAngle)
}

// DecToDecimal converts a declination string (sexagesimal degrees or bare
// decimal degrees) to decimal degrees.
func DecToDecimal(dms string) (float64, error) {
	return AngleFromString(dms, FrameDegrees)
}

// RAToSexagesimal formats decimal degrees as an unsigned H:M:S right
// ascension string with millisecond-of-arc precision.
func RAToSexagesimal(deg float64) string {
	return FormatSexagesimal(deg, FrameHourAngle, false, ":", 3)
}

// DecToSexagesimal formats decimal degrees as a signed D:M:S declination
// string.
func DecToSexagesimal(deg float64) string {
	return FormatSexagesimal(deg, FrameDegrees, true, ":", 3)
}

// roundTo rounds to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
