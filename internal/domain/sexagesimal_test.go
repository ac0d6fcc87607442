package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// TestParseSexagesimal_Sign tests sign extraction from the leading character.
func TestParseSexagesimal_Sign(t *testing.T) {
	tests := []struct {
		input string
		sign  int
		a, b  int
		c     float64
	}{
		{"10:20:30", 1, 10, 20, 30.0},
		{"+10:20:30", 1, 10, 20, 30.0},
		{"-10:20:30", -1, 10, 20, 30.0},
		{"-1:2:3.5", -1, 1, 2, 3.5},
	}

	for _, tt := range tests {
		q, err := ParseSexagesimal(tt.input)
		if err != nil {
			t.Errorf("ParseSexagesimal(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if q.Sign != tt.sign || q.A != tt.a || q.B != tt.b || math.Abs(q.C-tt.c) > 1e-12 {
			t.Errorf("ParseSexagesimal(%q) = %+v, want sign=%d A=%d B=%d C=%g",
				tt.input, q, tt.sign, tt.a, tt.b, tt.c)
		}
	}
}

// TestParseSexagesimal_Separators tests the accepted separator characters.
func TestParseSexagesimal_Separators(t *testing.T) {
	inputs := []string{
		"12:30:45.5",
		"12 30 45.5",
		"12-30-45.5",
		"12h30m45.5",
		"12H30M45.5",
		"12h30:45.5",
	}

	for _, input := range inputs {
		q, err := ParseSexagesimal(input)
		if err != nil {
			t.Errorf("ParseSexagesimal(%q): unexpected error: %v", input, err)
			continue
		}
		if q.A != 12 || q.B != 30 || math.Abs(q.C-45.5) > 1e-12 {
			t.Errorf("ParseSexagesimal(%q) = %+v, want 12 30 45.5", input, q)
		}
	}
}

// TestParseSexagesimal_TrailingContent tests that the match anchors at the
// start only: trailing garbage after a valid prefix is ignored.
func TestParseSexagesimal_TrailingContent(t *testing.T) {
	q, err := ParseSexagesimal("12:30:45.5s J2000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.A != 12 || q.B != 30 || math.Abs(q.C-45.5) > 1e-12 {
		t.Errorf("got %+v, want 12 30 45.5", q)
	}
}

// TestParseSexagesimal_Malformed tests that bad input yields a ParseError
// carrying the offending string.
func TestParseSexagesimal_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"not-an-angle",
		"12",
		"12:30",
		"12x30y45",
		":12:30:45",
	}

	for _, input := range inputs {
		_, err := ParseSexagesimal(input)
		if err == nil {
			t.Errorf("ParseSexagesimal(%q): expected error, got nil", input)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseSexagesimal(%q): expected *ParseError, got %T", input, err)
			continue
		}
		if perr.Input != input {
			t.Errorf("ParseError.Input = %q, want %q", perr.Input, input)
		}
		if !strings.Contains(err.Error(), input) && input != "" {
			t.Errorf("error message %q does not identify input %q", err.Error(), input)
		}
	}
}

// TestAngleFromString_KnownConversions tests documented conversions.
func TestAngleFromString_KnownConversions(t *testing.T) {
	tests := []struct {
		input string
		frame Frame
		want  float64
	}{
		{"12:00:00", FrameHourAngle, 180.0},
		{"00:00:00", FrameHourAngle, 0.0},
		{"23:59:59.999", FrameHourAngle, 359.999996},
		{"-45:30:00", FrameDegrees, -45.5},
		{"+45:30:00", FrameDegrees, 45.5},
		{"89:59:59.9", FrameDegrees, 89.999972},
		{"01:30:00", FrameHourAngle, 22.5},
	}

	for _, tt := range tests {
		got, err := AngleFromString(tt.input, tt.frame)
		if err != nil {
			t.Errorf("AngleFromString(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AngleFromString(%q, %v) = %.8f, want %.6f", tt.input, tt.frame, got, tt.want)
		}
	}
}

// TestAngleFromString_BareDecimal tests that a plain number passes through
// without frame scaling: a bare decimal is already in degrees.
func TestAngleFromString_BareDecimal(t *testing.T) {
	for _, frame := range []Frame{FrameDegrees, FrameHourAngle} {
		got, err := AngleFromString("45.5", frame)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 45.5 {
			t.Errorf("AngleFromString(\"45.5\", %v) = %v, want 45.5", frame, got)
		}
	}

	// Rounded to 6 decimal places.
	got, err := AngleFromString("45.12345678", FrameDegrees)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 45.123457 {
		t.Errorf("got %v, want 45.123457", got)
	}
}

// TestRAToDecimal_Malformed tests the documented parse failure path.
func TestRAToDecimal_Malformed(t *testing.T) {
	_, err := RAToDecimal("not-an-angle")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not-an-angle") {
		t.Errorf("error %q does not identify the offending string", err.Error())
	}
}

// TestFormatSexagesimal_KnownValues tests documented formatting outputs.
func TestFormatSexagesimal_KnownValues(t *testing.T) {
	tests := []struct {
		deg       float64
		frame     Frame
		signShown bool
		sep       string
		precision int
		want      string
	}{
		{180.0, FrameHourAngle, false, ":", 3, "12:00:00.000"},
		{-45.5, FrameDegrees, true, ":", 3, "-45:30:00.000"},
		{45.5, FrameDegrees, true, ":", 3, "+45:30:00.000"},
		{22.5, FrameHourAngle, false, ":", 3, "01:30:00.000"},
		{12.5, FrameDegrees, true, "dms", 1, "+12d30m00.0s"},
		{12.5, FrameDegrees, false, " ", 0, "12 30 00"},
		{12.5, FrameDegrees, false, ": ", 1, "12:30 00.0"},
		{10.2625, FrameDegrees, false, ":", 2, "10:15:45.00"},
	}

	for _, tt := range tests {
		got := FormatSexagesimal(tt.deg, tt.frame, tt.signShown, tt.sep, tt.precision)
		if got != tt.want {
			t.Errorf("FormatSexagesimal(%v, %v, %v, %q, %d) = %q, want %q",
				tt.deg, tt.frame, tt.signShown, tt.sep, tt.precision, got, tt.want)
		}
	}
}

// TestFormatSexagesimal_ZeroIsNegative pins down the sign rule for exactly
// zero: it formats with a '-' prefix. Callers depend on the rule as-is.
func TestFormatSexagesimal_ZeroIsNegative(t *testing.T) {
	got := FormatSexagesimal(0.0, FrameHourAngle, true, ":", 3)
	if got != "-00:00:00.000" {
		t.Errorf("FormatSexagesimal(0.0) = %q, want %q", got, "-00:00:00.000")
	}
}

// TestConvenienceWrappers tests the RA/Dec defaults.
func TestConvenienceWrappers(t *testing.T) {
	if got := RAToSexagesimal(180.0); got != "12:00:00.000" {
		t.Errorf("RAToSexagesimal(180.0) = %q, want \"12:00:00.000\"", got)
	}
	if got := DecToSexagesimal(-45.5); got != "-45:30:00.000" {
		t.Errorf("DecToSexagesimal(-45.5) = %q, want \"-45:30:00.000\"", got)
	}

	got, err := RAToDecimal("12:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 180.0 {
		t.Errorf("RAToDecimal(\"12:00:00\") = %v, want 180.0", got)
	}

	got, err = DecToDecimal("-45:30:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -45.5 {
		t.Errorf("DecToDecimal(\"-45:30:00\") = %v, want -45.5", got)
	}
}

// TestRoundTrip_Degrees tests format-then-parse over a dense degree sample.
// Tolerance is bounded by the 3-digit default seconds precision.
func TestRoundTrip_Degrees(t *testing.T) {
	for d := -89.999; d <= 89.999; d += 0.37 {
		s := DecToSexagesimal(d)
		got, err := DecToDecimal(s)
		if err != nil {
			t.Fatalf("DecToDecimal(%q): %v", s, err)
		}
		if math.Abs(got-d) > 1e-3 {
			t.Errorf("round trip %v -> %q -> %v exceeds tolerance", d, s, got)
		}
	}
}

// TestRoundTrip_HourAngle tests format-then-parse over the hour-angle range.
func TestRoundTrip_HourAngle(t *testing.T) {
	for h := 0.0; h <= 359.999; h += 0.41 {
		s := RAToSexagesimal(h)
		got, err := RAToDecimal(s)
		if err != nil {
			t.Fatalf("RAToDecimal(%q): %v", s, err)
		}
		if math.Abs(got-h) > 1e-3 {
			t.Errorf("round trip %v -> %q -> %v exceeds tolerance", h, s, got)
		}
	}
}

// TestFormatSexagesimal_MinuteSecondBounds ensures minutes and seconds stay
// below 60 across values near field boundaries.
func TestFormatSexagesimal_MinuteSecondBounds(t *testing.T) {
	for _, deg := range []float64{59.999999, 0.999999, 29.9999, 1.0 / 60, 59.0 / 60} {
		s := FormatSexagesimal(deg, FrameDegrees, false, ":", 3)
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			t.Fatalf("unexpected format %q", s)
		}
		if parts[1] >= "60" {
			t.Errorf("minutes field out of range in %q", s)
		}
		if parts[2] >= "60" {
			t.Errorf("seconds field out of range in %q", s)
		}
	}
}
