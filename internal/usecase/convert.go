package usecase

import (
	"fmt"
	"unicode/utf8"

	"github.com/astrolab/observatory-api/internal/domain"
)

// ConvertUseCase orchestrates angle conversion requests.
type ConvertUseCase struct{}

// NewConvertUseCase creates a new conversion use case.
func NewConvertUseCase() *ConvertUseCase {
	return &ConvertUseCase{}
}

// DecimalRequest asks for a sexagesimal or bare-decimal angle string to be
// converted to decimal degrees.
type DecimalRequest struct {
	Value string // Angle string, e.g. "12:30:45.5" or "45.5".
	Frame string // "ra" (hour angle) or "dec" (degrees).
}

// Validate checks if the request is valid.
func (r *DecimalRequest) Validate() error {
	if r.Value == "" {
		return fmt.Errorf("value is required")
	}
	if _, err := frameFromString(r.Frame); err != nil {
		return err
	}
	return nil
}

// DecimalResponse carries the converted decimal angle.
type DecimalResponse struct {
	Value   string  `json:"value"`
	Frame   string  `json:"frame"`
	Degrees float64 `json:"degrees"`
}

// ToDecimal converts an angle string to decimal degrees.
func (uc *ConvertUseCase) ToDecimal(req DecimalRequest) (*DecimalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	frame, _ := frameFromString(req.Frame)
	deg, err := domain.AngleFromString(req.Value, frame)
	if err != nil {
		return nil, err
	}

	return &DecimalResponse{
		Value:   req.Value,
		Frame:   req.Frame,
		Degrees: deg,
	}, nil
}

// SexagesimalRequest asks for decimal degrees to be formatted as a
// sexagesimal string.
type SexagesimalRequest struct {
	Degrees   float64
	Frame     string // "ra" (hour angle) or "dec" (degrees).
	Separator string // 1-3 characters.
	Precision int    // Fractional digits of the seconds field.
	SignShown bool
}

// Validate checks if the request is valid.
func (r *SexagesimalRequest) Validate() error {
	if _, err := frameFromString(r.Frame); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(r.Separator); n < 1 || n > 3 {
		return fmt.Errorf("separator must be 1 to 3 characters, got %q", r.Separator)
	}
	if r.Precision < 0 {
		return fmt.Errorf("precision must be non-negative, got %d", r.Precision)
	}
	if r.Precision > 9 {
		return fmt.Errorf("precision must be at most 9, got %d", r.Precision)
	}
	return nil
}

// SexagesimalResponse carries the formatted angle.
type SexagesimalResponse struct {
	Degrees     float64 `json:"degrees"`
	Frame       string  `json:"frame"`
	Sexagesimal string  `json:"sexagesimal"`
}

// ToSexagesimal formats decimal degrees as a sexagesimal string.
func (uc *ConvertUseCase) ToSexagesimal(req SexagesimalRequest) (*SexagesimalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	frame, _ := frameFromString(req.Frame)
	s := domain.FormatSexagesimal(req.Degrees, frame, req.SignShown, req.Separator, req.Precision)

	return &SexagesimalResponse{
		Degrees:     req.Degrees,
		Frame:       req.Frame,
		Sexagesimal: s,
	}, nil
}

// frameFromString maps a frame selector to the domain frame.
func frameFromString(s string) (domain.Frame, error) {
	switch s {
	case "ra", "hourangle":
		return domain.FrameHourAngle, nil
	case "dec", "deg", "degrees":
		return domain.FrameDegrees, nil
	}
	return 0, fmt.Errorf("unknown frame %q (use ra or dec)", s)
}
