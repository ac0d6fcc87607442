package usecase

import (
	"fmt"
	"strings"

	"github.com/astrogo/fitsio"

	"github.com/astrolab/observatory-api/internal/adapter/fits"
	"github.com/astrolab/observatory-api/internal/domain"
)

// ImageUseCase orchestrates image persistence and statistics.
type ImageUseCase struct {
	fitsDir string
}

// NewImageUseCase creates an image use case writing to fitsDir.
func NewImageUseCase(fitsDir string) *ImageUseCase {
	return &ImageUseCase{fitsDir: fitsDir}
}

// HeaderCard is a single metadata entry of a save request.
type HeaderCard struct {
	Name    string      `json:"name"`
	Value   interface{} `json:"value"`
	Comment string      `json:"comment,omitempty"`
}

// SaveImageRequest asks for a 2D image array to be written as FITS.
type SaveImageRequest struct {
	Data      [][]int32    `json:"data"`
	FileName  string       `json:"file_name"`
	DType     string       `json:"dtype,omitempty"`
	Overwrite bool         `json:"overwrite,omitempty"`
	Header    []HeaderCard `json:"header,omitempty"`
}

// Validate checks if the request is valid.
func (r *SaveImageRequest) Validate() error {
	if len(r.Data) == 0 || len(r.Data[0]) == 0 {
		return fmt.Errorf("data must be a non-empty 2D array")
	}
	if r.FileName == "" {
		return fmt.Errorf("file_name is required")
	}
	if strings.ContainsAny(r.FileName, "/\\") {
		return fmt.Errorf("file_name must not contain path separators")
	}
	if _, err := fits.ParseDType(r.DType); err != nil {
		return err
	}
	for _, c := range r.Header {
		if c.Name == "" {
			return fmt.Errorf("header card name is required")
		}
		if len(c.Name) > 8 {
			return fmt.Errorf("header card name %q exceeds 8 characters", c.Name)
		}
	}
	return nil
}

// SaveImageResponse reports the written file and its pixel statistics.
type SaveImageResponse struct {
	Path     string             `json:"path"`
	FileName string             `json:"file_name"`
	DType    string             `json:"dtype"`
	Stats    map[string]float64 `json:"stats"`
}

// angleCards maps header keywords whose values may arrive as sexagesimal
// strings to the frame used to parse them. The decimal-degree value is what
// gets embedded in the header.
var angleCards = map[string]domain.Frame{
	"RA":       domain.FrameHourAngle,
	"TEL_RA":   domain.FrameHourAngle,
	"DEC":      domain.FrameDegrees,
	"TEL_DEC":  domain.FrameDegrees,
	"OBS-LAT":  domain.FrameDegrees,
	"OBS-LONG": domain.FrameDegrees,
}

// Save writes the image as a FITS file and returns its statistics.
func (uc *ImageUseCase) Save(req SaveImageRequest) (*SaveImageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	dtyp, _ := fits.ParseDType(req.DType)

	cards, err := buildCards(req.Header)
	if err != nil {
		return nil, err
	}

	path, err := fits.SaveImage(req.Data, uc.fitsDir, req.FileName, cards, req.Overwrite, dtyp)
	if err != nil {
		return nil, fmt.Errorf("failed to save FITS image: %w", err)
	}

	stats, err := domain.ImageStats(toFloat2D(req.Data), domain.DefaultStatsOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	return &SaveImageResponse{
		Path:     path,
		FileName: req.FileName,
		DType:    string(dtyp),
		Stats:    stats,
	}, nil
}

// buildCards converts request cards to FITS cards in order, parsing
// sexagesimal strings of the known angular keywords into decimal degrees.
// The raw string is echoed into the card comment.
func buildCards(header []HeaderCard) ([]fitsio.Card, error) {
	b := fits.NewHeaderBuilder()
	for _, c := range header {
		value := c.Value
		comment := c.Comment

		if frame, ok := angleCards[c.Name]; ok {
			if raw, isString := c.Value.(string); isString {
				deg, err := domain.AngleFromString(raw, frame)
				if err != nil {
					return nil, fmt.Errorf("invalid angle for header card %s: %w", c.Name, err)
				}
				value = deg
				if comment == "" {
					comment = "[deg] " + raw
				}
			}
		}

		b.Add(c.Name, value, comment)
	}
	return b.Cards(), nil
}

// StatsRequest asks for descriptive statistics over a 2D array.
type StatsRequest struct {
	Data            [][]float64 `json:"data"`
	Stats           []string    `json:"stats,omitempty"` // Subset of min, max, mean, median, std; empty means all.
	SampleSize      int         `json:"sample_size,omitempty"`
	WithReplacement bool        `json:"with_replacement,omitempty"`
}

// Validate checks if the request is valid.
func (r *StatsRequest) Validate() error {
	if len(r.Data) == 0 || len(r.Data[0]) == 0 {
		return fmt.Errorf("data must be a non-empty 2D array")
	}
	if r.SampleSize < 0 {
		return fmt.Errorf("sample_size must be non-negative")
	}
	for _, name := range r.Stats {
		switch name {
		case "min", "max", "mean", "median", "std":
		default:
			return fmt.Errorf("unknown statistic %q", name)
		}
	}
	return nil
}

// StatsResponse maps statistic name to value.
type StatsResponse struct {
	Stats map[string]float64 `json:"stats"`
}

// Stats computes the requested statistics.
func (uc *ImageUseCase) Stats(req StatsRequest) (*StatsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	opts := domain.DefaultStatsOptions()
	if len(req.Stats) > 0 {
		opts = domain.StatsOptions{}
		for _, name := range req.Stats {
			switch name {
			case "min":
				opts.Min = true
			case "max":
				opts.Max = true
			case "mean":
				opts.Mean = true
			case "median":
				opts.Median = true
			case "std":
				opts.Std = true
			}
		}
	}
	opts.SampleSize = req.SampleSize
	opts.WithReplacement = req.WithReplacement

	stats, err := domain.ImageStats(req.Data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	return &StatsResponse{Stats: stats}, nil
}

// toFloat2D widens an int32 image to float64 for statistics.
func toFloat2D(data [][]int32) [][]float64 {
	out := make([][]float64, len(data))
	for i, row := range data {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = float64(v)
		}
	}
	return out
}
