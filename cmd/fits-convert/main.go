// Command fits-convert converts a 2D grid variable from a NetCDF file into
// a FITS image.
package main

import (
	"flag"
	"log"
	"math"
	"path/filepath"
	"strings"

	"github.com/astrolab/observatory-api/internal/adapter/fits"
	"github.com/astrolab/observatory-api/internal/adapter/interp"
	"github.com/astrolab/observatory-api/internal/adapter/store/nc"
	"github.com/astrolab/observatory-api/internal/domain"
)

func main() {
	// Command line flags
	inPath := flag.String("in", "", "Path to input NetCDF file (required)")
	varName := flag.String("var", "", "NetCDF variable to read (default: auto-detect)")
	outDir := flag.String("out", ".", "Output directory for the FITS file")
	outName := flag.String("name", "", "Output file name (default: input name with .fits)")
	dtypeStr := flag.String("dtype", "int32", "Pixel encoding: int32, int16, sideint16 or none")
	overwrite := flag.Bool("overwrite", false, "Overwrite an existing output file")
	scale := flag.Float64("scale", 1.0, "Multiplier applied to grid values before integer rounding")
	width := flag.Int("width", 0, "Resample to this width (0 = keep)")
	height := flag.Int("height", 0, "Resample to this height (0 = keep)")
	doStats := flag.Bool("stats", false, "Print pixel statistics of the converted image")

	flag.Parse()

	if *inPath == "" {
		log.Fatalf("-in is required")
	}

	dtyp, err := fits.ParseDType(*dtypeStr)
	if err != nil {
		log.Fatalf("Invalid dtype: %v", err)
	}

	// Read the grid.
	grid, err := nc.ReadGrid(*inPath, *varName)
	if err != nil {
		log.Fatalf("Failed to read NetCDF grid: %v", err)
	}
	values := grid.Values
	log.Printf("Read variable %q: %d x %d", grid.VarName, len(values), len(values[0]))

	// Optional resampling.
	if *width > 0 || *height > 0 {
		outRows := len(values)
		outCols := len(values[0])
		if *height > 0 {
			outRows = *height
		}
		if *width > 0 {
			outCols = *width
		}
		values, err = interp.Resample(values, outRows, outCols)
		if err != nil {
			log.Fatalf("Failed to resample grid: %v", err)
		}
		log.Printf("Resampled to %d x %d", outRows, outCols)
	}

	// Round to integer counts.
	array := make([][]int32, len(values))
	for i, row := range values {
		array[i] = make([]int32, len(row))
		for j, v := range row {
			array[i][j] = int32(math.Round(v * *scale))
		}
	}

	// Output file name defaults to the input base name.
	name := *outName
	if name == "" {
		base := filepath.Base(*inPath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	cards := fits.NewHeaderBuilder().
		Add("ORIGIN", "fits-convert", "Converted from NetCDF").
		Add("SRCFILE", filepath.Base(*inPath), "Source NetCDF file").
		Add("SRCVAR", grid.VarName, "Source NetCDF variable").
		Cards()

	path, err := fits.SaveImage(array, *outDir, name, cards, *overwrite, dtyp)
	if err != nil {
		log.Fatalf("Failed to write FITS file: %v", err)
	}
	log.Printf("Wrote %s (%s)", path, dtyp)

	if *doStats {
		stats, err := domain.ImageStats(values, domain.DefaultStatsOptions())
		if err != nil {
			log.Fatalf("Failed to compute statistics: %v", err)
		}
		for _, name := range []string{"min", "max", "mean", "median", "std"} {
			log.Printf("  %-6s %.6f", name, stats[name])
		}
	}
}
