package fits

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/astrogo/fitsio"
)

// DType selects the on-disk pixel encoding.
type DType string

const (
	// DTypeInt32 stores pixels as signed 32-bit integers.
	DTypeInt32 DType = "int32"
	// DTypeInt16 stores pixels as signed 16-bit integers.
	DTypeInt16 DType = "int16"
	// DTypeSideInt16 stores unsigned 16-bit camera counts as signed 16-bit
	// with a BZERO=32768 offset, the FITS convention for uint16 data.
	DTypeSideInt16 DType = "sideint16"
	// DTypeNone passes the array through with the default encoding.
	DTypeNone DType = "none"
)

// sideInt16Offset is the additive offset recorded as BZERO for sideint16
// frames. Readers add it back to recover the original unsigned counts.
const sideInt16Offset = 32768

// ParseDType validates a dtype selector string.
func ParseDType(s string) (DType, error) {
	switch DType(s) {
	case DTypeInt32, DTypeInt16, DTypeSideInt16, DTypeNone:
		return DType(s), nil
	case "":
		return DTypeInt32, nil
	}
	return "", fmt.Errorf("unknown dtype %q (use int32, int16, sideint16 or none)", s)
}

// SaveImage writes a 2D image array as a single-HDU FITS file under dir.
//
// fileName gets a ".fits" extension when it has none. cards are appended to
// the primary header in order. Unless overwrite is set, an existing file is
// an error. For DTypeSideInt16 the pixel values are shifted down by 32768
// before encoding and BZERO/BSCALE cards record the offset for readers.
//
// Returns the full path of the written file.
func SaveImage(array [][]int32, dir, fileName string, cards []fitsio.Card, overwrite bool, dtyp DType) (string, error) {
	nrows := len(array)
	if nrows == 0 || len(array[0]) == 0 {
		return "", fmt.Errorf("image array is empty")
	}
	ncols := len(array[0])
	for i, row := range array {
		if len(row) != ncols {
			return "", fmt.Errorf("ragged image array: row %d has %d columns, expected %d", i, len(row), ncols)
		}
	}

	if filepath.Ext(fileName) == "" {
		fileName += ".fits"
	}
	path := filepath.Join(dir, fileName)

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	w, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("file already exists: %s (set overwrite to replace)", path)
		}
		return "", fmt.Errorf("failed to create FITS file: %w", err)
	}
	defer func() { _ = w.Close() }()

	f, err := fitsio.Create(w)
	if err != nil {
		return "", fmt.Errorf("failed to initialize FITS file: %w", err)
	}
	defer func() { _ = f.Close() }()

	// FITS axes are [NAXIS1, NAXIS2] = [columns, rows]; data is stored with
	// NAXIS1 varying fastest, i.e. row-major.
	axes := []int{ncols, nrows}

	var img fitsio.Image
	switch dtyp {
	case DTypeInt16:
		img = fitsio.NewImage(16, axes)
		defer func() { _ = img.Close() }()
		data := flattenInt16(array, 0)
		if err := appendCards(img, cards); err != nil {
			return "", err
		}
		if err := img.Write(&data); err != nil {
			return "", fmt.Errorf("failed to encode image data: %w", err)
		}
	case DTypeSideInt16:
		img = fitsio.NewImage(16, axes)
		defer func() { _ = img.Close() }()
		data := flattenInt16(array, -sideInt16Offset)
		if err := appendCards(img, cards); err != nil {
			return "", err
		}
		err := img.Header().Append(
			fitsio.Card{Name: "BSCALE", Value: 1, Comment: "linear scaling factor"},
			fitsio.Card{Name: "BZERO", Value: sideInt16Offset, Comment: "offset applied to stored pixel values"},
		)
		if err != nil {
			return "", fmt.Errorf("failed to append scaling cards: %w", err)
		}
		if err := img.Write(&data); err != nil {
			return "", fmt.Errorf("failed to encode image data: %w", err)
		}
	case DTypeInt32, DTypeNone, "":
		img = fitsio.NewImage(32, axes)
		defer func() { _ = img.Close() }()
		data := flattenInt32(array)
		if err := appendCards(img, cards); err != nil {
			return "", err
		}
		if err := img.Write(&data); err != nil {
			return "", fmt.Errorf("failed to encode image data: %w", err)
		}
	default:
		return "", fmt.Errorf("unknown dtype %q", dtyp)
	}

	if err := f.Write(img); err != nil {
		return "", fmt.Errorf("failed to write FITS HDU: %w", err)
	}

	return path, nil
}

func appendCards(img fitsio.Image, cards []fitsio.Card) error {
	if len(cards) == 0 {
		return nil
	}
	if err := img.Header().Append(cards...); err != nil {
		return fmt.Errorf("failed to append header cards: %w", err)
	}
	return nil
}

// flattenInt16 flattens row-major and applies an additive offset.
func flattenInt16(array [][]int32, offset int32) []int16 {
	out := make([]int16, 0, len(array)*len(array[0]))
	for _, row := range array {
		for _, v := range row {
			out = append(out, int16(v+offset))
		}
	}
	return out
}

func flattenInt32(array [][]int32) []int32 {
	out := make([]int32, 0, len(array)*len(array[0]))
	for _, row := range array {
		out = append(out, row...)
	}
	return out
}
