// Package nc reads 2D image grids from NetCDF files.
package nc

import (
	"fmt"

	"github.com/fhs/go-netcdf/netcdf"
)

// Grid is a 2D data array read from a NetCDF variable, row-major.
type Grid struct {
	VarName string
	Values  [][]float64
}

// ReadGrid reads a 2D variable from a NetCDF file. When varName is empty
// the common data variable names are tried in order.
func ReadGrid(path, varName string) (*Grid, error) {
	ds, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to open NetCDF file: %w", err)
	}
	defer func() { _ = ds.Close() }()

	candidates := []string{varName}
	if varName == "" {
		candidates = []string{"data", "z", "image", "counts"}
	}

	var (
		dataVar netcdf.Var
		found   string
	)
	for _, name := range candidates {
		if v, err := ds.Var(name); err == nil {
			dataVar = v
			found = name
			break
		}
	}
	if found == "" {
		return nil, fmt.Errorf("data variable not found in %s (tried: %v)", path, candidates)
	}

	dims, err := dataVar.Dims()
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions: %w", err)
	}
	if len(dims) != 2 {
		return nil, fmt.Errorf("expected 2D data, got %dD", len(dims))
	}

	dim0Len, err := dims[0].Len()
	if err != nil {
		return nil, fmt.Errorf("failed to get dim0 length: %w", err)
	}
	dim1Len, err := dims[1].Len()
	if err != nil {
		return nil, fmt.Errorf("failed to get dim1 length: %w", err)
	}

	values, err := read2DFloat64Var(dataVar, int(dim0Len), int(dim1Len))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", found, err)
	}

	// Replace _FillValue or missing_value with 0 to avoid huge artifacts.
	if fv, ok := getFillValue(dataVar); ok {
		for i := range values {
			for j := range values[i] {
				if values[i][j] == fv {
					values[i][j] = 0
				}
			}
		}
	}

	return &Grid{VarName: found, Values: values}, nil
}

// getFillValue returns the _FillValue or missing_value attribute if present.
func getFillValue(v netcdf.Var) (float64, bool) {
	for _, name := range []string{"_FillValue", "missing_value"} {
		a := v.Attr(name)
		if a == (netcdf.Attr{}) {
			continue
		}
		if n, err := a.Len(); err == nil && n > 0 {
			buf64 := make([]float64, 1)
			if err := a.ReadFloat64s(buf64); err == nil {
				return buf64[0], true
			}
			buf32 := make([]float32, 1)
			if err := a.ReadFloat32s(buf32); err == nil {
				return float64(buf32[0]), true
			}
			bufi := make([]int32, 1)
			if err := a.ReadInt32s(bufi); err == nil {
				return float64(bufi[0]), true
			}
		}
	}
	return 0, false
}

// read2DFloat64Var reads a 2D float64 array from a NetCDF variable.
func read2DFloat64Var(v netcdf.Var, nRows, nCols int) ([][]float64, error) {
	total := nRows * nCols
	var flat []float64

	t, err := v.Type()
	if err != nil {
		return nil, fmt.Errorf("failed to get var type: %w", err)
	}
	switch t {
	case netcdf.DOUBLE:
		flat = make([]float64, total)
		if err := v.ReadFloat64s(flat); err != nil {
			return nil, err
		}
	case netcdf.FLOAT:
		tmp := make([]float32, total)
		if err := v.ReadFloat32s(tmp); err != nil {
			return nil, err
		}
		flat = make([]float64, total)
		for i, val := range tmp {
			flat[i] = float64(val)
		}
	case netcdf.INT:
		tmp := make([]int32, total)
		if err := v.ReadInt32s(tmp); err != nil {
			return nil, err
		}
		flat = make([]float64, total)
		for i, val := range tmp {
			flat[i] = float64(val)
		}
	case netcdf.SHORT:
		tmp := make([]int16, total)
		if err := v.ReadInt16s(tmp); err != nil {
			return nil, err
		}
		flat = make([]float64, total)
		for i, val := range tmp {
			flat[i] = float64(val)
		}
	default:
		return nil, fmt.Errorf("unsupported data type: %v", t)
	}

	values := make([][]float64, nRows)
	for i := 0; i < nRows; i++ {
		values[i] = flat[i*nCols : (i+1)*nCols]
	}
	return values, nil
}
