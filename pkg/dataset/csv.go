package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"tabprep/pkg/base"
)

type void struct{}

// Set is a set of column names.
type Set map[string]void

// NewSet builds a Set from the given column names.
func NewSet(values ...string) Set {
	set := Set{}
	for _, val := range values {
		set[val] = void{}
	}
	return set
}

// Contains reports whether name is a member of the set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// FromCSV reads a CSV file with a header row into a Dataset. Every
// non-target cell must parse as float64; the target cell parses as Y.
func FromCSV[Y Label](path string, targetColumn string) (*Dataset[Y], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, base.WrapError(base.InvalidData, "opening "+path, err)
	}
	defer file.Close()
	return ReadDataset[Y](file, targetColumn)
}

// ReadDataset reads CSV data with a header row into a Dataset. All
// feature columns must hold the same numeric type; a dataset whose
// feature columns contain categorical values must go through
// ReadMixedDataset instead. Note that for a float64 target this means
// the target cells themselves must be numeric: label encoding of a
// categorical target is a separate step, not part of ingestion.
func ReadDataset[Y Label](r io.Reader, targetColumn string) (*Dataset[Y], error) {
	header, records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	targetIndex, err := targetColumnIndex(header, targetColumn)
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, base.NewError(base.InvalidData, "no feature columns")
	}

	cols := len(header) - 1
	flat := make([]float64, 0, len(records)*cols)
	target := make([]Y, 0, len(records))
	for i, record := range records {
		for j, cell := range record {
			if j == targetIndex {
				value, err := parseLabel[Y](cell)
				if err != nil {
					return nil, base.Errorf(base.InvalidData,
						"parsing target value %q on line %d", cell, i+2)
				}
				target = append(target, value)
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, base.Errorf(base.InvalidData,
					"parsing value %q in column %s on line %d", cell, header[j], i+2)
			}
			flat = append(flat, value)
		}
	}

	data := mat.NewDense(len(records), cols, flat)
	return New(data, target, dataColumns(header, targetIndex), targetColumn)
}

// MixedFromCSV reads a CSV file with a header row into a MixedDataset.
// Columns named in numericColumns are parsed as float64; all other
// feature columns are kept as categorical strings.
func MixedFromCSV[Y Label](path string, targetColumn string, numericColumns Set) (*MixedDataset[Y], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, base.WrapError(base.InvalidData, "opening "+path, err)
	}
	defer file.Close()
	return ReadMixedDataset[Y](file, targetColumn, numericColumns)
}

// ReadMixedDataset reads CSV data with a header row into a
// MixedDataset. A column's typing is decided by membership of its
// header name in numericColumns, never by inspecting the data.
func ReadMixedDataset[Y Label](r io.Reader, targetColumn string, numericColumns Set) (*MixedDataset[Y], error) {
	header, records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	targetIndex, err := targetColumnIndex(header, targetColumn)
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, base.NewError(base.InvalidData, "no feature columns")
	}

	data := make([][]MixedDataValue, 0, len(records))
	target := make([]Y, 0, len(records))
	for i, record := range records {
		row := make([]MixedDataValue, 0, len(header)-1)
		for j, cell := range record {
			if j == targetIndex {
				value, err := parseLabel[Y](cell)
				if err != nil {
					return nil, base.Errorf(base.InvalidData,
						"parsing target value %q on line %d", cell, i+2)
				}
				target = append(target, value)
				continue
			}
			if numericColumns.Contains(header[j]) {
				value, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, base.Errorf(base.InvalidData,
						"parsing value %q in numeric column %s on line %d", cell, header[j], i+2)
				}
				row = append(row, Numeric(value))
			} else {
				row = append(row, Categorical(cell))
			}
		}
		data = append(data, row)
	}

	return NewMixed(data, target, dataColumns(header, targetIndex), targetColumn)
}

// readRecords reads the header and data rows, rejecting empty inputs.
// The csv reader enforces that every record has the header's field
// count.
func readRecords(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = ','

	header, err := reader.Read()
	if err != nil {
		return nil, nil, base.WrapError(base.InvalidData, "reading data header", err)
	}
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, base.WrapError(base.InvalidData, "reading data rows", err)
	}
	if len(records) == 0 {
		return nil, nil, base.NewError(base.InvalidData, "no data rows")
	}
	return header, records, nil
}

func targetColumnIndex(header []string, targetColumn string) (int, error) {
	for i, col := range header {
		if col == targetColumn {
			return i, nil
		}
	}
	return 0, base.Errorf(base.InvalidData, "target column %s not found in data header", targetColumn)
}

func dataColumns(header []string, targetIndex int) []string {
	columns := make([]string, 0, len(header)-1)
	for i, col := range header {
		if i != targetIndex {
			columns = append(columns, col)
		}
	}
	return columns
}

func parseLabel[Y Label](cell string) (Y, error) {
	var label Y
	switch p := any(&label).(type) {
	case *float64:
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return label, err
		}
		*p = value
	case *string:
		*p = cell
	}
	return label, nil
}
