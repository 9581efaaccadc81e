package dataset

import (
	"tabprep/pkg/base"
)

// MixedDataValue is a single cell of a MixedDataset: either a Numeric
// or a Categorical value. Whether a column holds Numeric or Categorical
// cells is fixed at ingestion time by the numeric-column set and does
// not vary between rows.
type MixedDataValue interface {
	mixedDataValue()
}

// Numeric is a numeric cell value.
type Numeric float64

// Categorical is a categorical (string) cell value.
type Categorical string

func (Numeric) mixedDataValue()     {}
func (Categorical) mixedDataValue() {}

// MixedDataset is a feature container whose columns may hold either
// numeric or categorical values. Like Dataset it is immutable after
// construction.
type MixedDataset[Y any] struct {
	data         [][]MixedDataValue
	target       []Y
	dataColumns  []string
	targetColumn string
}

// NewMixed constructs a MixedDataset and validates its shape: every row
// must have one cell per data column, the target length must equal the
// row count, and the target column must not appear among the data
// columns.
func NewMixed[Y any](data [][]MixedDataValue, target []Y, dataColumns []string, targetColumn string) (*MixedDataset[Y], error) {
	if len(target) != len(data) {
		return nil, base.Errorf(base.InvalidParameters,
			"target length %d does not match row count %d", len(target), len(data))
	}
	for i, row := range data {
		if len(row) != len(dataColumns) {
			return nil, base.Errorf(base.InvalidParameters,
				"row %d has %d cells for %d columns", i, len(row), len(dataColumns))
		}
	}
	for _, name := range dataColumns {
		if name == targetColumn {
			return nil, base.Errorf(base.InvalidParameters,
				"target column %s must not appear in data columns", targetColumn)
		}
	}
	return &MixedDataset[Y]{
		data:         data,
		target:       target,
		dataColumns:  dataColumns,
		targetColumn: targetColumn,
	}, nil
}

// Data returns the rows of mixed cell values.
func (d *MixedDataset[Y]) Data() [][]MixedDataValue {
	return d.data
}

// Target returns the target column values, one per row.
func (d *MixedDataset[Y]) Target() []Y {
	return d.target
}

// DataColumns returns the feature column names in cell order.
func (d *MixedDataset[Y]) DataColumns() []string {
	return d.dataColumns
}

// TargetColumn returns the name of the target column.
func (d *MixedDataset[Y]) TargetColumn() string {
	return d.targetColumn
}

// Rows returns the number of data rows.
func (d *MixedDataset[Y]) Rows() int {
	return len(d.data)
}

// Cols returns the number of feature columns.
func (d *MixedDataset[Y]) Cols() int {
	return len(d.dataColumns)
}
