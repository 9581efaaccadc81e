// Package dataset provides the typed containers produced by CSV
// ingestion and consumed by the preprocessing transforms: a homogeneous
// numeric Dataset and a MixedDataset whose cells are tagged numeric or
// categorical values.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"tabprep/pkg/base"
)

// Label constrains the target column element type. Numeric targets are
// parsed as float64, anything else is kept as the raw string.
type Label interface {
	float64 | string
}

// Dataset is a feature matrix together with a target column. The data
// columns are index-aligned with the matrix columns and never include
// the target column. A Dataset is treated as immutable after
// construction: transforms return new instances and callers must not
// modify the returned matrix or slices.
type Dataset[Y any] struct {
	data         *mat.Dense
	target       []Y
	dataColumns  []string
	targetColumn string
}

// New constructs a Dataset and validates its shape: the target length
// must equal the matrix row count, the column names must be
// index-aligned with the matrix columns, and the target column must not
// appear among the data columns. Violations are reported as
// InvalidParameters.
func New[Y any](data *mat.Dense, target []Y, dataColumns []string, targetColumn string) (*Dataset[Y], error) {
	rows, cols := data.Dims()
	if len(target) != rows {
		return nil, base.Errorf(base.InvalidParameters,
			"target length %d does not match row count %d", len(target), rows)
	}
	if len(dataColumns) != cols {
		return nil, base.Errorf(base.InvalidParameters,
			"%d column names for %d matrix columns", len(dataColumns), cols)
	}
	for _, name := range dataColumns {
		if name == targetColumn {
			return nil, base.Errorf(base.InvalidParameters,
				"target column %s must not appear in data columns", targetColumn)
		}
	}
	return &Dataset[Y]{
		data:         data,
		target:       target,
		dataColumns:  dataColumns,
		targetColumn: targetColumn,
	}, nil
}

// Data returns the feature matrix.
func (d *Dataset[Y]) Data() *mat.Dense {
	return d.data
}

// Target returns the target column values, one per row.
func (d *Dataset[Y]) Target() []Y {
	return d.target
}

// DataColumns returns the feature column names in matrix column order.
func (d *Dataset[Y]) DataColumns() []string {
	return d.dataColumns
}

// TargetColumn returns the name of the target column.
func (d *Dataset[Y]) TargetColumn() string {
	return d.targetColumn
}

// Rows returns the number of data rows.
func (d *Dataset[Y]) Rows() int {
	rows, _ := d.data.Dims()
	return rows
}

// Cols returns the number of feature columns.
func (d *Dataset[Y]) Cols() int {
	_, cols := d.data.Dims()
	return cols
}
