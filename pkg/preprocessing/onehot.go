package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"tabprep/pkg/base"
	"tabprep/pkg/dataset"
)

// OneHotEncoderFitter discovers the categories of every categorical
// column of a MixedDataset.
type OneHotEncoderFitter[Y any] struct {
	categoryMap map[string]*CategoryMap
	status      FitStatus
}

// NewOneHotEncoderFitter creates an unfitted one-hot encoder fitter.
func NewOneHotEncoderFitter[Y any]() *OneHotEncoderFitter[Y] {
	return &OneHotEncoderFitter[Y]{categoryMap: map[string]*CategoryMap{}}
}

// Fit scans every column of the input and records, for each column that
// contains categorical cells, a category map in first-seen row order.
// Columns with no categorical cell are omitted and pass through
// unchanged at transform time. Fit never fails.
func (f *OneHotEncoderFitter[Y]) Fit(input *dataset.MixedDataset[Y]) (*OneHotEncoder[Y], error) {
	categoryMap := map[string]*CategoryMap{}
	for colIndex, colName := range input.DataColumns() {
		m := NewCategoryMap()
		for _, row := range input.Data() {
			if value, ok := row[colIndex].(dataset.Categorical); ok {
				m.IndexFor(string(value))
			}
		}
		if m.Size() > 0 {
			categoryMap[colName] = m
		}
	}
	f.categoryMap = categoryMap
	f.status = Fit
	return &OneHotEncoder[Y]{fitter: f}, nil
}

// FitStatus reports whether the fitter has been fit.
func (f *OneHotEncoderFitter[Y]) FitStatus() FitStatus {
	return f.status
}

// CategoryMap returns the fitted per-column category maps, keyed by
// column name. Shared with the encoder; must not be modified.
func (f *OneHotEncoderFitter[Y]) CategoryMap() map[string]*CategoryMap {
	return f.categoryMap
}

// OneHotEncoder expands every categorical column of a MixedDataset into
// a block of binary indicator columns, producing a homogeneous numeric
// Dataset. Numeric columns pass through unchanged at their original
// position in the flattened column order.
type OneHotEncoder[Y any] struct {
	fitter *OneHotEncoderFitter[Y]
}

// Fitter returns the fitter holding the encoder's state.
func (e *OneHotEncoder[Y]) Fitter() *OneHotEncoderFitter[Y] {
	return e.fitter
}

// Transform replays the input's columns in order: a column with a
// fitted category map expands to one "<column>_<category>" indicator
// column per category, in map index order; any other column passes
// through. For each row a seen category sets a single 1.0 at its fitted
// index; an unseen category yields an all-zero block rather than an
// error. The target column is copied unchanged.
func (e *OneHotEncoder[Y]) Transform(input *dataset.MixedDataset[Y]) (*dataset.Dataset[Y], error) {
	columns := make([]string, 0, len(input.DataColumns()))
	for _, colName := range input.DataColumns() {
		if m, ok := e.fitter.categoryMap[colName]; ok {
			for _, category := range m.Values() {
				columns = append(columns, colName+"_"+category)
			}
		} else {
			columns = append(columns, colName)
		}
	}

	rows := input.Rows()
	cols := len(columns)
	if rows == 0 || cols == 0 {
		return nil, base.Errorf(base.InvalidState,
			"cannot build a %dx%d output matrix from the input", rows, cols)
	}
	flat := make([]float64, 0, rows*cols)
	for i, row := range input.Data() {
		start := len(flat)
		for colIndex, value := range row {
			colName := input.DataColumns()[colIndex]
			switch v := value.(type) {
			case dataset.Categorical:
				m, ok := e.fitter.categoryMap[colName]
				if !ok {
					continue
				}
				block := make([]float64, m.Size())
				if index, seen := m.Index(string(v)); seen {
					block[index] = 1.0
				}
				flat = append(flat, block...)
			case dataset.Numeric:
				flat = append(flat, float64(v))
			}
		}
		if len(flat)-start != cols {
			return nil, base.Errorf(base.InvalidState,
				"row %d expands to %d values, expected %d", i, len(flat)-start, cols)
		}
	}

	target := make([]Y, len(input.Target()))
	copy(target, input.Target())
	data := mat.NewDense(rows, cols, flat)
	return dataset.New(data, target, columns, input.TargetColumn())
}

// RestoreOneHotEncoder rebuilds a fitted encoder from per-column
// category lists in index order. Used when loading persisted pipeline
// state.
func RestoreOneHotEncoder[Y any](categories map[string][]string) *OneHotEncoder[Y] {
	fitter := NewOneHotEncoderFitter[Y]()
	for colName, values := range categories {
		m := NewCategoryMap()
		for _, value := range values {
			m.IndexFor(value)
		}
		fitter.categoryMap[colName] = m
	}
	fitter.status = Fit
	return &OneHotEncoder[Y]{fitter: fitter}
}

var _ Fitter[*dataset.MixedDataset[string], *OneHotEncoder[string]] = (*OneHotEncoderFitter[string])(nil)

var _ Transformer[*dataset.MixedDataset[string], *dataset.Dataset[string]] = (*OneHotEncoder[string])(nil)
