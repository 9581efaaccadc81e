package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// FeatureSummary holds per-feature descriptive statistics.
type FeatureSummary struct {
	Column string
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes min, max, mean and standard deviation for every
// feature column, in column order.
func Summarize[Y any](d *Dataset[Y]) []FeatureSummary {
	summaries := make([]FeatureSummary, 0, d.Cols())
	for j, column := range d.DataColumns() {
		values := mat.Col(nil, j, d.Data())
		summaries = append(summaries, FeatureSummary{
			Column: column,
			Min:    floats.Min(values),
			Max:    floats.Max(values),
			Mean:   stat.Mean(values, nil),
			StdDev: stat.StdDev(values, nil),
		})
	}
	return summaries
}
