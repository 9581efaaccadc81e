package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"tabprep/pkg/base"
	"tabprep/pkg/dataset"
)

// MinMaxFitter computes per-feature rescaling coefficients for a
// MinMaxScaler. For each feature the scaler applies
//
//	scaled = value*scaleFactor + constantFactor
//
// where scaleFactor = (scaledMax-scaledMin)/(max-min) and
// constantFactor = scaledMin - min*scaleFactor.
type MinMaxFitter[Y any] struct {
	numFeatures     int
	scaledMin       float64
	scaledMax       float64
	minValues       []float64
	maxValues       []float64
	scaleFactors    []float64
	constantFactors []float64
	status          FitStatus
}

// NewMinMaxFitter creates an unfitted fitter targeting the range
// [scaledMin, scaledMax].
func NewMinMaxFitter[Y any](scaledMin, scaledMax float64) *MinMaxFitter[Y] {
	return &MinMaxFitter[Y]{scaledMin: scaledMin, scaledMax: scaledMax}
}

// DefaultMinMaxFitter creates an unfitted fitter targeting [0, 1].
func DefaultMinMaxFitter[Y any]() *MinMaxFitter[Y] {
	return NewMinMaxFitter[Y](0.0, 1.0)
}

// Fit makes a single pass over the input computing per-feature min and
// max, then derives the scale and constant factors. Fit never fails; a
// constant feature (min == max) yields an infinite scale factor per
// IEEE division, which the caller can detect through ScaleFactors.
func (f *MinMaxFitter[Y]) Fit(input *dataset.Dataset[Y]) (*MinMaxScaler[Y], error) {
	numFeatures := len(input.DataColumns())
	minValues := make([]float64, numFeatures)
	maxValues := make([]float64, numFeatures)
	for j := range minValues {
		minValues[j] = math.MaxFloat64
		maxValues[j] = -math.MaxFloat64
	}

	data := input.Data()
	rows, _ := data.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < numFeatures; j++ {
			value := data.At(i, j)
			if value < minValues[j] {
				minValues[j] = value
			}
			if value > maxValues[j] {
				maxValues[j] = value
			}
		}
	}

	scaleFactors := make([]float64, numFeatures)
	constantFactors := make([]float64, numFeatures)
	for j := 0; j < numFeatures; j++ {
		scaleFactors[j] = (f.scaledMax - f.scaledMin) / (maxValues[j] - minValues[j])
		constantFactors[j] = f.scaledMin - minValues[j]*scaleFactors[j]
	}

	f.numFeatures = numFeatures
	f.minValues = minValues
	f.maxValues = maxValues
	f.scaleFactors = scaleFactors
	f.constantFactors = constantFactors
	f.status = Fit
	return &MinMaxScaler[Y]{fitter: f}, nil
}

// FitStatus reports whether the fitter has been fit.
func (f *MinMaxFitter[Y]) FitStatus() FitStatus {
	return f.status
}

// NumFeatures returns the feature count recorded at fit time.
func (f *MinMaxFitter[Y]) NumFeatures() int {
	return f.numFeatures
}

// ScaledRange returns the configured target range.
func (f *MinMaxFitter[Y]) ScaledRange() (float64, float64) {
	return f.scaledMin, f.scaledMax
}

// MinValues returns the fitted per-feature minimums, index-aligned with
// the data columns.
func (f *MinMaxFitter[Y]) MinValues() []float64 {
	return f.minValues
}

// MaxValues returns the fitted per-feature maximums.
func (f *MinMaxFitter[Y]) MaxValues() []float64 {
	return f.maxValues
}

// ScaleFactors returns the fitted per-feature scale factors.
func (f *MinMaxFitter[Y]) ScaleFactors() []float64 {
	return f.scaleFactors
}

// ConstantFactors returns the fitted per-feature constant factors.
func (f *MinMaxFitter[Y]) ConstantFactors() []float64 {
	return f.constantFactors
}

// MinMaxScaler affinely rescales every feature of a Dataset into the
// range chosen at fit time.
type MinMaxScaler[Y any] struct {
	fitter *MinMaxFitter[Y]
}

// Fitter returns the fitter holding the scaler's state.
func (s *MinMaxScaler[Y]) Fitter() *MinMaxFitter[Y] {
	return s.fitter
}

// Transform applies the fitted coefficients element-wise in row-major
// order, returning a new Dataset with the same dimensions, columns and
// target. A feature-count mismatch with the fitted state is an
// InvalidState error.
func (s *MinMaxScaler[Y]) Transform(input *dataset.Dataset[Y]) (*dataset.Dataset[Y], error) {
	fitter := s.fitter
	if len(input.DataColumns()) != fitter.numFeatures {
		return nil, base.Errorf(base.InvalidState,
			"fitted number of features (%d) does not match dataset's number of features (%d)",
			fitter.numFeatures, len(input.DataColumns()))
	}

	data := input.Data()
	rows, cols := data.Dims()
	scaled := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			scaled = append(scaled, data.At(i, j)*fitter.scaleFactors[j]+fitter.constantFactors[j])
		}
	}

	target := make([]Y, len(input.Target()))
	copy(target, input.Target())
	return dataset.New(mat.NewDense(rows, cols, scaled), target, input.DataColumns(), input.TargetColumn())
}

// RestoreMinMaxScaler rebuilds a fitted scaler from the persisted range
// and per-feature minimums and maximums; the scale and constant factors
// are rederived. Used when loading persisted pipeline state.
func RestoreMinMaxScaler[Y any](scaledMin, scaledMax float64, minValues, maxValues []float64) *MinMaxScaler[Y] {
	fitter := NewMinMaxFitter[Y](scaledMin, scaledMax)
	numFeatures := len(minValues)
	scaleFactors := make([]float64, numFeatures)
	constantFactors := make([]float64, numFeatures)
	for j := 0; j < numFeatures; j++ {
		scaleFactors[j] = (scaledMax - scaledMin) / (maxValues[j] - minValues[j])
		constantFactors[j] = scaledMin - minValues[j]*scaleFactors[j]
	}
	fitter.numFeatures = numFeatures
	fitter.minValues = minValues
	fitter.maxValues = maxValues
	fitter.scaleFactors = scaleFactors
	fitter.constantFactors = constantFactors
	fitter.status = Fit
	return &MinMaxScaler[Y]{fitter: fitter}
}

var _ Fitter[*dataset.Dataset[string], *MinMaxScaler[string]] = (*MinMaxFitter[string])(nil)

var _ Transformer[*dataset.Dataset[string], *dataset.Dataset[string]] = (*MinMaxScaler[string])(nil)
