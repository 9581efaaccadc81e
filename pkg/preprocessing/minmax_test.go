package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"tabprep/pkg/base"
	"tabprep/pkg/dataset"
)

func TestMinMaxScalerOnIris(t *testing.T) {
	iris, err := dataset.LoadIris()
	require.NoError(t, err)

	fitter := DefaultMinMaxFitter[string]()
	require.Equal(t, NotFit, fitter.FitStatus())

	scaler, err := fitter.Fit(iris)
	require.NoError(t, err)
	require.Equal(t, Fit, scaler.Fitter().FitStatus())
	require.Equal(t, 5, scaler.Fitter().NumFeatures())
	require.Equal(t, []float64{1, 4.4, 2.3, 1.3, 0.1}, scaler.Fitter().MinValues())
	require.Equal(t, []float64{30, 7.6, 3.9, 6.6, 2.5}, scaler.Fitter().MaxValues())

	out, err := scaler.Transform(iris)
	require.NoError(t, err)

	firstRow := []float64{0, 0.7 / 3.2, 1.2 / 1.6, 0.1 / 5.3, 0.1 / 2.4}
	for j, expected := range firstRow {
		require.InDelta(t, expected, out.Data().At(0, j), 1e-12, "col %d", j)
	}
}

func TestMinMaxScalerBoundaryLaw(t *testing.T) {
	iris, err := dataset.LoadIris()
	require.NoError(t, err)

	scaler, err := NewMinMaxFitter[string](-1.0, 1.0).Fit(iris)
	require.NoError(t, err)
	out, err := scaler.Transform(iris)
	require.NoError(t, err)

	for j := 0; j < out.Cols(); j++ {
		column := mat.Col(nil, j, out.Data())
		low, high := column[0], column[0]
		for _, v := range column {
			low = math.Min(low, v)
			high = math.Max(high, v)
		}
		require.InDelta(t, -1.0, low, 1e-12, "feature %d minimum maps to scaled min", j)
		require.InDelta(t, 1.0, high, 1e-12, "feature %d maximum maps to scaled max", j)
	}
}

func TestMinMaxScalerPreservesShape(t *testing.T) {
	iris, err := dataset.LoadIris()
	require.NoError(t, err)

	scaler, err := DefaultMinMaxFitter[string]().Fit(iris)
	require.NoError(t, err)
	out, err := scaler.Transform(iris)
	require.NoError(t, err)

	require.Equal(t, iris.Rows(), out.Rows())
	require.Equal(t, iris.Cols(), out.Cols())
	require.Equal(t, iris.DataColumns(), out.DataColumns())
	require.Equal(t, iris.Target(), out.Target())
	require.Equal(t, iris.TargetColumn(), out.TargetColumn())
}

func TestMinMaxScalerFeatureCountMismatch(t *testing.T) {
	iris, err := dataset.LoadIris()
	require.NoError(t, err)
	scaler, err := DefaultMinMaxFitter[string]().Fit(iris)
	require.NoError(t, err)

	small, err := dataset.New(
		mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
		[]string{"a", "b"},
		[]string{"x", "y"},
		"label",
	)
	require.NoError(t, err)

	_, err = scaler.Transform(small)
	require.Error(t, err)
	require.True(t, base.IsKind(err, base.InvalidState))
	require.Contains(t, err.Error(), "does not match dataset's number of features")
}

func TestMinMaxScalerReusableAcrossInputs(t *testing.T) {
	train, err := dataset.New(
		mat.NewDense(2, 1, []float64{0, 10}),
		[]string{"a", "b"},
		[]string{"x"},
		"label",
	)
	require.NoError(t, err)
	scaler, err := DefaultMinMaxFitter[string]().Fit(train)
	require.NoError(t, err)

	// Held-out values outside the fitted range scale past the bounds.
	heldOut, err := dataset.New(
		mat.NewDense(3, 1, []float64{5, 20, -10}),
		[]string{"a", "b", "c"},
		[]string{"x"},
		"label",
	)
	require.NoError(t, err)

	out, err := scaler.Transform(heldOut)
	require.NoError(t, err)
	require.Equal(t, 0.5, out.Data().At(0, 0))
	require.Equal(t, 2.0, out.Data().At(1, 0))
	require.Equal(t, -1.0, out.Data().At(2, 0))
}

func TestMinMaxScalerDegenerateFeature(t *testing.T) {
	constant, err := dataset.New(
		mat.NewDense(3, 2, []float64{
			7, 1,
			7, 2,
			7, 3,
		}),
		[]string{"a", "b", "c"},
		[]string{"x", "y"},
		"label",
	)
	require.NoError(t, err)

	scaler, err := DefaultMinMaxFitter[string]().Fit(constant)
	require.NoError(t, err)
	require.True(t, math.IsInf(scaler.Fitter().ScaleFactors()[0], 1))
	require.False(t, math.IsInf(scaler.Fitter().ScaleFactors()[1], 0))
}

func TestMinMaxScalerFactors(t *testing.T) {
	ds, err := dataset.New(
		mat.NewDense(2, 1, []float64{2, 6}),
		[]string{"a", "b"},
		[]string{"x"},
		"label",
	)
	require.NoError(t, err)

	scaler, err := NewMinMaxFitter[string](0.0, 2.0).Fit(ds)
	require.NoError(t, err)

	scaledMin, scaledMax := scaler.Fitter().ScaledRange()
	require.Equal(t, 0.0, scaledMin)
	require.Equal(t, 2.0, scaledMax)
	require.Equal(t, []float64{0.5}, scaler.Fitter().ScaleFactors())
	require.Equal(t, []float64{-1.0}, scaler.Fitter().ConstantFactors())
}

func TestRestoreMinMaxScaler(t *testing.T) {
	scaler := RestoreMinMaxScaler[string](0.0, 1.0, []float64{0}, []float64{10})
	require.Equal(t, Fit, scaler.Fitter().FitStatus())

	ds, err := dataset.New(
		mat.NewDense(1, 1, []float64{5}),
		[]string{"a"},
		[]string{"x"},
		"label",
	)
	require.NoError(t, err)

	out, err := scaler.Transform(ds)
	require.NoError(t, err)
	require.Equal(t, 0.5, out.Data().At(0, 0))
}
