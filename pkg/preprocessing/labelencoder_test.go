package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tabprep/pkg/base"
	"tabprep/pkg/dataset"
)

func TestLabelEncoderAssignsCodesInFirstSeenOrder(t *testing.T) {
	encoder, err := NewLabelEncoderFitter[string]().Fit([]string{"b", "a", "b", "c"})
	require.NoError(t, err)

	require.Equal(t, map[string]float64{"b": 0, "a": 1, "c": 2}, encoder.Fitter().LabelMap())
	require.Equal(t, []string{"b", "a", "c"}, encoder.Fitter().Classes())

	mapped, err := encoder.Transform([]string{"b", "a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0, 2}, mapped)
}

func TestLabelEncoderDeterminism(t *testing.T) {
	labels := []string{"x", "z", "y", "z", "x"}

	first, err := NewLabelEncoderFitter[string]().Fit(labels)
	require.NoError(t, err)
	second, err := NewLabelEncoderFitter[string]().Fit(labels)
	require.NoError(t, err)

	require.Equal(t, first.Fitter().LabelMap(), second.Fitter().LabelMap())
	require.Equal(t, first.Fitter().Classes(), second.Fitter().Classes())
}

func TestLabelEncoderUnseenLabel(t *testing.T) {
	encoder, err := NewLabelEncoderFitter[string]().Fit([]string{"a", "b"})
	require.NoError(t, err)

	_, err = encoder.Transform([]string{"a", "d"})
	require.Error(t, err)
	require.True(t, base.IsKind(err, base.InvalidState))
	require.Contains(t, err.Error(), "not found in encoder")
}

func TestLabelEncoderFitStatus(t *testing.T) {
	fitter := NewLabelEncoderFitter[string]()
	require.Equal(t, NotFit, fitter.FitStatus())

	encoder, err := fitter.Fit([]string{"a"})
	require.NoError(t, err)
	require.Equal(t, Fit, encoder.Fitter().FitStatus())
}

func TestLabelEncoderNumericLabels(t *testing.T) {
	encoder, err := NewLabelEncoderFitter[float64]().Fit([]float64{3.3, 1.1, 3.3, 2.2})
	require.NoError(t, err)

	mapped, err := encoder.Transform([]float64{2.2, 3.3, 1.1})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0, 1}, mapped)
}

func TestLabelEncoderIrisSpecies(t *testing.T) {
	iris, err := dataset.LoadIris()
	require.NoError(t, err)

	encoder, err := NewLabelEncoderFitter[string]().Fit(iris.Target())
	require.NoError(t, err)

	require.Equal(t, map[string]float64{
		"Iris-setosa":     0,
		"Iris-versicolor": 1,
		"Iris-virginica":  2,
	}, encoder.Fitter().LabelMap())

	mapped, err := encoder.Transform(iris.Target())
	require.NoError(t, err)
	require.Len(t, mapped, iris.Rows())
	require.Equal(t, 0.0, mapped[0])
	require.Equal(t, 1.0, mapped[10])
	require.Equal(t, 2.0, mapped[29])
}

func TestRestoreLabelEncoder(t *testing.T) {
	encoder := RestoreLabelEncoder([]string{"b", "a", "c"})
	require.Equal(t, Fit, encoder.Fitter().FitStatus())

	mapped, err := encoder.Transform([]string{"a", "c", "b"})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 0}, mapped)
}
