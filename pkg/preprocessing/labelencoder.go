package preprocessing

import (
	"tabprep/pkg/base"
)

// LabelEncoderFitter builds the label→code mapping for a LabelEncoder.
// Codes are assigned 0, 1, 2, … in the order labels are first seen.
type LabelEncoderFitter[K comparable] struct {
	labelMap map[K]float64
	classes  []K
	status   FitStatus
}

// NewLabelEncoderFitter creates an unfitted label encoder fitter.
func NewLabelEncoderFitter[K comparable]() *LabelEncoderFitter[K] {
	return &LabelEncoderFitter[K]{labelMap: map[K]float64{}}
}

// Fit walks labels once in order, assigning each distinct value the
// next sequential code, and returns the fitted encoder. Fit never
// fails.
func (f *LabelEncoderFitter[K]) Fit(labels []K) (*LabelEncoder[K], error) {
	f.labelMap = make(map[K]float64, len(labels))
	f.classes = f.classes[:0]
	for _, label := range labels {
		if _, ok := f.labelMap[label]; !ok {
			f.labelMap[label] = float64(len(f.classes))
			f.classes = append(f.classes, label)
		}
	}
	f.status = Fit
	return &LabelEncoder[K]{fitter: f}, nil
}

// FitStatus reports whether the fitter has been fit.
func (f *LabelEncoderFitter[K]) FitStatus() FitStatus {
	return f.status
}

// LabelMap returns the fitted label→code mapping. The map is shared
// with the encoder and must not be modified.
func (f *LabelEncoderFitter[K]) LabelMap() map[K]float64 {
	return f.labelMap
}

// Classes returns the distinct labels in code order.
func (f *LabelEncoderFitter[K]) Classes() []K {
	return f.classes
}

// LabelEncoder maps label values to the numeric codes assigned at fit
// time.
type LabelEncoder[K comparable] struct {
	fitter *LabelEncoderFitter[K]
}

// Fitter returns the fitter holding the encoder's state.
func (e *LabelEncoder[K]) Fitter() *LabelEncoderFitter[K] {
	return e.fitter
}

// Transform maps each label to its fitted code, preserving length and
// order. A label absent from the fitted mapping is an InvalidState
// error; unlike the one-hot encoder, the label encoder has no fallback
// for unseen values.
func (e *LabelEncoder[K]) Transform(labels []K) ([]float64, error) {
	mapped := make([]float64, 0, len(labels))
	for _, label := range labels {
		code, ok := e.fitter.labelMap[label]
		if !ok {
			return nil, base.Errorf(base.InvalidState, "label %v not found in encoder", label)
		}
		mapped = append(mapped, code)
	}
	return mapped, nil
}

// RestoreLabelEncoder rebuilds a fitted encoder from its classes in
// code order, as produced by Classes. Used when loading persisted
// pipeline state.
func RestoreLabelEncoder[K comparable](classes []K) *LabelEncoder[K] {
	fitter := NewLabelEncoderFitter[K]()
	for _, class := range classes {
		if _, ok := fitter.labelMap[class]; !ok {
			fitter.labelMap[class] = float64(len(fitter.classes))
			fitter.classes = append(fitter.classes, class)
		}
	}
	fitter.status = Fit
	return &LabelEncoder[K]{fitter: fitter}
}

var _ Fitter[[]string, *LabelEncoder[string]] = (*LabelEncoderFitter[string])(nil)

var _ Transformer[[]string, []float64] = (*LabelEncoder[string])(nil)
