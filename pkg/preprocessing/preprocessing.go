// Package preprocessing implements stateful, reusable feature
// transforms over the dataset containers: label encoding, one-hot
// expansion and min-max scaling.
//
// Every transform is split into two types: a fitter, which computes
// state from training data exactly once, and the transformer it
// produces, which applies that state to any schema-compatible input.
// Transform is only defined on the fitted type, so transforming before
// fitting does not compile. A fitter is one-shot: after Fit it belongs
// to the transformer it produced and must not be reused.
package preprocessing

// FitStatus reports whether a fitter has completed its training pass.
type FitStatus int

const (
	// NotFit is the initial status of every fitter.
	NotFit FitStatus = iota
	// Fit is the status of a fitter that has produced a transformer.
	Fit
)

func (s FitStatus) String() string {
	if s == Fit {
		return "fit"
	}
	return "not fit"
}

// Transformer applies previously fitted state to a schema-compatible
// input, producing a new output value. The stored state is read-only
// after fitting, so a transformer may be used for repeated Transform
// calls on different inputs.
type Transformer[I, O any] interface {
	Transform(input I) (O, error)
}

// Fitter computes transformer state from training input. Fit inspects
// the input once, without mutating it, and is deterministic for a given
// input.
type Fitter[I, T any] interface {
	Fit(input I) (T, error)
	FitStatus() FitStatus
}
