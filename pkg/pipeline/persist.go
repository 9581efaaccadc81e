package pipeline

import (
	"encoding/gob"
	"fmt"
	"io"

	"tabprep/pkg/base"
	"tabprep/pkg/preprocessing"
)

// pipelineState is the gob-serializable snapshot of a fitted pipeline.
// Only primary fitted state is stored; derived coefficients are
// recomputed on load.
type pipelineState struct {
	// Fitted marks the snapshot as coming from a fitted pipeline; gob
	// omits zero-valued fields, so an empty Categories map alone cannot
	// distinguish "fitted on all-numeric data" from "never fitted".
	Fitted        bool
	Config        Config
	Categories    map[string][]string
	ScaleMin      []float64
	ScaleMax      []float64
	TargetClasses []string
}

// Save writes the fitted pipeline state to w.
func (p *Pipeline) Save(w io.Writer) error {
	if p.Encoder == nil {
		return base.NewError(base.UntrainedModel, "pipeline has no fitted encoder")
	}

	state := pipelineState{Fitted: true, Config: p.Config, Categories: map[string][]string{}}
	for column, m := range p.Encoder.Fitter().CategoryMap() {
		state.Categories[column] = m.Values()
	}
	if p.Scaler != nil {
		state.ScaleMin = p.Scaler.Fitter().MinValues()
		state.ScaleMax = p.Scaler.Fitter().MaxValues()
	}
	if p.Target != nil {
		state.TargetClasses = p.Target.Fitter().Classes()
	}

	if err := gob.NewEncoder(w).Encode(state); err != nil {
		return fmt.Errorf("encoding pipeline: %w", err)
	}
	return nil
}

// Load reads a fitted pipeline previously written by Save and rebuilds
// its transformers.
func Load(r io.Reader) (*Pipeline, error) {
	var state pipelineState
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return nil, fmt.Errorf("decoding pipeline: %w", err)
	}
	if !state.Fitted {
		return nil, base.NewError(base.UntrainedModel, "pipeline file contains no fitted encoder state")
	}

	p := &Pipeline{
		Config:  state.Config,
		Encoder: preprocessing.RestoreOneHotEncoder[string](state.Categories),
	}
	if state.Config.Scale != nil {
		p.Scaler = preprocessing.RestoreMinMaxScaler[string](
			state.Config.Scale.Min, state.Config.Scale.Max, state.ScaleMin, state.ScaleMax)
	}
	if state.Config.EncodeTarget {
		p.Target = preprocessing.RestoreLabelEncoder(state.TargetClasses)
	}
	return p, nil
}
