package pipeline

import (
	"io"

	"github.com/rs/zerolog/log"

	"tabprep/pkg/base"
	"tabprep/pkg/dataset"
	"tabprep/pkg/preprocessing"
)

// Pipeline holds the transformers fitted from a training file. Scaler
// and Target are nil when the configuration disables them.
type Pipeline struct {
	Config  Config
	Encoder *preprocessing.OneHotEncoder[string]
	Scaler  *preprocessing.MinMaxScaler[string]
	Target  *preprocessing.LabelEncoder[string]
}

// Result is a transformed dataset together with the encoded target
// codes when target encoding is enabled (nil otherwise).
type Result struct {
	Dataset       *dataset.Dataset[string]
	EncodedTarget []float64
}

// Fit ingests the training file as a MixedDataset, fits the one-hot
// encoder and the configured scaler and target encoder, and returns the
// fitted pipeline along with the transformed training data.
func Fit(config Config, trainFile string) (*Pipeline, *Result, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}
	mixed, err := dataset.MixedFromCSV[string](trainFile, config.TargetColumn, dataset.NewSet(config.NumericColumns...))
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("file", trainFile).Int("rows", mixed.Rows()).Int("columns", mixed.Cols()).
		Msg("loaded training data")

	p := &Pipeline{Config: config}

	encoder, err := preprocessing.NewOneHotEncoderFitter[string]().Fit(mixed)
	if err != nil {
		return nil, nil, err
	}
	p.Encoder = encoder
	ds, err := encoder.Transform(mixed)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Int("columns", ds.Cols()).Msg("one-hot encoded training data")

	if config.Scale != nil {
		scaler, err := preprocessing.NewMinMaxFitter[string](config.Scale.Min, config.Scale.Max).Fit(ds)
		if err != nil {
			return nil, nil, err
		}
		p.Scaler = scaler
		ds, err = scaler.Transform(ds)
		if err != nil {
			return nil, nil, err
		}
	}

	result := &Result{Dataset: ds}
	if config.EncodeTarget {
		target, err := preprocessing.NewLabelEncoderFitter[string]().Fit(ds.Target())
		if err != nil {
			return nil, nil, err
		}
		p.Target = target
		result.EncodedTarget, err = target.Transform(ds.Target())
		if err != nil {
			return nil, nil, err
		}
	}
	return p, result, nil
}

// Apply transforms inputFile with the previously fitted state. The
// input must be schema-compatible with the training data; values unseen
// at fit time follow the transform-specific policies (zero vector for
// one-hot categories, InvalidState for target labels).
func (p *Pipeline) Apply(inputFile string) (*Result, error) {
	if p.Encoder == nil {
		return nil, base.NewError(base.UntrainedModel, "pipeline has no fitted encoder")
	}
	mixed, err := dataset.MixedFromCSV[string](inputFile, p.Config.TargetColumn, dataset.NewSet(p.Config.NumericColumns...))
	if err != nil {
		return nil, err
	}
	log.Info().Str("file", inputFile).Int("rows", mixed.Rows()).Int("columns", mixed.Cols()).
		Msg("loaded input data")

	ds, err := p.Encoder.Transform(mixed)
	if err != nil {
		return nil, err
	}
	if p.Scaler != nil {
		ds, err = p.Scaler.Transform(ds)
		if err != nil {
			return nil, err
		}
	}
	result := &Result{Dataset: ds}
	if p.Target != nil {
		result.EncodedTarget, err = p.Target.Transform(ds.Target())
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// WriteTo writes the result as CSV to w: the transformed feature
// columns followed by the target column, with the target written as its
// encoded code when target encoding is enabled.
func (r *Result) WriteTo(w io.Writer) error {
	return writeCSV(w, r)
}
