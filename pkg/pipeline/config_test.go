package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tabprep/pkg/base"
)

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig("testdata/pipeline.yaml")
	require.NoError(t, err)

	require.Equal(t, "Species", config.TargetColumn)
	require.Equal(t, []string{"BillLength", "FlipperLength"}, config.NumericColumns)
	require.True(t, config.EncodeTarget)
	require.NotNil(t, config.Scale)
	require.Equal(t, 0.0, config.Scale.Min)
	require.Equal(t, 1.0, config.Scale.Max)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	err := (&Config{}).Validate()
	require.Error(t, err)
	require.True(t, base.IsKind(err, base.InvalidParameters))

	err = (&Config{TargetColumn: "y", NumericColumns: []string{"x", "y"}}).Validate()
	require.Error(t, err)
	require.True(t, base.IsKind(err, base.InvalidParameters))
	require.Contains(t, err.Error(), "must not be listed in numeric columns")

	err = (&Config{TargetColumn: "y", Scale: &ScaleConfig{Min: 1, Max: 1}}).Validate()
	require.Error(t, err)
	require.True(t, base.IsKind(err, base.InvalidParameters))
	require.Contains(t, err.Error(), "scale range")

	err = (&Config{TargetColumn: "y", Scale: &ScaleConfig{Min: -1, Max: 1}}).Validate()
	require.NoError(t, err)
}
