package base

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError(InvalidData, "target column Species not found")
	require.Equal(t, "invalid data: target column Species not found", err.Error())

	err = Errorf(InvalidState, "label %q not found in encoder", "Gentoo")
	require.Equal(t, `invalid state: label "Gentoo" not found in encoder`, err.Error())
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("no such file")
	err := WrapError(InvalidData, "opening data.csv", cause)

	require.Equal(t, "invalid data: opening data.csv: no such file", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestIsKind(t *testing.T) {
	err := NewError(UntrainedModel, "pipeline has no fitted encoder")
	require.True(t, IsKind(err, UntrainedModel))
	require.False(t, IsKind(err, InvalidData))

	wrapped := fmt.Errorf("loading pipeline: %w", err)
	require.True(t, IsKind(wrapped, UntrainedModel))

	require.False(t, IsKind(errors.New("plain"), InvalidData))
}
