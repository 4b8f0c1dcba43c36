package graphmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestValidateNodes_MissingIDIsInvalidArgument(t *testing.T) {
	err := ValidateNodes([]Node{{ID: "", Type: "t"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestValidateNodes_NegativeWeightIsInvalidArgument(t *testing.T) {
	err := ValidateNodes([]Node{{ID: "A", Type: "t", Weight: floatPtr(-1)}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestValidateNodes_AbsentWeightPasses(t *testing.T) {
	err := ValidateNodes([]Node{{ID: "A", Type: "t"}})
	assert.NoError(t, err)
}

func TestValidateNodes_ZeroWeightPasses(t *testing.T) {
	err := ValidateNodes([]Node{{ID: "A", Type: "t", Weight: floatPtr(0)}})
	assert.NoError(t, err)
}

func TestValidateEdges_MissingFromIsInvalidArgument(t *testing.T) {
	err := ValidateEdges([]Edge{{From: "", To: "B", Type: "e"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestValidateEdges_NegativeWeightIsInvalidArgument(t *testing.T) {
	err := ValidateEdges([]Edge{{From: "A", To: "B", Type: "e", Weight: floatPtr(-0.5)}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestValidateEdges_LossPercentageOutOfRangeIsInvalidArgument(t *testing.T) {
	tooHigh := []Edge{{From: "A", To: "B", Type: "e", LossPercentage: floatPtr(100.1)}}
	err := ValidateEdges(tooHigh)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	tooLow := []Edge{{From: "A", To: "B", Type: "e", LossPercentage: floatPtr(-1)}}
	err = ValidateEdges(tooLow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestValidateEdges_LossPercentageBoundsPass(t *testing.T) {
	edges := []Edge{
		{From: "A", To: "B", Type: "e", LossPercentage: floatPtr(0)},
		{From: "A", To: "B", Type: "e", LossPercentage: floatPtr(100)},
	}
	assert.NoError(t, ValidateEdges(edges))
}

func TestValidateEdges_DanglingEndpointsPermitted(t *testing.T) {
	err := ValidateEdges([]Edge{{From: "A", To: "ghost", Type: "e"}})
	assert.NoError(t, err)
}
