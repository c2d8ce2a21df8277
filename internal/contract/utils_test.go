package contract

import (
	"testing"

	"github.com/alutools/dieprofile/schema"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLabel(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	for _, level := range []schema.Level{
		schema.VeryEasyLevel,
		schema.EasyLevel,
		schema.NormalLevel,
		schema.DifficultLevel,
		schema.VeryDifficultLevel,
	} {
		assert.Equal(t, string(level), GetColorLabel(level))
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseWeightAssignment(t *testing.T) {
	key, value, err := ParseWeightAssignment("wall:7,5")
	require.NoError(t, err)
	assert.Equal(t, "wall", key)
	assert.Equal(t, "7,5", value)

	key, value, err = ParseWeightAssignment(" alloy = 10 ")
	require.NoError(t, err)
	assert.Equal(t, "alloy", key)
	assert.Equal(t, "10", value)

	_, _, err = ParseWeightAssignment("wall")
	assert.Error(t, err)

	_, _, err = ParseWeightAssignment(":5")
	assert.Error(t, err)
}
