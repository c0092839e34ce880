package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/venvkit/internal/adapters/detector"
)

func TestIsCI(t *testing.T) {
	tests := []struct {
		ciValue  string
		expected bool
	}{
		{ciValue: "true", expected: true},
		{ciValue: "1", expected: true},
		{ciValue: "false", expected: false},
		{ciValue: "", expected: false},
	}

	for _, tt := range tests {
		t.Run("CI="+tt.ciValue, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)
			assert.Equal(t, tt.expected, detector.IsCI())
		})
	}
}

func TestDetectTTY_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, detector.DetectTTY(), "CI never gets a pseudo terminal by default")
}

func TestResolveTTY(t *testing.T) {
	tests := []struct {
		name     string
		detected bool
		flag     string
		expected bool
	}{
		{name: "always overrides", detected: false, flag: "always", expected: true},
		{name: "never overrides", detected: true, flag: "never", expected: false},
		{name: "auto keeps detection", detected: true, flag: "auto", expected: true},
		{name: "empty keeps detection", detected: false, flag: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detector.ResolveTTY(tt.detected, tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := detector.ResolveTTY(true, "sometimes")
	require.ErrorContains(t, err, detector.ErrInvalidTTYMode.Error())
}
