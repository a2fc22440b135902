package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixo-go/mixo/internal/object"
)

func TestRun(t *testing.T) {
	target := object.Object{"name": "svc"}

	result, err := Run(target, func(o object.Object) error {
		o["port"] = 8080
		return nil
	}, DefaultDiffOptions())
	require.NoError(t, err)

	// --- original target untouched
	assert.NotContains(t, target, "port")

	// --- composed copy carries the change
	assert.Equal(t, 8080, result.Composed["port"])

	// --- diff reflects the addition
	assert.True(t, result.Diff.HasDifferences)
	assert.Contains(t, result.Diff.Unified, "+port: 8080")
}

func TestRun_NoChanges(t *testing.T) {
	target := object.Object{"name": "svc"}

	result, err := Run(target, func(object.Object) error { return nil }, DefaultDiffOptions())
	require.NoError(t, err)
	assert.False(t, result.Diff.HasDifferences)
	assert.Equal(t, result.Before, result.After)
}

func TestRun_ComposeError(t *testing.T) {
	target := object.Object{"name": "svc"}

	_, err := Run(target, func(object.Object) error {
		return assert.AnError
	}, DefaultDiffOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "composing")
}
