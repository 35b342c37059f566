package pack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlkit/pack"
)

// TestFitShape_FullySpecified passes positive shapes through unchanged
// and rejects grids with fewer cells than elements.
func TestFitShape_FullySpecified(t *testing.T) {
	got, err := pack.FitShape([]int{3, 4}, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, got)

	_, err = pack.FitShape([]int{5, 2}, 11)
	assert.ErrorIs(t, err, pack.ErrShapeTooSmall)
}

// TestFitShape_Inference replaces a single -1 extent with the smallest
// value that fits the element count.
func TestFitShape_Inference(t *testing.T) {
	got, err := pack.FitShape([]int{3, -1}, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, got)

	got, err = pack.FitShape([]int{-1, 10}, 51)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 10}, got)

	got, err = pack.FitShape([]int{-1}, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, got)

	// Zero elements collapse the inferred axis entirely.
	got, err = pack.FitShape([]int{-1, 4}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, got)
}

// TestFitShape_InputUntouched confirms the caller's slice survives
// inference intact.
func TestFitShape_InputUntouched(t *testing.T) {
	shape := []int{3, -1}
	got, err := pack.FitShape(shape, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{3, -1}, shape)
	assert.Equal(t, []int{3, 4}, got)
}

// TestFitShape_Errors rejects negative counts, out-of-range extents and
// double inference.
func TestFitShape_Errors(t *testing.T) {
	_, err := pack.FitShape([]int{3}, -1)
	assert.ErrorIs(t, err, pack.ErrBadCount)

	_, err = pack.FitShape([]int{0, 3}, 1)
	assert.ErrorIs(t, err, pack.ErrBadGridShape)

	_, err = pack.FitShape([]int{-2, 3}, 1)
	assert.ErrorIs(t, err, pack.ErrBadGridShape)

	_, err = pack.FitShape([]int{-1, -1}, 4)
	assert.ErrorIs(t, err, pack.ErrShapeInference)
}
