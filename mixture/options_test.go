// Package mixture contains unit tests for the configuration primitives
// (config and Option) to ensure correct application and override behavior.
package mixture

import (
	"math"
	"testing"

	"github.com/katalvlaran/poisbin/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaults verifies the zero-option configuration reproduces the reference constants.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	require.Equal(t, 1.0, cfg.lambda)
	require.Equal(t, 0.75, cfg.p)
	require.Equal(t, 1, cfg.workers)
	require.Empty(t, cfg.matrixOpts)
}

// TestOptionsApplyInOrder verifies later options override earlier ones and nil is a no-op.
func TestOptionsApplyInOrder(t *testing.T) {
	t.Parallel()

	cfg := newConfig(
		WithLambda(2),
		nil,
		WithLambda(3),
		WithSuccessProb(0.1),
		WithWorkers(4),
		WithMatrixOptions(matrix.WithNoValidateNaNInf()),
		WithMatrixOptions(matrix.WithEpsilon(1e-3)),
	)
	require.Equal(t, 3.0, cfg.lambda)
	require.Equal(t, 0.1, cfg.p)
	require.Equal(t, 4, cfg.workers)
	require.Len(t, cfg.matrixOpts, 2)
}

// TestOptionPanics verifies nonsensical option values are programmer errors.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, panicLambdaInvalid, func() { WithLambda(0) })
	require.PanicsWithValue(t, panicLambdaInvalid, func() { WithLambda(math.Inf(1)) })
	require.PanicsWithValue(t, panicProbInvalid, func() { WithSuccessProb(1.01) })
	require.PanicsWithValue(t, panicProbInvalid, func() { WithSuccessProb(math.NaN()) })
	require.PanicsWithValue(t, panicWorkersInvalid, func() { WithWorkers(0) })
}

// TestFillRowsPartialRange checks that a worker writes only its own rows.
func TestFillRowsPartialRange(t *testing.T) {
	t.Parallel()

	out, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	pois, err := poissonTable(4, DefaultLambda)
	require.NoError(t, err)

	require.NoError(t, fillRows(out, pois, DefaultSuccessProb, 2, 3))
	for row := 0; row < 4; row++ {
		r, err := out.Row(row)
		require.NoError(t, err)
		if row == 2 {
			require.NotEqual(t, make([]float64, 4), r)
			continue
		}
		require.Equal(t, make([]float64, 4), r, "row=%d must be untouched", row)
	}
}
