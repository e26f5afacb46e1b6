package pmf_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/poisbin/pmf"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// factorial is a tiny closed-form helper for reference values.
func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}

func TestPoissonPMFMatchesClosedForm(t *testing.T) {
	for _, lambda := range []float64{0.5, 1, 3.25} {
		for k := 0; k <= 12; k++ {
			want := math.Pow(lambda, float64(k)) * math.Exp(-lambda) / factorial(k)
			require.InDelta(t, want, pmf.PoissonPMF(k, lambda), tol, "lambda=%g k=%d", lambda, k)
		}
	}
}

func TestBinomialPMFMatchesClosedForm(t *testing.T) {
	p := 0.75
	for n := 0; n <= 10; n++ {
		var total float64
		for k := 0; k <= n; k++ {
			choose := factorial(n) / (factorial(k) * factorial(n-k))
			want := choose * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
			got := pmf.BinomialPMF(k, n, p)
			require.InDelta(t, want, got, tol, "n=%d k=%d", n, k)
			total += got
		}
		require.InDelta(t, 1.0, total, 1e-12, "n=%d masses must sum to one", n)
	}
}

func TestOutsideSupportIsZeroNotNaN(t *testing.T) {
	require.Equal(t, 0.0, pmf.PoissonPMF(-1, 1))
	require.Equal(t, 0.0, pmf.PoissonPMF(-100, 1))
	require.Equal(t, 0.0, pmf.BinomialPMF(-1, 3, 0.75))
	require.Equal(t, 0.0, pmf.BinomialPMF(4, 3, 0.75))

	pois, err := pmf.NewPoisson(1)
	require.NoError(t, err)
	require.Equal(t, 0.0, pmf.Mass(pois, -1))
}

func TestEdgeValues(t *testing.T) {
	require.InDelta(t, math.Exp(-1), pmf.PoissonPMF(0, 1), tol)
	require.InDelta(t, 1.0, pmf.BinomialPMF(0, 0, 0.75), tol)
	require.InDelta(t, math.Pow(0.25, 5), pmf.BinomialPMF(0, 5, 0.75), tol)
}

func TestDegenerateBinomial(t *testing.T) {
	require.Equal(t, 1.0, pmf.BinomialPMF(0, 4, 0))
	require.Equal(t, 0.0, pmf.BinomialPMF(1, 4, 0))
	require.Equal(t, 1.0, pmf.BinomialPMF(4, 4, 1))
	require.Equal(t, 0.0, pmf.BinomialPMF(3, 4, 1))
}

func TestInvalidParameters(t *testing.T) {
	_, err := pmf.NewPoisson(0)
	require.ErrorIs(t, err, pmf.ErrInvalidRate)
	_, err = pmf.NewPoisson(math.NaN())
	require.ErrorIs(t, err, pmf.ErrInvalidRate)
	_, err = pmf.NewPoisson(math.Inf(1))
	require.ErrorIs(t, err, pmf.ErrInvalidRate)

	_, err = pmf.NewBinomial(-1, 0.5)
	require.ErrorIs(t, err, pmf.ErrInvalidTrials)
	_, err = pmf.NewBinomial(3, 1.5)
	require.ErrorIs(t, err, pmf.ErrInvalidProbability)
	_, err = pmf.NewBinomial(3, math.NaN())
	require.ErrorIs(t, err, pmf.ErrInvalidProbability)

	require.Equal(t, 0.0, pmf.PoissonPMF(1, -1))
	require.Equal(t, 0.0, pmf.BinomialPMF(1, 2, -0.1))
}
