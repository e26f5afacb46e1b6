package heatmap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/poisbin/heatmap"
	"github.com/katalvlaran/poisbin/matrix"
	"github.com/katalvlaran/poisbin/mixture"
	"github.com/stretchr/testify/require"
)

func TestGridMapsColumnsToX(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 0.5))

	g, err := heatmap.NewGrid(m)
	require.NoError(t, err)

	c, r := g.Dims()
	require.Equal(t, 3, c)
	require.Equal(t, 2, r)
	require.Equal(t, 0.5, g.Z(2, 1))
	require.Equal(t, 2.0, g.X(2))
	require.Equal(t, 1.0, g.Y(1))
}

func TestNewGridRejectsEmpty(t *testing.T) {
	m, err := mixture.Compute(0)
	require.NoError(t, err)

	_, err = heatmap.NewGrid(m)
	require.ErrorIs(t, err, heatmap.ErrEmpty)

	_, err = heatmap.NewGrid(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRenderWritesPNG(t *testing.T) {
	m, err := mixture.Compute(8)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mixture.png")
	require.NoError(t, heatmap.Render(m, "mixture 8x8", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}
