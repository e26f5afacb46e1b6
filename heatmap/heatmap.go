// SPDX-License-Identifier: MIT

// Package heatmap renders a matrix as a colour-mapped image with
// gonum.org/v1/plot. Column index runs along X, row index along Y.
package heatmap

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/poisbin/matrix"
)

// ErrEmpty indicates a matrix with no cells; there is nothing to draw.
var ErrEmpty = errors.New("heatmap: empty matrix")

// Defaults for Render.
const (
	DefaultColors = 16
	DefaultSide   = 5 * vg.Inch
)

// Grid adapts a *matrix.Dense to plotter.GridXYZ.
type Grid struct {
	m *matrix.Dense
}

var _ plotter.GridXYZ = Grid{}

// NewGrid wraps m. It fails with ErrEmpty when m has no cells.
func NewGrid(m *matrix.Dense) (Grid, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Grid{}, fmt.Errorf("NewGrid: %w", err)
	}
	if m.IsEmpty() {
		return Grid{}, fmt.Errorf("NewGrid: %w", ErrEmpty)
	}

	return Grid{m: m}, nil
}

// Dims returns the number of columns and rows.
func (g Grid) Dims() (c, r int) { return g.m.Cols(), g.m.Rows() }

// Z returns the matrix value at row r, column c.
func (g Grid) Z(c, r int) float64 {
	v, err := g.m.At(r, c)
	if err != nil {
		panic(err) // plotter only asks for indices within Dims
	}

	return v
}

// X is the column index.
func (g Grid) X(c int) float64 { return float64(c) }

// Y is the row index.
func (g Grid) Y(r int) float64 { return float64(r) }

// Render draws m as a heat map titled title and saves it to path. The image
// format follows the file extension (png, svg, pdf, ...), as plot.Save does.
func Render(m *matrix.Dense, title, path string) error {
	g, err := NewGrid(m)
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"

	h := plotter.NewHeatMap(g, palette.Heat(DefaultColors, 1))
	p.Add(h)

	if err = p.Save(DefaultSide, DefaultSide, path); err != nil {
		return fmt.Errorf("Render: %w", err)
	}

	return nil
}
