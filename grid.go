// seehuhn.de/go/lut - convert colour lookup tables
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lut

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Grid is a 3D colour lookup table with the same number of grid points
// along each axis.
//
// The table is an (N, N, N, 3) array of RGB values, stored in row-major
// order with the first axis varying slowest.  This is the order of the data
// lines in a .cube file, where the red input varies fastest.  Consequently
// the first index of [Grid.At] selects the blue input, the second the green
// input and the third the red input.
type Grid struct {
	size    int
	samples []float64 // 3*size^3 values
}

// NewGrid allocates a grid with n points per axis.
// All entries are initialised to black.
func NewGrid(n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("lut: invalid grid size %d", n)
	}
	return &Grid{
		size:    n,
		samples: make([]float64, 3*n*n*n),
	}, nil
}

// newGridFromSamples wraps the given samples, which must have length 3*n^3.
func newGridFromSamples(n int, samples []float64) *Grid {
	return &Grid{size: n, samples: samples}
}

// Identity returns the grid of size n which maps every colour to itself.
// The entry at (b, g, r) is (r, g, b)/(n-1).
func Identity(n int) (*Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("lut: identity grid needs at least 2 points, got %d", n)
	}
	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	scale := 1 / float64(n-1)
	for bi := range n {
		for gi := range n {
			for ri := range n {
				g.Set(bi, gi, ri, [3]float64{
					float64(ri) * scale,
					float64(gi) * scale,
					float64(bi) * scale,
				})
			}
		}
	}
	return g, nil
}

// Constant returns a grid of size n which maps every colour to c.
func Constant(n int, c [3]float64) (*Grid, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(g.samples); i += 3 {
		copy(g.samples[i:i+3], c[:])
	}
	return g, nil
}

// Size returns the number of grid points per axis.
func (g *Grid) Size() int { return g.size }

// Len returns the number of entries in the grid, N^3.
func (g *Grid) Len() int { return g.size * g.size * g.size }

// Samples returns the grid data as a flat slice of 3*N^3 values, in the
// order of the data lines of a .cube file.
// The slice is shared with the grid.
func (g *Grid) Samples() []float64 { return g.samples }

func (g *Grid) offset(i, j, k int) int {
	return ((i*g.size+j)*g.size + k) * 3
}

// At returns the entry at grid position (i, j, k).
// For a table read from a .cube file, i is the blue index, j the green
// index and k the red index.
func (g *Grid) At(i, j, k int) [3]float64 {
	o := g.offset(i, j, k)
	return [3]float64{g.samples[o], g.samples[o+1], g.samples[o+2]}
}

// Set changes the entry at grid position (i, j, k).
func (g *Grid) Set(i, j, k int, rgb [3]float64) {
	o := g.offset(i, j, k)
	copy(g.samples[o:o+3], rgb[:])
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
