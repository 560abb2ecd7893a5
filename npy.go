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
	"io"
	"math"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// WriteNPY writes the grid as a NumPy array of float64 values.
//
// The array has shape (N^3, 3), with the rows in the order of the data lines
// of a .cube file.  In NumPy, use lut.reshape(N, N, N, 3) to get the table
// indexed as [b, g, r].
func (g *Grid) WriteNPY(w io.Writer) error {
	m := mat.NewDense(g.Len(), 3, g.samples)
	return npyio.Write(w, m)
}

// ReadNPY reads a grid written by [Grid.WriteNPY].
func ReadNPY(r io.Reader) (*Grid, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return nil, err
	}
	shape := nr.Header.Descr.Shape
	if len(shape) != 2 || shape[1] != 3 {
		return nil, fmt.Errorf("lut: expected array of shape (N^3, 3), got %v", shape)
	}
	n := int(math.Round(math.Cbrt(float64(shape[0]))))
	if n < 1 || n*n*n != shape[0] {
		return nil, fmt.Errorf("lut: %d rows is not a cube number", shape[0])
	}

	var samples []float64
	err = nr.Read(&samples)
	if err != nil {
		return nil, err
	}
	if len(samples) != 3*shape[0] {
		return nil, fmt.Errorf("lut: expected %d values, got %d", 3*shape[0], len(samples))
	}
	return newGridFromSamples(n, samples), nil
}
