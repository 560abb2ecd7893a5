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

import "math"

// Lookup maps the colour (r, g, b) through the grid.
// The inputs are clamped to [0, 1].
//
// The grid is indexed as [B][G][R], matching the order of the data lines in
// a .cube file and the channel order of Core Image's colour cube filter.
func (g *Grid) Lookup(r, gr, b float64, m Method) [3]float64 {
	if g.size < 2 {
		return g.At(0, 0, 0)
	}
	r = clamp(r, 0, 1)
	gr = clamp(gr, 0, 1)
	b = clamp(b, 0, 1)
	if m == Tetrahedral {
		// the tetrahedral scheme treats all axes alike, so we can pass
		// the coordinates in storage order
		return g.tetrahedral(b, gr, r)
	}
	return g.trilinear(r, gr, b)
}

// trilinear performs trilinear interpolation.
// The input r, g, b values are in [0, 1].
func (g *Grid) trilinear(r, gr, b float64) [3]float64 {
	last := g.size - 1
	scale := float64(last)

	pos := [3]float64{r * scale, gr * scale, b * scale}
	var lower [3]int
	var frac [3]float64
	for c, p := range pos {
		lower[c] = clamp(int(math.Floor(p)), 0, last)
		frac[c] = p - float64(lower[c])
	}

	// iterate over the 8 corners of the enclosing cell; bit c of corner
	// selects the upper neighbour along channel c
	var out [3]float64
	for corner := range 8 {
		weight := 1.0
		var idx [3]int
		for c := range 3 {
			if corner&(1<<c) != 0 {
				idx[c] = min(lower[c]+1, last)
				weight *= frac[c]
			} else {
				idx[c] = lower[c]
				weight *= 1 - frac[c]
			}
		}
		if weight == 0 {
			continue
		}

		// reversed channel order: the grid is indexed [B][G][R]
		v := g.At(idx[2], idx[1], idx[0])
		out[0] += weight * v[0]
		out[1] += weight * v[1]
		out[2] += weight * v[2]
	}
	return out
}

// tetrahedral performs tetrahedral interpolation.
// The inputs x, y, z are in [0, 1] and refer to the first, second and third
// grid axis, respectively.
func (g *Grid) tetrahedral(x, y, z float64) [3]float64 {
	gridSize := g.size

	// scale to grid coordinates
	scale := float64(gridSize - 1)
	xPos := x * scale
	yPos := y * scale
	zPos := z * scale

	// grid indices, clamped so that the upper corner exists
	xi := clamp(int(xPos), 0, gridSize-2)
	yi := clamp(int(yPos), 0, gridSize-2)
	zi := clamp(int(zPos), 0, gridSize-2)

	// fractional parts
	fx := clamp(xPos-float64(xi), 0, 1)
	fy := clamp(yPos-float64(yi), 0, 1)
	fz := clamp(zPos-float64(zi), 0, 1)

	// compute base offset for cube corner (xi, yi, zi)
	const stride = 3
	yStride := gridSize * stride
	xStride := gridSize * yStride

	base := g.offset(xi, yi, zi)

	// get the 8 corners of the cube
	c000 := base
	c001 := base + stride
	c010 := base + yStride
	c011 := base + yStride + stride
	c100 := base + xStride
	c101 := base + xStride + stride
	c110 := base + xStride + yStride
	c111 := base + xStride + yStride + stride

	s := g.samples
	var out [3]float64

	// select tetrahedron based on which fractional component is largest
	if fx > fy {
		if fy > fz {
			// fx > fy > fz
			for i := range 3 {
				out[i] = (1-fx)*s[c000+i] +
					(fx-fy)*s[c100+i] +
					(fy-fz)*s[c110+i] +
					fz*s[c111+i]
			}
		} else if fx > fz {
			// fx > fz >= fy
			for i := range 3 {
				out[i] = (1-fx)*s[c000+i] +
					(fx-fz)*s[c100+i] +
					(fz-fy)*s[c101+i] +
					fy*s[c111+i]
			}
		} else {
			// fz >= fx > fy
			for i := range 3 {
				out[i] = (1-fz)*s[c000+i] +
					(fz-fx)*s[c001+i] +
					(fx-fy)*s[c101+i] +
					fy*s[c111+i]
			}
		}
	} else {
		if fx > fz {
			// fy >= fx > fz
			for i := range 3 {
				out[i] = (1-fy)*s[c000+i] +
					(fy-fx)*s[c010+i] +
					(fx-fz)*s[c110+i] +
					fz*s[c111+i]
			}
		} else if fy > fz {
			// fy > fz >= fx
			for i := range 3 {
				out[i] = (1-fy)*s[c000+i] +
					(fy-fz)*s[c010+i] +
					(fz-fx)*s[c011+i] +
					fx*s[c111+i]
			}
		} else {
			// fz >= fy >= fx
			for i := range 3 {
				out[i] = (1-fz)*s[c000+i] +
					(fz-fy)*s[c001+i] +
					(fy-fx)*s[c011+i] +
					fx*s[c111+i]
			}
		}
	}

	return out
}
