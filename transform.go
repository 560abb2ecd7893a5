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
	"image"
	"image/color"
)

// Transform applies a colour lookup table to images.
//
// Create a Transform using [NewTransform], then use [Transform.Apply] to
// convert images.  A Transform only reads its grid, so it is safe for
// concurrent use as long as the grid is not modified.
type Transform struct {
	grid   *Grid
	method Method
	amount float64
}

// NewTransform creates a transform which maps colours through the grid g.
//
// The method selects the interpolation scheme.  The amount, in the range
// [0, 1], gives the strength of the effect: the output is the LUT result
// mixed with the original colour in the ratio amount : 1-amount.  Use 1 to
// get the plain LUT result.
func NewTransform(g *Grid, m Method, amount float64) (*Transform, error) {
	if g == nil {
		return nil, fmt.Errorf("lut: missing grid")
	}
	if m != Trilinear && m != Tetrahedral {
		return nil, fmt.Errorf("lut: unsupported interpolation method %s", m)
	}
	if !(amount >= 0 && amount <= 1) {
		return nil, fmt.Errorf("lut: amount %g outside [0, 1]", amount)
	}
	t := &Transform{
		grid:   g,
		method: m,
		amount: amount,
	}
	return t, nil
}

// Apply maps every pixel of img through the grid g, using trilinear
// interpolation.  The result has the same bounds as img.
//
// This is the conversion used to turn a .cube file into a strip image:
// apply the table to the identity reference image.
func Apply(img image.Image, g *Grid) *image.NRGBA {
	t := &Transform{grid: g, method: Trilinear, amount: 1}
	return t.Apply(img)
}

// Apply maps every pixel of img through the lookup table.
//
// Colour channels are converted to 8-bit values before the lookup.  Result
// values are scaled to [0, 255] and truncated towards zero.  The alpha
// channel is copied unchanged.
func (t *Transform) Apply(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := out.Pix[(y-bounds.Min.Y)*out.Stride:]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			rgb := t.Convert([3]uint8{c.R, c.G, c.B})

			p := row[(x-bounds.Min.X)*4:]
			p[0] = rgb[0]
			p[1] = rgb[1]
			p[2] = rgb[2]
			p[3] = c.A
		}
	}
	return out
}

// Convert maps a single 8-bit colour through the lookup table.
func (t *Transform) Convert(in [3]uint8) [3]uint8 {
	r := float64(in[0]) / 255
	g := float64(in[1]) / 255
	b := float64(in[2]) / 255

	v := t.grid.Lookup(r, g, b, t.method)
	if t.amount < 1 {
		v[0] = t.amount*v[0] + (1-t.amount)*r
		v[1] = t.amount*v[1] + (1-t.amount)*g
		v[2] = t.amount*v[2] + (1-t.amount)*b
	}

	return [3]uint8{toByte(v[0]), toByte(v[1]), toByte(v[2])}
}

// toByte scales x from [0, 1] to [0, 255], truncating towards zero.
// Values outside the range are clamped.
func toByte(x float64) uint8 {
	return uint8(clamp(x*255, 0, 255))
}
