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

// Package lut converts 3D colour lookup tables between the Adobe .cube text
// format and the strip image layout used by cube-texture filters such as
// Core Image's CIColorCube.
//
// # Reading and Writing Cube Files
//
// Use [Decode] or [ReadFile] to parse a .cube file, and [Cube.Encode] to
// write one:
//
//	c, err := lut.ReadFile("film.cube")
//	if err != nil {
//	    // handle error
//	}
//	// inspect c.Title, c.Grid.Size(), c.Keywords, etc.
//
//	err = c.Encode(w)
//
// # Applying a LUT
//
// [Apply] maps every pixel of an image through a [Grid] using trilinear
// interpolation.  Applying a cube to the identity reference image (see
// [IdentityImage]) gives the strip image expected by the texture consumer:
//
//	ref, _ := png.Decode(f)
//	strip := lut.Apply(ref, c.Grid)
//
// A [Transform] allows to select tetrahedral interpolation and to blend the
// result with the original image.
//
// # Strip Images
//
// A tiled strip image, made of an 8×8 grid of square tiles, is converted to
// the row-major texture layout with [Rearrange].  [Unrearrange] performs the
// inverse permutation, and [GridFromImage] reads a texture-layout image back
// into a [Grid].
package lut

import (
	"fmt"
	"strings"
)

// Cube represents a 3D LUT read from or written to a .cube file.
//
// The Grid field holds the table data.  The remaining fields hold header
// information, which does not influence how the table is applied.
type Cube struct {
	Title string

	// DomainMin and DomainMax give the input range of the table for the
	// red, green and blue channels.  A zero Cube has the default domain
	// [0, 1] for all channels; see [Cube.Domain].
	DomainMin [3]float64
	DomainMax [3]float64

	// Comments holds the text of all comment lines, without the leading '#'.
	Comments []string

	// Keywords maps header keywords which have no dedicated field (for
	// example LUT_3D_INPUT_RANGE) to the remainder of their line.
	Keywords map[Keyword]string

	Grid *Grid
}

// Domain returns the input range of the table.
// If no domain was set, the default range [0, 1] is returned.
func (c *Cube) Domain() (lo, hi [3]float64) {
	if c.DomainMin == [3]float64{} && c.DomainMax == [3]float64{} {
		return [3]float64{0, 0, 0}, [3]float64{1, 1, 1}
	}
	return c.DomainMin, c.DomainMax
}

// Size returns the number of grid points per axis, or 0 if the cube has no
// grid.
func (c *Cube) Size() int {
	if c.Grid == nil {
		return 0
	}
	return c.Grid.Size()
}

// Keyword is a header keyword of a .cube file.
type Keyword string

// Header keywords with special meaning.
const (
	KeywordTitle     Keyword = "TITLE"
	KeywordSize      Keyword = "LUT_3D_SIZE"
	KeywordDomainMin Keyword = "DOMAIN_MIN"
	KeywordDomainMax Keyword = "DOMAIN_MAX"
)

// IsHeader reports whether a line starting with the given word belongs to
// the header of a .cube file.
func (k Keyword) IsHeader() bool {
	switch k {
	case KeywordTitle, KeywordSize, KeywordDomainMin, KeywordDomainMax:
		return true
	}
	return strings.HasPrefix(string(k), "LUT")
}

func (k Keyword) String() string {
	return string(k)
}

// Method selects the interpolation scheme used to sample a [Grid].
type Method int

// These are the supported interpolation methods.
const (
	// Trilinear interpolates between the eight corners of the enclosing
	// grid cell.
	Trilinear Method = iota

	// Tetrahedral splits the grid cell into six tetrahedra and interpolates
	// between the four corners of the tetrahedron containing the point.
	Tetrahedral
)

func (m Method) String() string {
	switch m {
	case Trilinear:
		return "trilinear"
	case Tetrahedral:
		return "tetrahedral"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts the name of an interpolation method, as returned by
// [Method.String], into a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "", "trilinear":
		return Trilinear, nil
	case "tetrahedral":
		return Tetrahedral, nil
	default:
		return 0, fmt.Errorf("lut: unknown interpolation method %q", name)
	}
}
