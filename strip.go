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
	"math"
)

// DefaultGridSize is the number of tiles per row and column of a tiled
// strip image.  With this value, a 512×512 image consists of 64 tiles of
// 64×64 pixels.
const DefaultGridSize = 8

// Rearrange converts a tiled strip image into the row-major texture layout
// expected by cube-texture filters.
//
// The input must be a square image made of gridSize×gridSize square tiles.
// If gridSize is not positive, [DefaultGridSize] is used.  Tiles are taken
// in row-major order, and the pixels of each tile, again in row-major
// order, are concatenated into one long strip.  The strip is then wrapped
// into an image of the original size.  Pixel values are copied unchanged.
//
// An error of type [*ShapeError] is returned if the image is not square or
// if its width is not a multiple of gridSize.
func Rearrange(img image.Image, gridSize int) (*image.NRGBA, error) {
	src, tile, err := tiledSource(img, gridSize)
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(src.Rect)
	permuteTiles(dst, src, tile, false)
	return dst, nil
}

// Unrearrange is the inverse of [Rearrange].  It converts an image in
// row-major texture layout back into the tiled layout.
func Unrearrange(img image.Image, gridSize int) (*image.NRGBA, error) {
	src, tile, err := tiledSource(img, gridSize)
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(src.Rect)
	permuteTiles(dst, src, tile, true)
	return dst, nil
}

// tiledSource validates the shape of a tiled image and returns a copy of
// the image with origin (0, 0), together with the tile size.
func tiledSource(img image.Image, gridSize int) (*image.NRGBA, int, error) {
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w != h {
		return nil, 0, &ShapeError{Width: w, Height: h, Reason: "image must be square"}
	}
	if w == 0 || w%gridSize != 0 {
		return nil, 0, &ShapeError{
			Width:  w,
			Height: h,
			Reason: fmt.Sprintf("width is not a multiple of the grid size %d", gridSize),
		}
	}
	return toNRGBA(img), w / gridSize, nil
}

// permuteTiles moves the pixels of src to dst.  Source pixel
// (gy*tile+cy, gx*tile+cx) goes to position t = ((gy*G+gx)*tile+cy)*tile+cx
// of the flattened destination, i.e. to row t/W and column t%W.
// If inverse is true, the roles of the two positions are swapped.
//
// Each tile row of length tile starts at a multiple of tile in both images,
// so it never wraps around a row of the destination and can be copied in
// one piece.
func permuteTiles(dst, src *image.NRGBA, tile int, inverse bool) {
	w := src.Rect.Dx()
	grid := w / tile
	n := 4 * tile

	for gy := range grid {
		for cy := range tile {
			y := gy*tile + cy
			for gx := range grid {
				tiled := y*src.Stride + gx*n

				t := ((gy*grid+gx)*tile + cy) * tile
				flat := (t/w)*src.Stride + (t%w)*4

				if inverse {
					copy(dst.Pix[tiled:tiled+n], src.Pix[flat:flat+n])
				} else {
					copy(dst.Pix[flat:flat+n], src.Pix[tiled:tiled+n])
				}
			}
		}
	}
}

// GridFromImage reads a lookup table from an image in texture layout, as
// produced by [Apply] or [Rearrange].
//
// The pixels of the image, read in row-major order, are the table entries
// with the red index varying fastest and the blue index varying slowest.
// The total number of pixels must therefore be N^3, for some N >= 2.
func GridFromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	count := w * h
	n := int(math.Round(math.Cbrt(float64(count))))
	if n < 2 || n*n*n != count {
		return nil, &ShapeError{
			Width:  w,
			Height: h,
			Reason: "number of pixels is not a cube number",
		}
	}

	samples := make([]float64, 0, 3*count)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			samples = append(samples,
				float64(c.R)/255,
				float64(c.G)/255,
				float64(c.B)/255)
		}
	}
	return newGridFromSamples(n, samples), nil
}

// IdentityImage returns the identity lookup table of size n, in texture
// layout.  Applying a LUT to this image with [Apply] gives the texture for
// that LUT.
//
// The n^3 table entries are arranged in rows of the given width, which must
// divide n^3.  If width is not positive, a square image is produced if
// possible, and an image of width n^2 otherwise.  For n = 64, the default is
// a 512×512 image.
func IdentityImage(n, width int) (*image.NRGBA, error) {
	if n < 2 {
		return nil, fmt.Errorf("lut: identity image needs at least 2 points, got %d", n)
	}
	count := n * n * n
	if width <= 0 {
		width = n * n
		if s := int(math.Round(math.Sqrt(float64(count)))); s*s == count {
			width = s
		}
	}
	if count%width != 0 {
		return nil, &ShapeError{
			Width:  width,
			Height: count / width,
			Reason: fmt.Sprintf("width does not divide %d", count),
		}
	}

	level := make([]uint8, n)
	for i := range level {
		level[i] = uint8(math.Round(float64(i) * 255 / float64(n-1)))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, count/width))
	for p := range count {
		o := (p/width)*img.Stride + (p%width)*4
		img.Pix[o] = level[p%n]
		img.Pix[o+1] = level[p/n%n]
		img.Pix[o+2] = level[p/(n*n)]
		img.Pix[o+3] = 0xFF
	}
	return img, nil
}

// toNRGBA returns a copy of img as an NRGBA image with origin (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA))
		}
	}
	return out
}

// ShapeError is returned when an image has dimensions which are not
// suitable for the requested operation.
type ShapeError struct {
	Width, Height int
	Reason        string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("lut: invalid %d×%d image: %s", e.Width, e.Height, e.Reason)
}

// Is allows to use errors.Is(err, ErrShape) to detect shape errors.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}
