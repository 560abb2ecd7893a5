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
	"image"
	"image/color"
	"testing"
)

// testImage returns an image with a wide range of colours.
func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x*7 + y*13) % 256),
				A: 0xFF,
			})
		}
	}
	return img
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestApplyIdentity(t *testing.T) {
	src := testImage(64, 64)
	for _, n := range []int{2, 16, 33, 64} {
		g, err := Identity(n)
		if err != nil {
			t.Fatal(err)
		}
		out := Apply(src, g)
		if out.Bounds() != src.Bounds() {
			t.Fatalf("bounds %v, want %v", out.Bounds(), src.Bounds())
		}
		for i := range src.Pix {
			// results are truncated, so allow for one unit of rounding error
			if absDiff(out.Pix[i], src.Pix[i]) > 1 {
				t.Fatalf("n=%d: byte %d is %d, want %d", n, i, out.Pix[i], src.Pix[i])
			}
		}
	}
}

func TestApplyConstant(t *testing.T) {
	g, err := Constant(8, [3]float64{0.25, 0.5, 0.75})
	if err != nil {
		t.Fatal(err)
	}
	out := Apply(testImage(32, 16), g)
	want := color.NRGBA{R: 63, G: 127, B: 191, A: 0xFF}
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if got := out.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestApplyBounds(t *testing.T) {
	// images with non-zero origin keep their bounds
	src := testImage(20, 20).SubImage(image.Rect(5, 7, 15, 12))
	g, err := Constant(2, [3]float64{0.5, 0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	out := Apply(src, g)
	if out.Bounds() != src.Bounds() {
		t.Errorf("bounds %v, want %v", out.Bounds(), src.Bounds())
	}
	if got := out.NRGBAAt(5, 7); got != (color.NRGBA{127, 127, 127, 0xFF}) {
		t.Errorf("pixel (5, 7) = %v", got)
	}
}

func TestApplyAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 0x80})
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0xFF})
	g, err := Identity(2)
	if err != nil {
		t.Fatal(err)
	}
	out := Apply(src, g)
	if a := out.NRGBAAt(0, 0).A; a != 0x80 {
		t.Errorf("alpha = %d, want %d", a, 0x80)
	}
	if a := out.NRGBAAt(1, 0).A; a != 0xFF {
		t.Errorf("alpha = %d, want %d", a, 0xFF)
	}
}

func TestTransformAmount(t *testing.T) {
	g, err := Constant(4, [3]float64{1, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	in := [3]uint8{0, 200, 100}

	tests := []struct {
		amount float64
		want   [3]uint8
	}{
		{0, [3]uint8{0, 200, 100}},
		{0.5, [3]uint8{127, 100, 50}},
		{1, [3]uint8{255, 0, 0}},
	}
	for _, tt := range tests {
		tr, err := NewTransform(g, Trilinear, tt.amount)
		if err != nil {
			t.Fatal(err)
		}
		got := tr.Convert(in)
		for i := range 3 {
			if absDiff(got[i], tt.want[i]) > 1 {
				t.Errorf("amount %g: Convert(%v) = %v, want %v", tt.amount, in, got, tt.want)
				break
			}
		}
	}
}

func TestTransformMethodsAgree(t *testing.T) {
	g, err := Identity(9)
	if err != nil {
		t.Fatal(err)
	}
	src := testImage(40, 40)
	tri, err := NewTransform(g, Trilinear, 1)
	if err != nil {
		t.Fatal(err)
	}
	tet, err := NewTransform(g, Tetrahedral, 1)
	if err != nil {
		t.Fatal(err)
	}
	a := tri.Apply(src)
	b := tet.Apply(src)
	for i := range a.Pix {
		if absDiff(a.Pix[i], b.Pix[i]) > 1 {
			t.Fatalf("byte %d: trilinear %d, tetrahedral %d", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestNewTransformErrors(t *testing.T) {
	g, err := Identity(2)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		g      *Grid
		m      Method
		amount float64
	}{
		{"no grid", nil, Trilinear, 1},
		{"bad method", g, Method(7), 1},
		{"negative amount", g, Trilinear, -0.1},
		{"large amount", g, Trilinear, 1.1},
	}
	for _, tt := range tests {
		if _, err := NewTransform(tt.g, tt.m, tt.amount); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 127},
		{-0.2, 0},
		{1.7, 255},
		{0.999, 254},
	}
	for _, tt := range tests {
		if got := toByte(tt.in); got != tt.want {
			t.Errorf("toByte(%g) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
