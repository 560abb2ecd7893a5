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

package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/lut"
	"seehuhn.de/go/lut/internal/imgfile"
)

// run executes the command line and returns the captured stderr.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stderr := &bytes.Buffer{}
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return stderr.String(), err
}

// writeCube writes a .cube file for the given grid.
func writeCube(t *testing.T, path string, g *lut.Grid) {
	t.Helper()
	c := &lut.Cube{Title: "test", Grid: g}
	require.NoError(t, c.WriteFile(path))
}

// writeReference writes a 4-point identity image of 8×8 pixels.
func writeReference(t *testing.T, path string) {
	t.Helper()
	img, err := lut.IdentityImage(4, 0)
	require.NoError(t, err)
	require.NoError(t, imgfile.Save(path, img))
}

func TestConvertCube(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "ref.png")
	in := filepath.Join(dir, "grade.CUBE")
	out := filepath.Join(dir, "out.png")

	writeReference(t, ref)
	g, err := lut.Constant(2, [3]float64{0.25, 0.5, 0.75})
	require.NoError(t, err)
	writeCube(t, in, g)

	stderr, err := run(t, "convert", in, out, "--reference", ref, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "2×2×2 LUT")

	img, _, err := imgfile.Load(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	for y := range 8 {
		for x := range 8 {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			require.Equal(t, color.NRGBA{63, 127, 191, 255}, c, "pixel (%d, %d)", x, y)
		}
	}
}

func TestConvertCubeTetrahedral(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "ref.png")
	in := filepath.Join(dir, "id.cube")
	out := filepath.Join(dir, "out.tiff")

	writeReference(t, ref)
	g, err := lut.Identity(3)
	require.NoError(t, err)
	writeCube(t, in, g)

	_, err = run(t, "convert", "--interp", "tetrahedral", "--reference", ref, in, out)
	require.NoError(t, err)

	want, _, err := imgfile.Load(ref)
	require.NoError(t, err)
	got, format, err := imgfile.Load(out)
	require.NoError(t, err)
	assert.Equal(t, "tiff", format)
	for y := range 8 {
		for x := range 8 {
			a := color.NRGBAModel.Convert(want.At(x, y)).(color.NRGBA)
			b := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
			assert.InDelta(t, a.R, b.R, 1)
			assert.InDelta(t, a.G, b.G, 1)
			assert.InDelta(t, a.B, b.B, 1)
		}
	}
}

func TestConvertMissingReference(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "grade.cube")
	out := filepath.Join(dir, "out.png")
	ref := filepath.Join(dir, "nothing.png")

	// the input does not exist either; the reference is checked first
	_, err := run(t, "convert", in, out, "--reference", ref)
	require.Error(t, err)
	assert.Equal(t, "reference LUT not found: "+ref, err.Error())

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "output file was created")
}

func TestConvertCubeErrors(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "ref.png")
	writeReference(t, ref)

	bad := filepath.Join(dir, "bad.cube")
	require.NoError(t, os.WriteFile(bad, []byte("LUT_3D_SIZE 2\n0 0 0\n"), 0o644))
	_, err := run(t, "convert", bad, filepath.Join(dir, "out.png"), "--reference", ref)
	assert.ErrorIs(t, err, lut.ErrFormat)

	good := filepath.Join(dir, "good.cube")
	g, err := lut.Identity(2)
	require.NoError(t, err)
	writeCube(t, good, g)
	_, err = run(t, "convert", good, filepath.Join(dir, "out.png"), "--reference", ref, "--amount", "2")
	assert.Error(t, err)
	_, err = run(t, "convert", good, filepath.Join(dir, "out.png"), "--reference", ref, "--interp", "cubic")
	assert.Error(t, err)
}

func TestConvertStrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tiles.png")
	out := filepath.Join(dir, "strip.png")

	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(y*16 + x), G: uint8(x), B: uint8(y), A: 0xFF})
		}
	}
	require.NoError(t, imgfile.Save(in, src))

	_, err := run(t, "convert", in, out, "--grid-size", "4")
	require.NoError(t, err)

	want, err := lut.Rearrange(src, 4)
	require.NoError(t, err)
	got, _, err := imgfile.Load(out)
	require.NoError(t, err)
	for y := range 16 {
		for x := range 16 {
			c := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
			require.Equal(t, want.NRGBAAt(x, y), c, "pixel (%d, %d)", x, y)
		}
	}
}

func TestConvertStripNotSquare(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "wide.png")
	require.NoError(t, imgfile.Save(in, image.NewNRGBA(image.Rect(0, 0, 16, 8))))

	_, err := run(t, "convert", in, filepath.Join(dir, "out.png"))
	require.ErrorIs(t, err, lut.ErrShape)
	assert.True(t, strings.HasPrefix(err.Error(), in+": "))
}

func TestConvertArgs(t *testing.T) {
	_, err := run(t, "convert", "only-one")
	assert.Error(t, err)
}

func TestReferenceToCube(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "ref.png")
	out := filepath.Join(dir, "id.cube")

	_, err := run(t, "reference", ref, "--size", "16")
	require.NoError(t, err)
	img, _, err := imgfile.Load(ref)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	_, err = run(t, "tocube", ref, out, "--title", "identity")
	require.NoError(t, err)

	c, err := lut.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "identity", c.Title)
	assert.Equal(t, 16, c.Size())

	id, err := lut.Identity(16)
	require.NoError(t, err)
	assert.InDeltaSlice(t, id.Samples(), c.Grid.Samples(), 0.5/255+1e-6)
}

func TestToCubeTiled(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "ref.png")
	tiled := filepath.Join(dir, "tiled.png")
	out := filepath.Join(dir, "id.cube")

	// 4^3 = 64 pixels in 2×2 tiles of 4×4 pixels
	img, err := lut.IdentityImage(4, 0)
	require.NoError(t, err)
	require.NoError(t, imgfile.Save(ref, img))
	back, err := lut.Unrearrange(img, 2)
	require.NoError(t, err)
	require.NoError(t, imgfile.Save(tiled, back))

	_, err = run(t, "tocube", "--tiled", "--grid-size", "2", tiled, out)
	require.NoError(t, err)

	c, err := lut.ReadFile(out)
	require.NoError(t, err)
	id, err := lut.Identity(4)
	require.NoError(t, err)
	assert.InDeltaSlice(t, id.Samples(), c.Grid.Samples(), 0.5/255+1e-6)
}

func TestNPY(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "id.cube")
	out := filepath.Join(dir, "id.npy")

	g, err := lut.Identity(3)
	require.NoError(t, err)
	writeCube(t, in, g)

	_, err = run(t, "npy", in, out)
	require.NoError(t, err)

	fd, err := os.Open(out)
	require.NoError(t, err)
	defer fd.Close()
	h, err := lut.ReadNPY(fd)
	require.NoError(t, err)
	assert.InDeltaSlice(t, g.Samples(), h.Samples(), 1e-6)
}

func TestIsCube(t *testing.T) {
	tests := map[string]bool{
		"a.cube":     true,
		"dir/A.CUBE": true,
		"x.Cube":     true,
		"a.png":      false,
		"cube":       false,
		"a.cube.png": false,
		"a_cube":     false,
	}
	for name, want := range tests {
		assert.Equal(t, want, isCube(name), name)
	}
}
