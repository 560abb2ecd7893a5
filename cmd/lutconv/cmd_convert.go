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
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"seehuhn.de/go/lut"
	"seehuhn.de/go/lut/internal/imgfile"
)

// referenceName is the file name of the identity reference image, looked up
// next to the executable.
const referenceName = "ReferenceLUT.png"

// convertEnv provides the environment for the convert command.
type convertEnv struct {
	reference string
	gridSize  int
	interp    string
	amount    float64
}

// getConvertCmd returns the definition of the convert command.
func getConvertCmd() *cobra.Command {
	env := &convertEnv{}
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a .cube file or a tiled strip image into a texture strip image",
		Long: `
If the input file name ends in .cube, the LUT is applied to the reference
image and the result is written to the output file.

Otherwise the input must be a square strip image made of grid-size×grid-size
tiles; the tiles are rearranged into the row-major texture layout.
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.Convert(cmd, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&env.reference, "reference", defaultReference(),
		"reference image for .cube inputs")
	cmd.Flags().IntVar(&env.gridSize, "grid-size", lut.DefaultGridSize,
		"number of tiles per row and column of strip image inputs")
	cmd.Flags().StringVar(&env.interp, "interp", lut.Trilinear.String(),
		"interpolation method for .cube inputs (trilinear or tetrahedral)")
	cmd.Flags().Float64Var(&env.amount, "amount", 1,
		"strength of the LUT effect for .cube inputs, between 0 and 1")

	return cmd
}

// Convert dispatches on the input file name and writes the converted image.
func (e *convertEnv) Convert(cmd *cobra.Command, input, output string) error {
	if isCube(input) {
		// check before doing any work
		if _, err := os.Stat(e.reference); err != nil {
			return fmt.Errorf("reference LUT not found: %s", e.reference)
		}
		return e.convertCube(cmd, input, output)
	}
	return e.convertStrip(cmd, input, output)
}

func (e *convertEnv) convertCube(cmd *cobra.Command, input, output string) error {
	method, err := lut.ParseMethod(e.interp)
	if err != nil {
		return err
	}

	c, err := lut.ReadFile(input)
	if err != nil {
		return err
	}
	logf(cmd, "%s: %d×%d×%d LUT %q", input, c.Size(), c.Size(), c.Size(), c.Title)
	if len(c.Keywords) > 0 {
		keys := maps.Keys(c.Keywords)
		slices.Sort(keys)
		for _, kw := range keys {
			logf(cmd, "  %s %s (ignored)", kw, c.Keywords[kw])
		}
	}

	t, err := lut.NewTransform(c.Grid, method, e.amount)
	if err != nil {
		return err
	}

	ref, _, err := imgfile.Load(e.reference)
	if err != nil {
		return err
	}
	b := ref.Bounds()
	logf(cmd, "%s: %d×%d reference image, %s interpolation",
		e.reference, b.Dx(), b.Dy(), method)

	return imgfile.Save(output, t.Apply(ref))
}

func (e *convertEnv) convertStrip(cmd *cobra.Command, input, output string) error {
	img, format, err := imgfile.Load(input)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logf(cmd, "%s: %d×%d %s image, %d×%d tiles",
		input, b.Dx(), b.Dy(), format, e.gridSize, e.gridSize)

	strip, err := lut.Rearrange(img, e.gridSize)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	return imgfile.Save(output, strip)
}

// isCube reports whether the file name has a .cube extension, ignoring case.
func isCube(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".cube")
}

// defaultReference returns the location of the reference image next to the
// executable.
func defaultReference() string {
	exe, err := os.Executable()
	if err != nil {
		return referenceName
	}
	return filepath.Join(filepath.Dir(exe), referenceName)
}
