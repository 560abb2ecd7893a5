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
	"github.com/spf13/cobra"

	"seehuhn.de/go/lut"
	"seehuhn.de/go/lut/internal/imgfile"
)

// toCubeEnv provides the environment for the tocube command.
type toCubeEnv struct {
	title    string
	tiled    bool
	gridSize int
}

// getToCubeCmd returns the definition of the tocube command.
func getToCubeCmd() *cobra.Command {
	env := &toCubeEnv{}
	cmd := &cobra.Command{
		Use:   "tocube <image> <output.cube>",
		Short: "Convert a strip image back into a .cube file",
		Long: `
The input image must be in texture layout, as written by "lutconv convert",
unless --tiled is given.  The number of pixels must be a cube number N^3.
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.ToCube(cmd, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&env.title, "title", "", "title to store in the .cube file")
	cmd.Flags().BoolVar(&env.tiled, "tiled", false, "the input is a tiled strip image")
	cmd.Flags().IntVar(&env.gridSize, "grid-size", lut.DefaultGridSize,
		"number of tiles per row and column, for --tiled")

	return cmd
}

// ToCube reads the strip image and writes the corresponding .cube file.
func (e *toCubeEnv) ToCube(cmd *cobra.Command, input, output string) error {
	img, _, err := imgfile.Load(input)
	if err != nil {
		return err
	}
	if e.tiled {
		img, err = lut.Rearrange(img, e.gridSize)
		if err != nil {
			return err
		}
	}

	g, err := lut.GridFromImage(img)
	if err != nil {
		return err
	}
	logf(cmd, "%s: %d-point LUT", input, g.Size())

	c := &lut.Cube{
		Title: e.title,
		Grid:  g,
	}
	return c.WriteFile(output)
}
