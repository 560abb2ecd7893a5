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

// referenceEnv provides the environment for the reference command.
type referenceEnv struct {
	size  int
	width int
}

// getReferenceCmd returns the definition of the reference command.
func getReferenceCmd() *cobra.Command {
	env := &referenceEnv{}
	cmd := &cobra.Command{
		Use:   "reference <output>",
		Short: "Write the identity reference image used for .cube inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.Reference(cmd, args[0])
		},
	}

	cmd.Flags().IntVar(&env.size, "size", 64, "number of grid points per axis")
	cmd.Flags().IntVar(&env.width, "width", 0, "image width (default: square if possible)")

	return cmd
}

// Reference writes the identity image of the configured size.
func (e *referenceEnv) Reference(cmd *cobra.Command, output string) error {
	img, err := lut.IdentityImage(e.size, e.width)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logf(cmd, "%s: %d×%d identity image for a %d-point LUT", output, b.Dx(), b.Dy(), e.size)
	return imgfile.Save(output, img)
}
