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
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lut"
)

// getNPYCmd returns the definition of the npy command.
func getNPYCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "npy <input.cube> <output.npy>",
		Short: "Write the table of a .cube file as a NumPy array",
		Long: `
The array has shape (N^3, 3); use reshape(N, N, N, 3) to index it as [b, g, r].
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeNPY(cmd, args[0], args[1])
		},
	}
}

func writeNPY(cmd *cobra.Command, input, output string) error {
	c, err := lut.ReadFile(input)
	if err != nil {
		return err
	}
	logf(cmd, "%s: %d-point LUT", input, c.Size())

	fd, err := os.Create(output)
	if err != nil {
		return err
	}
	err = c.Grid.WriteNPY(fd)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	return err
}
