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

// Command lutconv converts colour lookup tables between .cube files and
// strip images.
//
// Usage:
//
//	lutconv convert <input> <output> [--reference <path>]
//	lutconv reference <output> [--size N]
//	lutconv tocube <image> <output.cube>
//	lutconv npy <input.cube> <output.npy>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd := rootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lutconv: %v\n", err)
		os.Exit(1)
	}
}

// rootCmd returns the top-level command with all subcommands attached.
func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lutconv",
		Short:         "Convert colour lookup tables between .cube files and strip images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "print progress information to stderr")

	cmd.AddCommand(
		getConvertCmd(),
		getReferenceCmd(),
		getToCubeCmd(),
		getNPYCmd(),
	)
	return cmd
}

// logf prints progress information if --verbose is set.
func logf(cmd *cobra.Command, format string, args ...any) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}
