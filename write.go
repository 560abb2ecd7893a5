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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Encode writes the cube in .cube format.
//
// Table values are written with six decimal places, which is enough to
// represent 16-bit data without loss.
func (c *Cube) Encode(w io.Writer) error {
	if c.Grid == nil {
		return errors.New("lut: cube has no table data")
	}

	bw := bufio.NewWriter(w)

	if c.Title != "" {
		fmt.Fprintf(bw, "%s \"%s\"\n", KeywordTitle, c.Title)
	}
	for _, comment := range c.Comments {
		for _, line := range strings.Split(comment, "\n") {
			fmt.Fprintf(bw, "# %s\n", line)
		}
	}

	// other header keywords, sorted for reproducible output
	keywords := make([]Keyword, 0, len(c.Keywords))
	for kw := range c.Keywords {
		if kw.IsHeader() && kw != KeywordSize && kw != KeywordTitle &&
			kw != KeywordDomainMin && kw != KeywordDomainMax {
			keywords = append(keywords, kw)
		}
	}
	sort.Slice(keywords, func(i, j int) bool { return keywords[i] < keywords[j] })
	for _, kw := range keywords {
		fmt.Fprintf(bw, "%s %s\n", kw, c.Keywords[kw])
	}

	fmt.Fprintf(bw, "%s %d\n", KeywordSize, c.Grid.Size())
	lo, hi := c.Domain()
	if lo != [3]float64{0, 0, 0} || hi != [3]float64{1, 1, 1} {
		fmt.Fprintf(bw, "%s %s\n", KeywordDomainMin, formatDomain(lo))
		fmt.Fprintf(bw, "%s %s\n", KeywordDomainMax, formatDomain(hi))
	}
	bw.WriteByte('\n')

	samples := c.Grid.Samples()
	for i := 0; i < len(samples); i += 3 {
		bw.WriteString(formatTriple(samples[i : i+3]))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteFile writes the cube to the named file in .cube format.
func (c *Cube) WriteFile(fname string) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = c.Encode(fd)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	return err
}

// formatDomain formats domain limits without loss of precision.
func formatDomain(v [3]float64) string {
	return strconv.FormatFloat(v[0], 'g', -1, 64) + " " +
		strconv.FormatFloat(v[1], 'g', -1, 64) + " " +
		strconv.FormatFloat(v[2], 'g', -1, 64)
}

func formatTriple(v []float64) string {
	return strconv.FormatFloat(v[0], 'f', 6, 64) + " " +
		strconv.FormatFloat(v[1], 'f', 6, 64) + " " +
		strconv.FormatFloat(v[2], 'f', 6, 64)
}
