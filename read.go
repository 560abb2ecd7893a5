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
	"strconv"
	"strings"
)

// maxSize limits the grid size accepted by Decode, to avoid huge
// allocations for corrupt files.
const maxSize = 256

// ReadFile reads and decodes a .cube file.
func ReadFile(fname string) (*Cube, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return Decode(fd)
}

// Decode reads a 3D LUT in .cube format.
//
// Comment lines, blank lines and header lines may appear anywhere in the
// file.  All other lines must contain three numbers and are read, in file
// order, as the table entries.  An error of type [*FormatError] is returned
// if the LUT_3D_SIZE line is missing, or if the number of entries is not
// N^3.
func Decode(r io.Reader) (*Cube, error) {
	c := &Cube{
		DomainMax: [3]float64{1, 1, 1},
	}
	size := 0
	var samples []float64

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '#' {
			c.Comments = append(c.Comments, strings.TrimSpace(line[1:]))
			continue
		}

		fields := strings.Fields(line)
		kw := Keyword(fields[0])
		if !kw.IsHeader() {
			if len(fields) != 3 {
				return nil, invalidCube(lineNo, fmt.Sprintf("expected 3 values, found %d", len(fields)))
			}
			for _, f := range fields {
				x, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, invalidCube(lineNo, fmt.Sprintf("malformed number %q", f))
				}
				samples = append(samples, x)
			}
			if size > 0 && len(samples) > 3*size*size*size {
				return nil, invalidCube(lineNo, "too many table entries")
			}
			continue
		}

		rest := strings.TrimSpace(line[len(fields[0]):])
		switch kw {
		case KeywordSize:
			if size != 0 {
				return nil, invalidCube(lineNo, "duplicate LUT_3D_SIZE")
			}
			if len(fields) != 2 {
				return nil, invalidCube(lineNo, "malformed LUT_3D_SIZE")
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 || n > maxSize {
				return nil, invalidCube(lineNo, fmt.Sprintf("invalid LUT_3D_SIZE %q", fields[1]))
			}
			size = n
		case KeywordTitle:
			c.Title = strings.Trim(rest, `"`)
		case KeywordDomainMin, KeywordDomainMax:
			v, err := parseTriple(fields[1:])
			if err != nil {
				return nil, invalidCube(lineNo, fmt.Sprintf("malformed %s: %v", kw, err))
			}
			if kw == KeywordDomainMin {
				c.DomainMin = v
			} else {
				c.DomainMax = v
			}
		default:
			if c.Keywords == nil {
				c.Keywords = make(map[Keyword]string)
			}
			c.Keywords[kw] = rest
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if size == 0 {
		return nil, invalidCube(lineNo, "missing LUT_3D_SIZE")
	}
	want := size * size * size
	if got := len(samples) / 3; got != want {
		return nil, invalidCube(lineNo,
			fmt.Sprintf("found %d table entries, expected %d", got, want))
	}
	for i := range 3 {
		if c.DomainMax[i] <= c.DomainMin[i] {
			return nil, invalidCube(lineNo, "empty input domain")
		}
	}

	c.Grid = newGridFromSamples(size, samples)
	return c, nil
}

func parseTriple(fields []string) ([3]float64, error) {
	var v [3]float64
	if len(fields) != 3 {
		return v, fmt.Errorf("expected 3 values, found %d", len(fields))
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return v, err
		}
		v[i] = x
	}
	return v, nil
}

// FormatError is returned by [Decode] when the input is not a valid .cube
// file.
type FormatError struct {
	Line   int // 1-based line number; for errors found at EOF, the last line
	Reason string
}

func invalidCube(line int, reason string) error {
	return &FormatError{Line: line, Reason: reason}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("lut: invalid cube file (line %d): %s", e.Line, e.Reason)
}

// Is allows to use errors.Is(err, ErrFormat) to detect format errors.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

var (
	// ErrFormat matches all errors caused by malformed .cube data.
	ErrFormat = errors.New("lut: invalid cube file")

	// ErrShape matches all errors caused by images with unsuitable
	// dimensions.
	ErrShape = errors.New("lut: invalid image shape")
)
