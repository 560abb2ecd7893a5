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

// Package imgfile reads and writes raster image files.
package imgfile

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load reads an image file.  The format is detected from the file contents;
// PNG, JPEG, GIF, TIFF, BMP and WebP images are supported.
// The name of the format is returned together with the image.
func Load(path string) (image.Image, string, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer fd.Close()

	img, format, err := image.Decode(fd)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, format, nil
}

// Save writes img to the named file.  The format is chosen by the file name
// extension: .jpg and .jpeg give JPEG, .tif and .tiff give TIFF, .bmp gives
// BMP.  All other names give PNG.
//
// Lookup table images must not be stored in a lossy format, so JPEG images
// are written with the highest quality setting.
func Save(path string, img image.Image) error {
	fd, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	err = Encode(fd, img, FormatForPath(path))
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	if err != nil {
		return fmt.Errorf("failed to write image %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w in the given format ("png", "jpeg", "tiff" or
// "bmp").
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// FormatForPath returns the image format used by [Save] for the given file
// name.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".tif", ".tiff":
		return "tiff"
	case ".bmp":
		return "bmp"
	default:
		return "png"
	}
}
