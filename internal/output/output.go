package output

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const defaultJPEGQuality = 90

// Format is an image encoding
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Options tune the encoders
type Options struct {
	JPEGQuality int
}

// ParseFormat accepts a format name or a file extension, with or without
// the leading dot
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported image format %q (use png, jpeg, bmp or tiff)", name)
	}
}

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer image format from %q: no file extension", path)
	}
	return ParseFormat(ext)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "image/png"
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format, opts Options) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = defaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}
