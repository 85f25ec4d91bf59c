package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bryanchriswhite/winsnap/internal/capture"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testRaster() *capture.Raster {
	r := capture.NewRaster(2, 1)
	r.SetRGB(0, 0, capture.RGB{R: 255})
	r.SetRGB(1, 0, capture.RGB{B: 255})
	return r
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{".PNG", FormatPNG, false},
		{"jpg", FormatJPEG, false},
		{"jpeg", FormatJPEG, false},
		{"bmp", FormatBMP, false},
		{".tif", FormatTIFF, false},
		{"gif", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatFromPathNeedsExtension(t *testing.T) {
	if _, err := FormatFromPath("/tmp/capture"); err == nil {
		t.Fatal("expected error for a path without extension")
	}
	if f, err := FormatFromPath("/tmp/capture.jpg"); err != nil || f != FormatJPEG {
		t.Fatalf("expected jpeg, got %q (%v)", f, err)
	}
}

func TestEncodeDecodes(t *testing.T) {
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		FormatPNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatBMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		FormatTIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, testRaster(), format, Options{}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			img, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			r, g, b, _ := img.At(1, 0).RGBA()
			if r != 0 || g != 0 || b != 0xffff {
				t.Fatalf("expected blue, got %v", img.At(1, 0))
			}
		})
	}
}

func TestEncodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testRaster(), FormatJPEG, Options{JPEGQuality: 500}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0xFF, 0xD8}) {
		t.Fatal("expected a JPEG start-of-image marker")
	}
}

func TestFileSaverWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")

	if err := NewFileSaver(Options{}).SaveImage(testRaster(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("expected 2x1, got %v", img.Bounds())
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("expected red, got %v", got)
	}
}

func TestFileSaverErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"unknown extension", filepath.Join(dir, "shot.gif")},
		{"no extension", filepath.Join(dir, "shot")},
		{"missing directory", filepath.Join(dir, "missing", "shot.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFileSaver(Options{}).SaveImage(testRaster(), tt.path)
			var persistErr *PersistenceError
			if !errors.As(err, &persistErr) {
				t.Fatalf("expected PersistenceError, got %v", err)
			}
			if persistErr.Path != tt.path {
				t.Fatalf("expected path %s, got %s", tt.path, persistErr.Path)
			}
			if _, statErr := os.Stat(tt.path); !os.IsNotExist(statErr) {
				t.Fatalf("expected no file at %s", tt.path)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	if FormatJPEG.ContentType() != "image/jpeg" || FormatPNG.ContentType() != "image/png" {
		t.Fatal("unexpected content types")
	}
}
