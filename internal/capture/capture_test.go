package capture_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/bryanchriswhite/winsnap/internal/capture"
	"github.com/bryanchriswhite/winsnap/internal/fakes"
)

func TestCaptureUniformBlue(t *testing.T) {
	session := fakes.NewSession(1).
		SetImage(0x42, capture.Geometry{Width: 2, Height: 1}, fakes.UniformImage(2, 1, 0x0000FF))

	raster, err := capture.NewCapturer(session).Capture(0x42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raster.Width != 2 || raster.Height != 1 {
		t.Fatalf("expected 2x1, got %dx%d", raster.Width, raster.Height)
	}
	for x := 0; x < 2; x++ {
		if got := raster.RGBAt(x, 0); got != (capture.RGB{R: 0, G: 0, B: 255}) {
			t.Fatalf("expected (0,0,255) at %d, got %+v", x, got)
		}
	}
}

func TestCaptureDecodesEveryPixel(t *testing.T) {
	img := fakes.UniformImage(2, 2, 0)
	// bottom-right pixel 0x00112233, little-endian
	copy(img.Data[12:], []byte{0x33, 0x22, 0x11, 0x00})
	session := fakes.NewSession(1).SetImage(7, capture.Geometry{Width: 2, Height: 2}, img)

	raster, err := capture.NewCapturer(session).Capture(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := raster.RGBAt(1, 1); got != (capture.RGB{R: 0x11, G: 0x22, B: 0x33}) {
		t.Fatalf("expected (0x11,0x22,0x33), got %+v", got)
	}
	if got := raster.RGBAt(0, 1); got != (capture.RGB{}) {
		t.Fatalf("expected black, got %+v", got)
	}
}

func TestCaptureGeometryFailure(t *testing.T) {
	session := fakes.NewSession(1)
	session.GeometryErr = errors.New("BadDrawable")

	_, err := capture.NewCapturer(session).Capture(0x42)
	var geomErr *capture.GeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("expected GeometryError, got %v", err)
	}
	if !strings.Contains(err.Error(), "0x42") {
		t.Fatalf("expected the window id in %q", err.Error())
	}
}

func TestCaptureEmptyGeometry(t *testing.T) {
	session := fakes.NewSession(1).SetImage(0x42, capture.Geometry{Width: 0, Height: 10}, fakes.UniformImage(1, 1, 0))

	_, err := capture.NewCapturer(session).Capture(0x42)
	var geomErr *capture.GeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("expected GeometryError, got %v", err)
	}
}

func TestCapturePixelReadFailures(t *testing.T) {
	geom := capture.Geometry{Width: 2, Height: 2}
	tests := []struct {
		name  string
		setup func(s *fakes.Session)
	}{
		{"server error", func(s *fakes.Session) {
			s.SetImage(0x42, geom, fakes.UniformImage(2, 2, 0))
			s.ImageErr = errors.New("BadMatch")
		}},
		{"nil image", func(s *fakes.Session) { s.SetImage(0x42, geom, nil) }},
		{"empty data", func(s *fakes.Session) {
			img := fakes.UniformImage(2, 2, 0)
			img.Data = nil
			s.SetImage(0x42, geom, img)
		}},
		{"smaller than window", func(s *fakes.Session) { s.SetImage(0x42, geom, fakes.UniformImage(1, 2, 0)) }},
		{"missing masks", func(s *fakes.Session) {
			img := fakes.UniformImage(2, 2, 0)
			img.Masks = capture.ChannelMasks{}
			s.SetImage(0x42, geom, img)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := fakes.NewSession(1)
			tt.setup(session)

			raster, err := capture.NewCapturer(session).Capture(0x42)
			var pixErr *capture.PixelReadError
			if !errors.As(err, &pixErr) {
				t.Fatalf("expected PixelReadError, got %v", err)
			}
			if pixErr.Window != 0x42 {
				t.Fatalf("expected window 0x42, got %s", pixErr.Window)
			}
			if raster != nil {
				t.Fatal("expected no raster")
			}
		})
	}
}

func TestCaptureEmptyImageMessage(t *testing.T) {
	session := fakes.NewSession(1).SetImage(0x42, capture.Geometry{Width: 1, Height: 1}, nil)

	_, err := capture.NewCapturer(session).Capture(0x42)
	if !errors.Is(err, capture.ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
	if err.Error() != "Unable to get the pixel data from window 0x42: empty image" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestCaptureLargerImageIsCropped(t *testing.T) {
	session := fakes.NewSession(1).
		SetImage(0x42, capture.Geometry{Width: 1, Height: 1}, fakes.UniformImage(3, 3, 0xFF0000))

	raster, err := capture.NewCapturer(session).Capture(0x42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raster.Width != 1 || raster.Height != 1 {
		t.Fatalf("expected 1x1, got %dx%d", raster.Width, raster.Height)
	}
	if got := raster.RGBAt(0, 0); got != (capture.RGB{R: 255}) {
		t.Fatalf("expected red, got %+v", got)
	}
}
