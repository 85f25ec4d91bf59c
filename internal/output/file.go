package output

import (
	"fmt"
	"image"
	"os"

	"github.com/bryanchriswhite/winsnap/internal/logger"
)

// PersistenceError reports that a capture could not be written
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("Unable to save file %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// FileSaver writes images to disk, choosing the encoder from the extension
type FileSaver struct {
	opts Options
}

// NewFileSaver creates a saver with the given encoder options
func NewFileSaver(opts Options) *FileSaver {
	return &FileSaver{opts: opts}
}

// SaveImage encodes img to path. A partially written file is removed.
func (s *FileSaver) SaveImage(img image.Image, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}

	if err := Encode(f, img, format, s.opts); err != nil {
		f.Close()
		os.Remove(path)
		return &PersistenceError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return &PersistenceError{Path: path, Err: err}
	}

	logger.WithComponent("output").Debug().
		Str("path", path).
		Str("format", string(format)).
		Msg("Image written")
	return nil
}
