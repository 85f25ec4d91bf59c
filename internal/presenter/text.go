package presenter

import (
	"fmt"
	"io"

	"github.com/bryanchriswhite/winsnap/internal/usecase"
)

// PlainText renders outcomes as human readable lines
type PlainText struct {
	out io.Writer
}

// NewPlainText creates a plain text gateway
func NewPlainText(out io.Writer) *PlainText {
	return &PlainText{out: out}
}

func (p *PlainText) PresentError(cause string) error {
	_, err := fmt.Fprintf(p.out, "Error: %s\n", cause)
	return err
}

func (p *PlainText) PresentResult(result usecase.Result) error {
	switch r := result.(type) {
	case usecase.ListWindowsResult:
		if _, err := fmt.Fprintln(p.out, "Windows:"); err != nil {
			return err
		}
		for _, title := range r.Windows {
			if _, err := fmt.Fprintln(p.out, title); err != nil {
				return err
			}
		}
		return nil
	case usecase.ScreenshotResult:
		_, err := fmt.Fprintln(p.out, "Screenshot taken")
		return err
	default:
		return fmt.Errorf("unknown result type %T", result)
	}
}
