package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/bryanchriswhite/winsnap/internal/usecase"
)

// Gateway renders use case outcomes
type Gateway interface {
	PresentResult(result usecase.Result) error
	PresentError(cause string) error
}

// Presenter routes an outcome to its gateway
type Presenter struct {
	gateway Gateway
}

// New creates a presenter rendering through gateway
func New(gateway Gateway) *Presenter {
	return &Presenter{gateway: gateway}
}

// Present renders result, or err's message when err is non-nil
func (p *Presenter) Present(result usecase.Result, err error) error {
	if err != nil {
		return p.gateway.PresentError(err.Error())
	}
	return p.gateway.PresentResult(result)
}

// Format names an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ForFormat returns the gateway for a format name writing to out
func ForFormat(format string, out io.Writer) (Gateway, error) {
	switch Format(strings.ToLower(format)) {
	case FormatText, "":
		return NewPlainText(out), nil
	case FormatJSON:
		return NewJSON(out), nil
	case FormatYAML:
		return NewYAML(out), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use 'text', 'json' or 'yaml')", format)
	}
}
