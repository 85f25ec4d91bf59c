package presenter

import (
	"encoding/json"
	"io"

	"github.com/bryanchriswhite/winsnap/internal/usecase"
	"gopkg.in/yaml.v3"
)

// JSON renders outcomes as indented JSON documents
type JSON struct {
	out io.Writer
}

// NewJSON creates a JSON gateway
func NewJSON(out io.Writer) *JSON {
	return &JSON{out: out}
}

func (j *JSON) PresentError(cause string) error {
	return j.encode(ErrorDocument(cause))
}

func (j *JSON) PresentResult(result usecase.Result) error {
	doc, err := Document(result)
	if err != nil {
		return err
	}
	return j.encode(doc)
}

func (j *JSON) encode(v any) error {
	encoder := json.NewEncoder(j.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// YAML renders outcomes as YAML documents
type YAML struct {
	out io.Writer
}

// NewYAML creates a YAML gateway
func NewYAML(out io.Writer) *YAML {
	return &YAML{out: out}
}

func (y *YAML) PresentError(cause string) error {
	return y.encode(ErrorDocument(cause))
}

func (y *YAML) PresentResult(result usecase.Result) error {
	doc, err := Document(result)
	if err != nil {
		return err
	}
	return y.encode(doc)
}

func (y *YAML) encode(v any) error {
	encoder := yaml.NewEncoder(y.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
