package presenter

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/bryanchriswhite/winsnap/internal/usecase"
	"gopkg.in/yaml.v3"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name   string
		result usecase.Result
		err    error
		want   string
	}{
		{
			name:   "windows",
			result: usecase.ListWindowsResult{Windows: []string{"alpha", "beta"}},
			want:   "Windows:\nalpha\nbeta\n",
		},
		{
			name:   "no windows",
			result: usecase.ListWindowsResult{},
			want:   "Windows:\n",
		},
		{
			name:   "screenshot",
			result: usecase.ScreenshotResult{Path: "out.png"},
			want:   "Screenshot taken\n",
		},
		{
			name: "error",
			err:  errors.New(`Unable to find the window with title "x"`),
			want: "Error: Unable to find the window with title \"x\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(NewPlainText(&buf)).Present(tt.result, tt.err); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestJSONDocuments(t *testing.T) {
	var buf bytes.Buffer
	p := New(NewJSON(&buf))

	if err := p.Present(usecase.ListWindowsResult{Windows: []string{"alpha"}}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var list map[string]any
	if err := json.Unmarshal(buf.Bytes(), &list); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if list["_type"] != "ListWindowsResult" {
		t.Fatalf("expected ListWindowsResult, got %v", list["_type"])
	}
	if !reflect.DeepEqual(list["windows"], []any{"alpha"}) {
		t.Fatalf("expected [alpha], got %v", list["windows"])
	}

	buf.Reset()
	if err := p.Present(nil, errors.New("boom")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "{\n  \"_type\": \"ErrorResult\",\n  \"cause\": \"boom\"\n}\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestJSONEmptyListIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSON(&buf).PresentResult(usecase.ListWindowsResult{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"windows": []`)) {
		t.Fatalf("expected an empty array, got %s", buf.String())
	}
}

func TestYAMLDocuments(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAML(&buf).PresentResult(usecase.ScreenshotResult{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc GenericSuccessMessage
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML %q: %v", buf.String(), err)
	}
	if doc.Type != "GenericSuccessMessage" || doc.Message != "Screenshot taken" {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    any
		wantErr bool
	}{
		{"", &PlainText{}, false},
		{"text", &PlainText{}, false},
		{"JSON", &JSON{}, false},
		{"yaml", &YAML{}, false},
		{"xml", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			gateway, err := ForFormat(tt.format, &bytes.Buffer{})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if reflect.TypeOf(gateway) != reflect.TypeOf(tt.want) {
				t.Fatalf("expected %T, got %T", tt.want, gateway)
			}
		})
	}
}
