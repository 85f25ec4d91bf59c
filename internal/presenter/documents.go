package presenter

import (
	"fmt"

	"github.com/bryanchriswhite/winsnap/internal/usecase"
)

// ErrorResult is the structured form of a failure
type ErrorResult struct {
	Type  string `json:"_type" yaml:"_type"`
	Cause string `json:"cause" yaml:"cause"`
}

// ListWindowsResult is the structured form of an enumeration
type ListWindowsResult struct {
	Type    string   `json:"_type" yaml:"_type"`
	Windows []string `json:"windows" yaml:"windows"`
}

// GenericSuccessMessage is the structured form of a completed action
type GenericSuccessMessage struct {
	Type    string `json:"_type" yaml:"_type"`
	Message string `json:"message" yaml:"message"`
}

// ErrorDocument wraps a failure message
func ErrorDocument(cause string) ErrorResult {
	return ErrorResult{Type: "ErrorResult", Cause: cause}
}

// SuccessDocument wraps a success message
func SuccessDocument(message string) GenericSuccessMessage {
	return GenericSuccessMessage{Type: "GenericSuccessMessage", Message: message}
}

// Document converts a use case result into its structured form
func Document(result usecase.Result) (any, error) {
	switch r := result.(type) {
	case usecase.ListWindowsResult:
		windows := r.Windows
		if windows == nil {
			windows = []string{}
		}
		return ListWindowsResult{Type: "ListWindowsResult", Windows: windows}, nil
	case usecase.ScreenshotResult:
		return SuccessDocument("Screenshot taken"), nil
	default:
		return nil, fmt.Errorf("unknown result type %T", result)
	}
}
