package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess = 0 // Successful execution
	ExitFailure = 1 // The filter could not be parsed or rendered
	ExitUsage   = 2 // Bad flags, arguments or query strings
)

// Error codes reported in the error output.
const (
	ErrCodeInvalidFilter   = "E001"
	ErrCodeMissingOperator = "E002"
	ErrCodeEmptyFilter     = "E003"
	ErrCodeUsage           = "E004"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitUsage)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that did not come out of a
// command (unknown flags, wrong argument counts) are usage errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// OutputFormatter writes command results as text, JSON or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
	Color  bool
}

// Response is the envelope for JSON and YAML output.
type Response struct {
	Status string     `json:"status" yaml:"status"`
	Data   any        `json:"data,omitempty" yaml:"data,omitempty"`
	Error  *ErrorBody `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrorBody describes a failed command.
type ErrorBody struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

func newFormatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format: opts.Format,
		Writer: w,
		Color:  !opts.NoColor && !color.NoColor,
	}
}

// Success writes data in the configured format. text is used for the text format.
func (f *OutputFormatter) Success(data any, text string) error {
	switch f.Format {
	case "json":
		return f.encodeJSON(Response{Status: "ok", Data: data})
	case "yaml":
		return f.encodeYAML(Response{Status: "ok", Data: data})
	default:
		_, err := fmt.Fprint(f.Writer, text)
		return err
	}
}

// Error writes a failure in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	body := &ErrorBody{Code: code, Message: message}
	switch f.Format {
	case "json":
		return f.encodeJSON(Response{Status: "error", Error: body})
	case "yaml":
		return f.encodeYAML(Response{Status: "error", Error: body})
	default:
		_, err := fmt.Fprintf(f.Writer, "%s [%s]: %s\n", f.red("Error"), code, message)
		return err
	}
}

// encodeJSON leaves <, > and & alone since clauses are full of them.
func (f *OutputFormatter) encodeJSON(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (f *OutputFormatter) encodeYAML(v any) error {
	enc := yaml.NewEncoder(f.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (f *OutputFormatter) red(s string) string {
	if !f.Color {
		return s
	}
	red := color.New(color.FgHiRed)
	red.EnableColor()
	return red.SprintFunc()(s)
}
