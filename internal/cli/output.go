package cli

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/monopath"
)

// Exit codes for the CLI.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Solving failed
	ExitCommandError = 2 // Bad flags or arguments
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
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

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes a solve result as text or YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// yamlResult is the YAML shape of a result; each path step is [row, col].
type yamlResult struct {
	Cost uint64   `yaml:"cost"`
	Path [][2]int `yaml:"path,flow"`
}

// Result writes res in the configured format.
func (f *OutputFormatter) Result(res *monopath.Result) error {
	if f.Format == "yaml" {
		return f.writeYAML(res)
	}
	return f.writeText(res)
}

// writeText prints "Optimal value: N", "Path:" and one "(row,col)" per line.
func (f *OutputFormatter) writeText(res *monopath.Result) error {
	if _, err := fmt.Fprintf(f.Writer, "Optimal value: %d\nPath:\n", res.Cost); err != nil {
		return err
	}
	for _, c := range res.Path {
		if _, err := fmt.Fprintln(f.Writer, c); err != nil {
			return err
		}
	}
	return nil
}

func (f *OutputFormatter) writeYAML(res *monopath.Result) error {
	out := yamlResult{Cost: res.Cost, Path: make([][2]int, len(res.Path))}
	for i, c := range res.Path {
		out.Path[i] = [2]int{c.Row, c.Col}
	}

	enc := yaml.NewEncoder(f.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
