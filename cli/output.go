package cli

import (
	"cmp"
	"document-catalog/core"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2 // bad flags, fixtures or configuration

	// ExitNotFound is returned by get when the id is not in the loaded fixtures.
	ExitNotFound = ExitFailure
)

// ExitError carries the process exit code for a failed command.
// main passes Code to os.Exit and prints the error itself.
type ExitError struct {
	Code    int
	Message string // what the command was doing, or the id it missed
	Err     error
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

// NewExitError returns an error without an underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches code to err; errors.Is still sees err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err. Errors raised by cobra itself
// (unknown flags, missing arguments) carry none and map to ExitFailure.
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

// sortDocuments orders documents by creation time, then id, so output is stable.
func sortDocuments(documents []core.Document) {
	slices.SortFunc(documents, func(a, b core.Document) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeDocumentText(w io.Writer, d core.Document) {
	fmt.Fprintf(w, "id:      %s\n", d.ID)
	fmt.Fprintf(w, "title:   %s\n", d.Title)
	fmt.Fprintf(w, "content: %s\n", d.Content)
	fmt.Fprintf(w, "author:  %s (%s)\n", d.Author.ID, d.Author.Name)
	fmt.Fprintf(w, "created: %s\n", d.Created.UTC().Format(time.RFC3339Nano))
}

func writeDocument(w io.Writer, format string, d core.Document) error {
	if format == "json" {
		return writeJSON(w, d)
	}
	writeDocumentText(w, d)
	return nil
}

func writeDocuments(w io.Writer, format string, documents []core.Document) error {
	if format == "json" {
		return writeJSON(w, documents)
	}
	for i, d := range documents {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeDocumentText(w, d)
	}
	if len(documents) > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d document(s) matched\n", len(documents))
	return nil
}
