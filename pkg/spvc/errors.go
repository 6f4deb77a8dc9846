package spvc

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	summary, err := driver.Run(ctx, config)
//	if errors.Is(err, spvc.ErrInvalidPath) {
//	    // Handle a missing target directory
//	}
var (
	// ErrUsage indicates the command line was malformed (e.g. missing target directory).
	ErrUsage = errors.New("usage error")

	// ErrInvalidPath indicates the target path does not exist or is not a directory.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCompilationFailed indicates the external compiler rejected a shader.
	// Per-file results wrap it; the batch only returns it in strict mode.
	ErrCompilationFailed = errors.New("compilation failed")
)

// cobra reports argument and flag misuse as plain errors.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidPath):
		return ExitInvalidPath
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrCompilationFailed):
		return ExitCompilationFailed
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

// InvalidPathError reports a target path that is missing or not a directory.
// It matches ErrInvalidPath with errors.Is.
type InvalidPathError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InvalidPathError) Error() string {
	return e.Path + " is not a valid directory: " + e.Reason
}

func (e *InvalidPathError) Is(target error) bool { return target == ErrInvalidPath }

func (e *InvalidPathError) Unwrap() error { return e.Err }

// CompilationFailure records why a single shader did not compile.
// It matches ErrCompilationFailed with errors.Is.
type CompilationFailure struct {
	Path     string
	ExitCode int
	Err      error
}

func (e *CompilationFailure) Error() string {
	if e.Err != nil {
		return e.Path + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: compiler exited with status %d", e.Path, e.ExitCode)
}

func (e *CompilationFailure) Is(target error) bool { return target == ErrCompilationFailed }

func (e *CompilationFailure) Unwrap() error { return e.Err }
