// Package output handles user-facing CLI output, including warnings and
// verbose mode.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"datashuttle/internal/alerts"
)

// Config holds output configuration.
type Config struct {
	Verbose   bool      // Enable verbose output
	Writer    io.Writer // Output destination (default: os.Stdout)
	ErrWriter io.Writer // Error output destination (default: os.Stderr)
	IsTTY     bool      // Whether output is a terminal
}

// Output handles formatted output with verbose and warning support.
type Output struct {
	config Config
}

// New creates a new Output instance with the given configuration.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}
	return &Output{config: config}
}

// DefaultConfig returns a Config with sensible defaults and TTY detection.
func DefaultConfig() Config {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return Config{
		Verbose:   false,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     isTTY,
	}
}

// Verbose prints a message only when verbose mode is enabled.
func (o *Output) Verbose(format string, args ...interface{}) {
	if !o.config.Verbose {
		return
	}
	fmt.Fprint(o.config.Writer, terminated(format, args...))
}

// Info prints an informational message (always shown).
func (o *Output) Info(format string, args ...interface{}) {
	fmt.Fprint(o.config.Writer, terminated(format, args...))
}

// Error prints an error message to stderr.
func (o *Output) Error(format string, args ...interface{}) {
	fmt.Fprint(o.config.ErrWriter, terminated(format, args...))
}

// Warning prints a single non-fatal warning to stderr.
func (o *Output) Warning(w alerts.Warning) {
	fmt.Fprint(o.config.ErrWriter, terminated("Warning: %s", w.Message))
}

// Warnings prints a batch of warnings in order.
func (o *Output) Warnings(warnings []alerts.Warning) {
	for _, w := range warnings {
		o.Warning(w)
	}
}

// IsVerbose returns whether verbose mode is enabled.
func (o *Output) IsVerbose() bool {
	return o.config.Verbose
}

// IsTTY returns whether the output is a terminal.
func (o *Output) IsTTY() bool {
	return o.config.IsTTY
}

func terminated(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	return msg
}
