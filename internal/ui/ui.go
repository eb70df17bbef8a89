// Package ui provides unified output formatting for the netgen CLI.
//
// Overview:
//   - Responsibility: Leveled user messages, stage steps, JSON results
//   - Key Types: Message, OutputLevel
//   - Concurrency Model: Thread-safe output operations
//   - Error Semantics: Encoding failures are reported on the error stream
//   - Performance Notes: One write per message
//
// Usage:
//
//	ui.Info("Loading %s", path)
//	ui.Error("Generation failed: %v", err)
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	verbose    bool
	jsonOutput bool
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	mu         sync.RWMutex
)

// OutputLevel represents the severity level of a message.
type OutputLevel string

const (
	LevelDebug   OutputLevel = "debug"
	LevelInfo    OutputLevel = "info"
	LevelWarning OutputLevel = "warning"
	LevelError   OutputLevel = "error"
	LevelSuccess OutputLevel = "success"
)

var prefixes = map[OutputLevel]*color.Color{
	LevelDebug:   color.New(color.FgHiBlack),
	LevelInfo:    color.New(color.FgCyan),
	LevelWarning: color.New(color.FgYellow),
	LevelError:   color.New(color.FgRed, color.Bold),
	LevelSuccess: color.New(color.FgGreen, color.Bold),
}

var labels = map[OutputLevel]string{
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarning: "WARN",
	LevelError:   "ERROR",
	LevelSuccess: "OK",
}

// Message represents a structured output message in JSON mode.
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Data      any         `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SetVerbose enables or disables debug messages.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// SetJSONOutput switches every message to JSON lines on stdout.
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// JSONOutput reports whether JSON mode is on.
func JSONOutput() bool {
	mu.RLock()
	defer mu.RUnlock()
	return jsonOutput
}

// SetOutput redirects the standard and error streams.
//
// Parameters:
//   - out: Receives everything except errors
//   - errOut: Receives error-level messages in text mode
//
// Returns:
//   - func(): Restores the previous streams
func SetOutput(out, errOut io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	return func() {
		mu.Lock()
		defer mu.Unlock()
		stdout, stderr = prevOut, prevErr
	}
}

func output(level OutputLevel, data any, format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	useVerbose := verbose
	out, errOut := stdout, stderr
	mu.RUnlock()

	if level == LevelDebug && !useVerbose {
		return
	}

	text := fmt.Sprintf(format, args...)
	if useJSON {
		encodeTo(out, errOut, Message{
			Level:     level,
			Text:      text,
			Data:      data,
			Timestamp: time.Now().UTC(),
		})
		return
	}

	writer := out
	if level == LevelError {
		writer = errOut
	}
	fmt.Fprintf(writer, "%s %s\n", prefixes[level].Sprintf("%-5s", labels[level]), text)
}

func encodeTo(out, errOut io.Writer, v any) {
	encoder := json.NewEncoder(out)
	if err := encoder.Encode(v); err != nil {
		fmt.Fprintf(errOut, "Failed to encode JSON output: %v\n", err)
	}
}

// Debug outputs a message shown only in verbose mode.
func Debug(format string, args ...any) {
	output(LevelDebug, nil, format, args...)
}

// Info outputs an informational message.
func Info(format string, args ...any) {
	output(LevelInfo, nil, format, args...)
}

// Warning outputs a warning message.
func Warning(format string, args ...any) {
	output(LevelWarning, nil, format, args...)
}

// Error outputs an error message on the error stream.
func Error(format string, args ...any) {
	output(LevelError, nil, format, args...)
}

// Success outputs a success message.
func Success(format string, args ...any) {
	output(LevelSuccess, nil, format, args...)
}

// Step outputs a step indicator with message.
//
// Parameters:
//   - step: Step number, starting at 1
//   - total: Total number of steps
//   - format: Printf-style format string
//   - args: Format arguments
func Step(step, total int, format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		output(LevelInfo, map[string]int{"step": step, "total": total}, format, args...)
		return
	}

	text := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "  %s %s\n", color.New(color.FgBlue).Sprintf("[%d/%d]", step, total), text)
}

// List prints indented items in text mode. In JSON mode it emits a single
// info message carrying the items as data.
func List(title string, items []string) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		output(LevelInfo, items, "%s", title)
		return
	}
	fmt.Fprintln(out, title)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}

// Result writes v as the final document of a command. Text mode writes
// nothing; commands print their own summary.
func Result(v any) {
	mu.RLock()
	useJSON := jsonOutput
	out, errOut := stdout, stderr
	mu.RUnlock()

	if useJSON {
		encodeTo(out, errOut, v)
	}
}

// Raw writes s unchanged to the standard stream.
func Raw(s string) {
	mu.RLock()
	out := stdout
	mu.RUnlock()
	fmt.Fprint(out, s)
}
