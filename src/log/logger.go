// MIT License
//
// Copyright (c) 2024 sphinx-core
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// src/log/logger.go
//
// Package logger is a small leveled logger for the cmd/ternary-keygen
// CLI. The crypto core never imports this package: spec.md §7 requires
// the core to never log or otherwise touch process state on error, so
// logging only ever happens at the outermost, command-line layer.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel defines the severity level of the log message.
type LogLevel int

// Log level constants starting from 0 with iota.
const (
	DEBUG LogLevel = iota // Detailed debug information.
	INFO                  // General informational messages.
	WARN                  // Warnings about potential issues.
	ERROR                 // Error messages.
)

// levelNames associates LogLevel constants with string labels.
var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// currentLevel holds the minimum log level to output.
var currentLevel = INFO

// mu protects the log output to avoid interleaving log messages.
var mu sync.Mutex

// SetLevel sets the global logging level. Messages below this level
// are ignored.
func SetLevel(lvl LogLevel) {
	currentLevel = lvl
}

// logf is the internal function that formats and writes log messages,
// respecting currentLevel and prefixing the message with a timestamp
// and level label.
func logf(level LogLevel, format string, args ...any) {
	if level < currentLevel {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	ts := time.Now().Format("2006-01-02 15:04:05.000")
	prefix := fmt.Sprintf("%s [%s] ", ts, levelNames[level])

	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}

	_, _ = fmt.Fprint(os.Stderr, prefix+msg)
}

// Debug logs a DEBUG level message.
func Debug(format string, args ...any) { logf(DEBUG, format, args...) }

// Info logs an INFO level message.
func Info(format string, args ...any) { logf(INFO, format, args...) }

// Warn logs a WARN level message.
func Warn(format string, args ...any) { logf(WARN, format, args...) }

// Error logs an ERROR level message.
func Error(format string, args ...any) { logf(ERROR, format, args...) }

// Fatalf logs an ERROR level message and then terminates the program.
func Fatalf(format string, args ...any) {
	logf(ERROR, format, args...)
	os.Exit(1)
}
