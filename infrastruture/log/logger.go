// Package logger provides prefixed, coloured, levelled loggers, one per component.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const (
	errorColor   = "\033[31m"
	infoColor    = "\033[32m"
	warningColor = "\033[33m"
	colorReset   = "\033[0m"
)

var (
	ErrNilWriter   = errors.New("logger writer is nil")
	ErrEmptyPrefix = errors.New("logger prefix is empty")
)

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	out *log.Logger
}

// New creates a logger tagging every line with prefix drawn in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	tag := fmt.Sprintf("%s[%s]%s ", color, prefix, colorReset)
	return &Logger{
		out: log.New(w, tag, log.LstdFlags|log.Lmsgprefix),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(infoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(warningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(errorColor, "ERROR", msg)
}

func (l *Logger) print(color, level, msg string) {
	l.out.Printf("%s[%s]%s %s", color, level, colorReset, msg)
}
