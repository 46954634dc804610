// Package observability provides the structured logging hooks used by the
// page operations. Library code logs through the Logger interface; the CLI
// wires a stderr implementation, embedders may supply their own or keep the
// no-op default.
package observability

import (
	"fmt"
	"log"
	"strings"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type floatField struct {
	key string
	val float64
}

func (f floatField) Key() string        { return f.key }
func (f floatField) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field        { return stringField{key, value} }
func Int(key string, value int) Field       { return intField{key, value} }
func Float(key string, value float64) Field { return floatField{key, value} }
func Error(key string, err error) Field     { return errorField{key, err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// stdLogger writes level-tagged lines through the standard library logger.
type stdLogger struct {
	l       *log.Logger
	verbose bool
	fields  []Field
}

// NewStdLogger returns a Logger backed by l. Debug lines are emitted only
// when verbose is set.
func NewStdLogger(l *log.Logger, verbose bool) Logger {
	return &stdLogger{l: l, verbose: verbose}
}

func (s *stdLogger) Debug(msg string, fields ...Field) {
	if s.verbose {
		s.emit("DEBUG", msg, fields)
	}
}
func (s *stdLogger) Info(msg string, fields ...Field)  { s.emit("INFO", msg, fields) }
func (s *stdLogger) Warn(msg string, fields ...Field)  { s.emit("WARN", msg, fields) }
func (s *stdLogger) Error(msg string, fields ...Field) { s.emit("ERROR", msg, fields) }

func (s *stdLogger) With(fields ...Field) Logger {
	return &stdLogger{l: s.l, verbose: s.verbose, fields: append(s.fields[:len(s.fields):len(s.fields)], fields...)}
}

func (s *stdLogger) emit(level, msg string, fields []Field) {
	var b strings.Builder
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(msg)
	for _, f := range append(s.fields, fields...) {
		fmt.Fprintf(&b, " %s=%v", f.Key(), f.Value())
	}
	s.l.Print(b.String())
}
