package logging

import "github.com/vvka-141/fixinsert/pkg/fixinsert"

var _ fixinsert.Logger = NullLogger{}

// NullLogger drops every message. Services under test take it where the
// CLI passes a ConsoleLogger.
type NullLogger struct{}

// NewNullLogger returns a NullLogger.
func NewNullLogger() NullLogger {
	return NullLogger{}
}

func (NullLogger) Verbose(string, ...interface{}) {}
func (NullLogger) Info(string, ...interface{}) {}
func (NullLogger) Error(string, ...interface{}) {}
