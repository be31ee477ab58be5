// Package log provides the worker's logging abstraction: a small Logger
// interface so internal packages never depend on a concrete logging
// framework directly.
//
// Same four-method interface and New(debug bool) constructor shape as a
// minimal stdlib logger wrapper, but backed by go.uber.org/zap's sugared
// logger: a worker process that logs across concurrent RPCs from many peers
// needs structured, leveled output.
package log

import "go.uber.org/zap"

// Logger is the interface worker packages log through.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type zapLogger struct {
	s *zap.SugaredLogger
}

// New creates a Logger backed by zap. If debug is true, debug-level
// messages are emitted; otherwise the logger uses zap's production defaults
// (info level and above, JSON encoding).
func New(debug bool) Logger {
	var zl *zap.Logger
	var err error
	if debug {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		// zap's built-in configs only fail to build on a broken sink;
		// fall back to a no-op logger rather than panic in a logging path.
		zl = zap.NewNop()
	}
	return &zapLogger{s: zl.Sugar()}
}

func (z *zapLogger) Debugf(format string, args ...any) { z.s.Debugf(format, args...) }
func (z *zapLogger) Infof(format string, args ...any)  { z.s.Infof(format, args...) }
func (z *zapLogger) Warnf(format string, args ...any)  { z.s.Warnf(format, args...) }
func (z *zapLogger) Errorf(format string, args ...any) { z.s.Errorf(format, args...) }

// Nop returns a Logger that discards everything, for tests.
func Nop() Logger {
	return &zapLogger{s: zap.NewNop().Sugar()}
}
