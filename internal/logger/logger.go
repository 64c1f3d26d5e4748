/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced for MCP integrations.
package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger = build(os.Stderr)
)

func build(w io.Writer) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = ""
	ec.CallerKey = ""
	ec.EncodeLevel = zapcore.LowercaseLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), level)
	return zap.New(core)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = build(w)
}

// SetVerbose lowers the level to debug when verbose is set, and restores
// the default warning level otherwise.
func SetVerbose(verbose bool) {
	if verbose {
		level.SetLevel(zap.DebugLevel)
		return
	}
	level.SetLevel(zap.WarnLevel)
}

// Logger returns the underlying zap logger for structured fields.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	Logger().Sugar().Warnf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	Logger().Sugar().Infof(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}
