// Unless explicitly stated otherwise all files in this repository are
// licensed under the Apache License Version 2.0.
// Copyright 2026-present Sentinel Authors.

// Package log is a thin package-level logger, modeled on the teacher's
// seclog wrapper: callers reach for log.Warnf/log.Debugf the same way they
// would reach for fmt.Printf, and the level is controlled globally by
// SetLevelName rather than by threading a logger through every constructor.
package log

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	level   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugared = newSugaredLogger(level)
)

func newSugaredLogger(lvl zap.AtomicLevel) *zap.SugaredLogger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(os.Stderr), lvl)
	return zap.New(core).Sugar()
}

// EnvVar is the environment variable that sets the default log level, per
// spec.md §6 ("logging level controlled by an environment variable with a
// default of informational").
const EnvVar = "SENTINEL_LOG_LEVEL"

func init() {
	if v, ok := os.LookupEnv(EnvVar); ok {
		_ = SetLevelName(v)
	}
}

// SetLevelName parses a level name (trace is mapped to zap's debug level,
// since zap has no lower level) and applies it globally.
func SetLevelName(name string) error {
	var zl zapcore.Level
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace", "debug":
		zl = zapcore.DebugLevel
	case "", "info":
		zl = zapcore.InfoLevel
	case "warn", "warning":
		zl = zapcore.WarnLevel
	case "error":
		zl = zapcore.ErrorLevel
	default:
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(name)); err != nil {
			return err
		}
		zl = lvl
	}
	mu.Lock()
	defer mu.Unlock()
	level.SetLevel(zl)
	return nil
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugared
}

// Tracef logs at debug level (there is no dedicated trace level in zap).
func Tracef(format string, args ...interface{}) { current().Debugf(format, args...) }

// Debugf logs at debug level.
func Debugf(format string, args ...interface{}) { current().Debugf(format, args...) }

// Infof logs at info level.
func Infof(format string, args ...interface{}) { current().Infof(format, args...) }

// Warnf logs at warn level.
func Warnf(format string, args ...interface{}) { current().Warnf(format, args...) }

// Errorf logs at error level.
func Errorf(format string, args ...interface{}) { current().Errorf(format, args...) }

// Sync flushes any buffered log entries; call before process exit.
func Sync() error { return current().Sync() }
