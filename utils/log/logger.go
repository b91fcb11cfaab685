// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package partitalog is the process-wide structured logger. Until Init or
// InitWriter runs every call goes to a no-op logger.
package partitalog

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *Logger
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)

	noopLogger = &Logger{zap.NewNop().Sugar()}
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// With adds structured fields to the logger and returns a new instance.
func (l *Logger) With(args ...interface{}) *Logger {
	if l == nil {
		return noopLogger
	}
	return &Logger{l.SugaredLogger.With(args...)}
}

// Component is shorthand for With("component", name).
func (l *Logger) Component(name string) *Logger {
	return l.With("component", name)
}

// L returns the global logger or a no-op fallback if uninitialized.
func L() *Logger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// settings are read from the environment:
//
//   - PARTITA_ENV=dev selects console output in app-debug.log and a debug
//     default level; anything else selects JSON in app.log.
//   - LOG_LEVEL (debug, info, warn, error) overrides the default level.
type settings struct {
	dev   bool
	level zapcore.Level
}

func fromEnv() settings {
	s := settings{level: zap.InfoLevel}
	switch strings.ToLower(os.Getenv("PARTITA_ENV")) {
	case "dev", "development":
		s.dev = true
		s.level = zap.DebugLevel
	}
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		s.level = zap.DebugLevel
	case "info":
		s.level = zap.InfoLevel
	case "warn", "warning":
		s.level = zap.WarnLevel
	case "error":
		s.level = zap.ErrorLevel
	}
	return s
}

func (s settings) fileName() string {
	if s.dev {
		return "app-debug.log"
	}
	return "app.log"
}

// Init points the global logger at a rotated file under the user's state
// directory and returns the file path.
func Init(appName string) string {
	s := fromEnv()
	path := filepath.Join(stateDir(appName), s.fileName())

	level.SetLevel(s.level)
	install(encoder(s.dev), zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	}))

	logger.Infow("logger initialized", "dev", s.dev, "level", s.level.String(), "path", path)
	return path
}

// InitWriter sends console-encoded logs at lvl to w.
func InitWriter(w io.Writer, lvl zapcore.Level) {
	level.SetLevel(lvl)
	install(encoder(true), zapcore.AddSync(w))
}

// InitTest logs everything to stdout.
func InitTest() {
	InitWriter(os.Stdout, zap.DebugLevel)
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// SetLevel changes the level of the installed logger at runtime.
func SetLevel(lvl zapcore.Level) {
	level.SetLevel(lvl)
}

func encoder(console bool) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if console {
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}

func install(enc zapcore.Encoder, ws zapcore.WriteSyncer) {
	raw := zap.New(zapcore.NewCore(enc, ws, level), zap.AddCaller())
	logger = &Logger{raw.Sugar()}
}

// stateDir returns (and creates) the first usable state directory:
// $XDG_STATE_HOME/<app>, ~/.local/state/<app>, then the temp dir.
func stateDir(appName string) string {
	var candidates []string
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, appName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".local", "state", appName))
	}
	for _, dir := range candidates {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			return dir
		}
	}
	dir := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(dir, 0o755)
	return dir
}
