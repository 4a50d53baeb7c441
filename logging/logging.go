// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the lvlda commands: a console
// encoder with bracketed level names and millisecond timestamps, writing to
// the console and, optionally, to a time-rotated file.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidLevel is returned for a level name other than debug, info, warn or error.
var ErrInvalidLevel = errors.New("logging: invalid level")

const timeLayout = "2006-01-02 15:04:05.000"

// Config describes the sinks.
//   - Path enables the rotated file sink; files are named Path.YYYYMMDD and
//     Path itself is kept as a link to the current file.
//   - Console defaults to os.Stderr.
type Config struct {
	Level         string
	Path          string
	RotationHours int
	MaxAgeDays    int
	Console       io.Writer
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel, nil
	case "", "info":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("%q: %w", s, ErrInvalidLevel)
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "time",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "line",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + l.CapitalString() + "]")
		},
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format(timeLayout))
		},
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

// New builds the logger. The returned close func flushes the logger and
// releases the rotated file; call it once the logger is no longer used.
func New(cfg Config) (*zap.Logger, func(), error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(console)}
	var rotated *rotatelogs.RotateLogs
	if cfg.Path != "" {
		rotated, err = rotatelogs.New(
			cfg.Path+".%Y%m%d",
			rotatelogs.WithLinkName(cfg.Path),
			rotatelogs.WithRotationTime(time.Duration(cfg.RotationHours)*time.Hour),
			rotatelogs.WithMaxAge(time.Duration(cfg.MaxAgeDays)*24*time.Hour),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("rotate logs %q: %w", cfg.Path, err)
		}
		syncers = append(syncers, zapcore.AddSync(rotated))
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.NewMultiWriteSyncer(syncers...),
		zap.NewAtomicLevelAt(level),
	)
	logger := zap.New(core, zap.AddCaller()).Named("lvlda")

	closeFn := func() {
		_ = logger.Sync()
		if rotated != nil {
			_ = rotated.Close()
		}
	}

	return logger, closeFn, nil
}
