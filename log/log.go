// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package log

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// contextKey is used to store logger in context
type contextKey string

const loggerContextKey contextKey = "chaos-usemem-logger"

// NewZapLogger returns a sugared logger writing status lines to stdout and diagnostics to stderr
func NewZapLogger(verbose bool) *zap.SugaredLogger {
	return NewLogger(verbose, os.Stdout, os.Stderr)
}

// NewLogger returns a sugared logger with two console outputs:
// debug and info entries go to stdout (only when verbose is true),
// warn entries and above always go to stderr
func NewLogger(verbose bool, stdout, stderr io.Writer) *zap.SugaredLogger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	// optionally override the log level from the default based on the LOG_LEVEL env var
	if lvl, exists := os.LookupEnv("LOG_LEVEL"); exists {
		// if the log level can be parsed, set the logger to this level
		if ll, err := zapcore.ParseLevel(lvl); err == nil {
			level.SetLevel(ll)
		}
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.CallerKey = zapcore.OmitKey
	encoderConfig.StacktraceKey = zapcore.OmitKey
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	statusLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return verbose && l < zapcore.WarnLevel && level.Enabled(l)
	})
	diagnosticLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel && level.Enabled(l)
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(stdout)), statusLevel),
		zapcore.NewCore(encoder.Clone(), zapcore.Lock(zapcore.AddSync(stderr)), diagnosticLevel),
	)

	return zap.New(core).Sugar()
}

// WithLogger stores a logger in the context
func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// FromContext extracts a logger from the context, creating a default logger if not found
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(loggerContextKey).(*zap.SugaredLogger); ok && logger != nil {
		return logger
	}

	return NewZapLogger(true)
}
