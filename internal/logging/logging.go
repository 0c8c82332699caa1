// Package logging builds the zap-backed logr loggers used across the
// resolver and defines the verbosity levels for logr's V().
package logging

import (
	"os"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
	ctrl "sigs.k8s.io/controller-runtime"
	ctrlzap "sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Verbosity levels for logr's V(). INFO is always emitted; DEBUG and
// TRACE are enabled by the log_level configuration.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// NewLogger builds a logger at the given verbosity ("info", "debug" or
// "trace") and installs it as the controller-runtime global logger so
// that ctrl.Log and ctrl.LoggerFrom pick it up.
func NewLogger(level string) logr.Logger {
	opts := ctrlzap.Options{
		Development: false,
		DestWriter:  os.Stderr,
	}
	switch level {
	case "debug":
		opts.Level = zapcore.Level(-DEBUG)
	case "trace":
		opts.Level = zapcore.Level(-TRACE)
	}

	logger := ctrlzap.New(ctrlzap.UseFlagOptions(&opts))
	ctrl.SetLogger(logger)
	return logger
}

// NewTestLogger installs a development-mode logger for tests.
func NewTestLogger() logr.Logger {
	logger := ctrlzap.New(ctrlzap.UseDevMode(true))
	ctrl.SetLogger(logger)
	return logger
}
