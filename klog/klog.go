// Package klog wires go.uber.org/zap, the structured-logging library the
// rest of the pack (DataDog-datadog-agent) depends on, behind a debug
// gate: quiet by default, verbose structured logs when asked for.
package klog

import (
	"os"

	"go.uber.org/zap"
)

// New builds a SugaredLogger. In debug mode it's zap's development config
// (human-readable, debug level, caller info); otherwise a no-op logger so
// normal interpreter runs stay silent on stderr.
func New(debug bool) *zap.SugaredLogger {
	if !debug {
		return zap.NewNop().Sugar()
	}

	cfg := zap.NewDevelopmentConfig()
	logger, err := cfg.Build()
	if err != nil {
		// Development config failing to build means the environment can't
		// give us a writable stderr; fall back to a Nop logger rather than
		// taking the process down over logging.
		os.Stderr.WriteString("klog: failed to build logger: " + err.Error() + "\n")
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
