package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Pipeline
	FieldPass     = "pass"
	FieldPasses   = "passes"
	FieldWorkers  = "workers"
	FieldModule   = "module"
	FieldNode     = "node"
	FieldKind     = "kind"
	FieldOwner    = "owner"
	FieldFallback = "fallback"
	FieldTree     = "tree"

	// Identifiers
	FieldIdentifier = "identifier"
	FieldEscaped    = "escaped"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Logging
	FieldVerbosity = "verbosity"

	// Counts and sizes
	FieldCount = "count"

	// Files and paths
	FieldFile = "file"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Pipeline struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewPipeline() *Pipeline {
//	    return &Pipeline{logger: logger.ComponentLogger("lowering")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	passLogger := logger.ChildLogger(baseLogger, logger.FieldPass, pass.Name())
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
