// Package observability provides logging, metrics, and tracing for brood.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds run context to a logger.
// Returns a new logger with the run_id field.
func EnrichLogger(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("run_id", runID))
}

// LogBirth logs the creation of a person.
func LogBirth(logger *slog.Logger, personID, name string) {
	if logger == nil {
		return
	}
	logger.Debug("person created",
		slog.String("person_id", personID),
		slog.String("name", name),
	)
}

// LogRegistered logs a person joining a household.
func LogRegistered(logger *slog.Logger, personID, name string, handle, size int) {
	if logger == nil {
		return
	}
	logger.Debug("person registered",
		slog.String("person_id", personID),
		slog.String("name", name),
		slog.Int("handle", handle),
		slog.Int("household_size", size),
	)
}

// LogRegisterError logs a rejected registration.
func LogRegisterError(logger *slog.Logger, personID string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("registration rejected",
		slog.String("person_id", personID),
		slog.String("error", err.Error()),
	)
}

// LogGathering logs the membership announcement.
func LogGathering(logger *slog.Logger, size int) {
	if logger == nil {
		return
	}
	logger.Info("household gathered",
		slog.Int("household_size", size),
	)
}

// LogRunStart logs the start of a run.
func LogRunStart(logger *slog.Logger, runID string, people int) {
	if logger == nil {
		return
	}
	logger.Info("run starting",
		slog.String("run_id", runID),
		slog.Int("people", people),
	)
}

// LogRunComplete logs successful run completion.
func LogRunComplete(logger *slog.Logger, runID string, durationMs float64, size int) {
	if logger == nil {
		return
	}
	logger.Info("run completed",
		slog.String("run_id", runID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("household_size", size),
	)
}

// LogRunError logs run failure.
func LogRunError(logger *slog.Logger, runID string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("run failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCensusError logs a census write failure.
func LogCensusError(logger *slog.Logger, personID string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("census write failed",
		slog.String("person_id", personID),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
