// Package logger provides a structured logging facility based on Zap.
//
// It returns a configured logger instance supporting development
// (console, colored levels) and production (JSON) encodings.
//
// # Run Correlation
//
// Each sync run is tagged with a run id. The WithRunID helper attaches a
// freshly generated id to the logger so all lines of a run can be
// correlated when output from several runs is aggregated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (development) or json (production)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log, runID := logger.WithRunID(log)
//	log.Info("sync started")
package logger
