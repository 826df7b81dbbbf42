// Package logger provides a structured logging facility based on Zap.
//
// It returns a configured logger instance supporting both development
// (console) and production (json) output. All pipeline stages receive a
// *zap.Logger from here; nothing in the repository logs through the
// standard library.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("dataset built")
package logger
