// Package logger provides structured logging for httpguard using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-tagged loggers with structured fields. The hooks package uses
// it to log guard outcomes.
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("httpguard")
//	log.Info("request suppressed", logger.Fields("status", 404))
package logger
