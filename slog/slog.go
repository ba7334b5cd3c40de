// Package slog provides logging decorators for docent services.
//
// Each decorator wraps a service and logs one structured line per call
// with its duration and error.
package slog
