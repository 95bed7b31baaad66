// Package pkg provides shared utilities for the usbdesc descriptor library.
//
// This package contains common functionality used across the arena and
// descriptor packages, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for arena and parser failures
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with descriptor-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentDescriptor, "configuration added", "value", 1)
//
// # Errors
//
// Failures are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrCapacityExceeded) {
//	    // Arena budget was too small; pre-size with SetTotalSize.
//	}
package pkg
