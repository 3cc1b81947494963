// Package log captures bridge events for hap-go.
//
// Operational logging goes through slog. This package records a separate,
// machine-readable trace of everything that crosses the host boundary:
// registration, service installation, host reads and writes, event
// enable/disable and emitted events, accessory state changes and errors.
//
// # Basic Usage
//
//	// Console via slog
//	opts := hap.WithEventLogger(log.NewSlogAdapter(slog.Default()))
//
//	// Binary file
//	fl, _ := log.NewFileLogger("/var/log/hap/bridge.hlog")
//
//	// Both
//	logger := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # Event Types
//
// Every event carries one payload:
//   - Access: host read/write/event-enable and emitted events
//   - Service: a service registration batch
//   - StateChange: accessory bring-up transitions
//   - Error: failures reported by the host or a hook
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys and use
// the .hlog extension. The hap-log command views, exports and summarizes
// them.
package log
