package ai

import "sync/atomic"

// debugLoggingEnabled controls per-agent debug logging in the agent systems.
// Checked on hot paths instead of the slog level to keep frames cheap.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables per-agent debug logging.
// Called from main after parsing config.LogLevel.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if per-agent debug logging is enabled.
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("path planned", "agent", e.ID, "steps", len(path))
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
