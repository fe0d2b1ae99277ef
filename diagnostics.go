package i18n

import "log/slog"

// WarnHandler receives non blocking diagnostics from the query path:
// missing keys at both the current and fallback locale, and invalid
// pluralization counts. Attrs alternate key/value pairs, slog style.
// Diagnostics are never surfaced as errors; the lookup still returns a
// renderable string.
type WarnHandler func(msg string, attrs ...any)

func defaultWarnHandler(msg string, attrs ...any) {
	slog.Warn(msg, attrs...)
}
