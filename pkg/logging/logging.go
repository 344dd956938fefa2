// Package logging builds the progress logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/tomcumming/tatoeba-easy-translations/pkg/config"
)

// New creates a *slog.Logger writing to w.
//
// Format "json" produces JSON lines; anything else produces text.
// Level is one of debug, info, warn, error (case-insensitive); defaults to info.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
