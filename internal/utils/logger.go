package utils

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

// Note: Logger is initialized before any command runs, config resolution logs through it.
// Level is taken from POTSITE_LOG_LEVEL so it can be raised before flags are parsed
func init() {
	lvl := new(slog.LevelVar)
	lvl.Set(ParseLogLevel(os.Getenv("POTSITE_LOG_LEVEL")))

	JsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	Logger = slog.New(JsonHandler)
}

// ParseLogLevel maps DEBUG, WARN and ERROR to their slog levels. Anything else is INFO
func ParseLogLevel(name string) slog.Level {
	switch name {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
