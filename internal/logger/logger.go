package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldInteger = true
}

// New returns a console logger writing to w at the given level.
// Unknown or empty levels fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05 MST",
	}

	output.FormatLevel = func(i interface{}) string {
		var color string
		var lvl string

		if l, ok := i.(string); ok {
			lvl = strings.ToUpper(l)
			switch lvl {
			case "TRACE":
				color = "\x1b[36m"
			case "DEBUG":
				color = "\x1b[32m"
			case "INFO":
				color = "\x1b[34m"
			case "WARN":
				color = "\x1b[33m"
			case "ERROR":
				color = "\x1b[31m"
			case "FATAL":
				color = "\x1b[31;1m"
			default:
				color = "\x1b[0m"
			}
		}

		return fmt.Sprintf("%s| %-6s|\x1b[0m", color, lvl)
	}

	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("\x1b[36m%s:\x1b[0m", i)
	}

	return zerolog.New(output).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config log_level to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
