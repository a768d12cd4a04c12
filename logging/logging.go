package logging

import (
	"document-catalog/config"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger from cfg and writes to stderr.
// Format "json" selects the JSON formatter, anything else the text formatter.
func Setup(cfg config.LogConfig) {
	SetupWithWriter(os.Stderr, cfg)
}

// SetupWithWriter is Setup with an explicit output.
func SetupWithWriter(w io.Writer, cfg config.LogConfig) {
	logrus.SetOutput(w)
	logrus.SetLevel(ParseLevel(cfg.Level))

	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to a logrus level.
// Anything else is info.
func ParseLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
