// Package logging builds the charmbracelet loggers used across slide2048.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Prefix is attached to every log line.
const Prefix = "slide2048"

// Options configures New.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	Format string // text, logfmt or json; empty means text
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	formatter, err := parseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
		Formatter:       formatter,
	})
	logger.SetStyles(levelStyles())
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func parseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return log.TextFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("logging: unknown format %q", format)
	}
}

// levelStyles colours level labels with the 256-colour ANSI palette.
func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = styles.Levels[log.DebugLevel].Foreground(lipgloss.Color("245"))
	styles.Levels[log.InfoLevel] = styles.Levels[log.InfoLevel].Foreground(lipgloss.Color("6"))
	styles.Levels[log.WarnLevel] = styles.Levels[log.WarnLevel].Foreground(lipgloss.Color("208"))
	styles.Levels[log.ErrorLevel] = styles.Levels[log.ErrorLevel].Foreground(lipgloss.Color("9"))
	styles.Prefix = styles.Prefix.Foreground(lipgloss.Color("11"))
	return styles
}
