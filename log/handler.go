// Package log provides the structured logging (slog) setup for sdklayout.
// Records are rendered by charmbracelet/log, which implements slog.Handler.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// DefaultPrefix is printed in front of every record.
const DefaultPrefix = "sdklayout"

// Format selects how records are rendered.
type Format string

const (
	// FormatText is the human-readable, optionally colored, console format.
	FormatText Format = "text"
	// FormatJSON writes one JSON object per record.
	FormatJSON Format = "json"
	// FormatLogfmt writes key=value pairs.
	FormatLogfmt Format = "logfmt"
)

// HandlerOption configures the handler returned by NewHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	prefix    string
	format    Format
	level     slog.Level
	timestamp bool
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level:  slog.LevelInfo,
		prefix: DefaultPrefix,
		format: FormatText,
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithPrefix replaces DefaultPrefix. An empty prefix disables it.
func WithPrefix(prefix string) HandlerOption {
	return func(c *handlerConfig) {
		c.prefix = prefix
	}
}

// WithTimestamp enables timestamps on every record.
func WithTimestamp(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.timestamp = enabled
	}
}

// WithFormat selects the record format. Unknown formats fall back to text.
func WithFormat(format Format) HandlerOption {
	return func(c *handlerConfig) {
		c.format = format
	}
}

// NewHandler creates a slog.Handler writing to w. A nil writer means stderr.
func NewHandler(w io.Writer, opts ...HandlerOption) slog.Handler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if w == nil {
		w = os.Stderr
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Prefix:          cfg.prefix,
		Level:           charmlog.Level(cfg.level),
		ReportTimestamp: cfg.timestamp,
		Formatter:       formatter(cfg.format),
	})
}

// New is shorthand for slog.New(NewHandler(w, opts...)).
func New(w io.Writer, opts ...HandlerOption) *slog.Logger {
	return slog.New(NewHandler(w, opts...))
}

func formatter(f Format) charmlog.Formatter {
	switch f {
	case FormatJSON:
		return charmlog.JSONFormatter
	case FormatLogfmt:
		return charmlog.LogfmtFormatter
	default:
		return charmlog.TextFormatter
	}
}

// ParseLevel maps a level name such as "debug" or "WARN" to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	lvl, err := charmlog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return slog.Level(lvl), nil
}

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatLogfmt:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return FormatText, fmt.Errorf("invalid log format %q", s)
	}
}
