// File: format.go
// Title: Log Output Formats
// Description: Formatters turning entries into JSON, plain text, colored
//              console text or logfmt lines.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-19 v0.2.0: Console colors via lipgloss, deterministic field order

package log

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Format selects a formatter
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatConsole
	FormatLogfmt
)

// String returns the configuration name of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text", "":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	case "logfmt":
		return FormatLogfmt, nil
	}
	return FormatText, mdwerror.Newf("invalid log format: %q", s).
		WithCode(mdwerror.CodeInvalidArgument).
		WithDetail("input", s)
}

// Formatter renders an entry as one line of output including the newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// NewFormatter returns the formatter for format, JSON for unknown values
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return &TextFormatter{TimestampFormat: "15:04:05.000"}
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return &LogfmtFormatter{TimestampFormat: time.RFC3339}
	default:
		return &JSONFormatter{TimestampFormat: time.RFC3339Nano}
	}
}

// JSONFormatter writes one JSON object per entry
type JSONFormatter struct {
	TimestampFormat string
}

// Format implements Formatter
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+8)
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["time"] = entry.Time.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["msg"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.RequestID != "" {
		data["request_id"] = entry.RequestID
	}
	if entry.Duration > 0 {
		data["duration_ms"] = durationMillis(entry.Duration)
	}
	if entry.Err != nil {
		data["error"] = entry.Err.Error()
		if coded, ok := mdwerror.As(entry.Err); ok {
			data["error_code"] = coded.Code().String()
		}
	}

	line, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// TextFormatter writes a compact human readable line
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// Format implements Formatter
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(f.line(entry, func(s string) string { return s }) + "\n"), nil
}

func (f *TextFormatter) line(entry *Entry, level func(string) string) string {
	var b strings.Builder

	if !f.DisableTimestamp {
		b.WriteString(entry.Time.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	b.WriteString(level("[" + entry.Level.Short() + "]"))
	if entry.Logger != "" {
		b.WriteString(" {" + entry.Logger + "}")
	}
	if entry.RequestID != "" {
		b.WriteString(" (req=" + entry.RequestID + ")")
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	for _, k := range entry.Fields.Keys() {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}
	if entry.Err != nil {
		fmt.Fprintf(&b, " error=%q", entry.Err.Error())
	}
	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration=%s", entry.Duration)
	}
	return b.String()
}

var consoleLevelColors = map[Level]lipgloss.Color{
	LevelTrace: lipgloss.Color("245"),
	LevelDebug: lipgloss.Color("39"),
	LevelInfo:  lipgloss.Color("42"),
	LevelWarn:  lipgloss.Color("214"),
	LevelError: lipgloss.Color("196"),
	LevelFatal: lipgloss.Color("201"),
	LevelAudit: lipgloss.Color("63"),
}

// ConsoleFormatter is the text format with the level tag colored
type ConsoleFormatter struct {
	TextFormatter
	styles map[Level]lipgloss.Style
}

// NewConsoleFormatter creates a console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	styles := make(map[Level]lipgloss.Style, len(consoleLevelColors))
	for level, color := range consoleLevelColors {
		styles[level] = lipgloss.NewStyle().Bold(true).Foreground(color)
	}
	return &ConsoleFormatter{
		TextFormatter: TextFormatter{TimestampFormat: "15:04:05"},
		styles:        styles,
	}
}

// Format implements Formatter
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	style, ok := f.styles[entry.Level]
	if !ok {
		return f.TextFormatter.Format(entry)
	}
	return []byte(f.line(entry, func(s string) string { return style.Render(s) }) + "\n"), nil
}

// LogfmtFormatter writes key=value pairs
type LogfmtFormatter struct {
	TimestampFormat string
}

// Format implements Formatter
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString("time=" + entry.Time.Format(f.TimestampFormat))
	b.WriteString(" level=" + entry.Level.String())
	b.WriteString(" msg=" + logfmtValue(entry.Message))
	if entry.Logger != "" {
		b.WriteString(" logger=" + logfmtValue(entry.Logger))
	}
	if entry.RequestID != "" {
		b.WriteString(" request_id=" + logfmtValue(entry.RequestID))
	}
	for _, k := range entry.Fields.Keys() {
		b.WriteString(" " + k + "=" + logfmtValue(fmt.Sprint(entry.Fields[k])))
	}
	if entry.Err != nil {
		b.WriteString(" error=" + logfmtValue(entry.Err.Error()))
	}
	if entry.Duration > 0 {
		b.WriteString(" duration_ms=" + strconv.FormatFloat(durationMillis(entry.Duration), 'f', 3, 64))
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// logfmtValue quotes values that contain spaces, quotes or '='
func logfmtValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

func durationMillis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
