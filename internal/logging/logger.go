// internal/logging/logger.go
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// New creates the process logger:
// - level parsed from string, info when unknown
// - full RFC3339 timestamps
// - message colored by level when out is a terminal
func New(level string, out io.Writer) *logrus.Entry {
	if out == nil {
		out = os.Stdout
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&consoleFormatter{
		inner: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			DisableColors:   color.NoColor,
			ForceColors:     !color.NoColor,
		},
	})
	l.SetLevel(ParseLevel(level))

	return logrus.NewEntry(l)
}

// ParseLevel maps a string to a logrus level, info by default.
func ParseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// consoleFormatter paints the message by level before delegating to inner.
type consoleFormatter struct {
	inner logrus.Formatter
}

func (f *consoleFormatter) Format(e *logrus.Entry) ([]byte, error) {
	if c := levelColor(e.Level); c != nil {
		e.Message = c.Sprint(e.Message)
	}
	return f.inner.Format(e)
}

func levelColor(l logrus.Level) *color.Color {
	switch l {
	case logrus.InfoLevel:
		return color.New(color.FgGreen)
	case logrus.WarnLevel:
		return color.New(color.FgYellow)
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return color.New(color.FgRed)
	default:
		return nil
	}
}

// Banner prints a one-line blue header.
func Banner(w io.Writer, text string) {
	fmt.Fprintln(w, color.New(color.FgBlue).Sprint(text))
}
