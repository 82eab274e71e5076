// Package logging builds the logrus logger used by the touchview command.
package logging

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Formatter renders one colored line per entry:
//
//	[15:04:05] DEBUG: gesture transition {engine=..., from=none, to=panning}
type Formatter struct {
	TimestampFormat string
	DisableColors   bool
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	levelText := strings.ToUpper(entry.Level.String())
	if !f.DisableColors {
		levelText = levelColor(entry.Level).Sprint(levelText)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", entry.Time.Format(f.TimestampFormat), levelText, entry.Message)

	if len(entry.Data) > 0 {
		var fields strings.Builder
		fields.WriteString(" {")
		for i, k := range slices.Sorted(maps.Keys(entry.Data)) {
			if i > 0 {
				fields.WriteString(", ")
			}
			fmt.Fprintf(&fields, "%s=%v", k, entry.Data[k])
		}
		fields.WriteString("}")
		if f.DisableColors {
			b.WriteString(fields.String())
		} else {
			b.WriteString(color.New(color.FgWhite, color.Faint).Sprint(fields.String()))
		}
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func levelColor(level logrus.Level) *color.Color {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return color.New(color.FgRed, color.Bold)
	case logrus.WarnLevel:
		return color.New(color.FgYellow, color.Bold)
	case logrus.InfoLevel:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgWhite, color.Faint)
	}
}

// New creates a logger writing to out at the named level
// (trace, debug, info, warn, error).
func New(out io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&Formatter{
		TimestampFormat: "15:04:05",
		DisableColors:   color.NoColor,
	})
	return log, nil
}
