// Package output renders command results as aligned text or YAML.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/tphakala/hamkit/internal/band"
	"github.com/tphakala/hamkit/internal/errors"
)

// Format selects how results are printed.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, YAML:
		return f, nil
	default:
		return "", errors.Newf("unknown output format %q, expected text or yaml", s).
			Category(errors.CategoryValidation).
			Build()
	}
}

// Printer formats numbers with English digit grouping.
func Printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// WriteYAML encodes v as a YAML document.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// Hz renders a frequency with grouped digits, "14,074,000 Hz".
func Hz(p *message.Printer, f band.Frequency) string {
	return p.Sprintf("%d Hz", uint64(f))
}

// Optional renders a nil pointer as "-".
func Optional[T any](p *message.Printer, format string, v *T) string {
	if v == nil {
		return "-"
	}
	return p.Sprintf(format, *v)
}
