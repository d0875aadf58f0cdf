// Package plan implements the band plan query command.
package plan

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tphakala/hamkit/cmd/output"
	"github.com/tphakala/hamkit/internal/band"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/runtime"
)

// Resolver is the band plan surface the command needs.
type Resolver interface {
	Segments(rng band.Range) []band.Segment
	Markers(rng band.Range) []band.Marker
	Bands() *band.Service
}

// Result is the band plan content of a frequency range.
type Result struct {
	Range    band.Range     `yaml:"range"`
	Bands    []band.Band    `yaml:"bands"`
	Segments []band.Segment `yaml:"segments"`
	Markers  []band.Marker  `yaml:"markers"`
}

// Command creates a new cobra.Command listing band plan entries in a range.
func Command(rt *runtime.Context) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "plan <lowMHz> <highMHz>",
		Short: "List bands, segments and notable frequencies in a range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			result, err := Resolve(rt.Resolver, args[0], args[1])
			if err != nil {
				return err
			}
			return Write(cmd.OutOrStdout(), f, result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(output.Text), "Output format: text or yaml")

	return cmd
}

// Resolve queries the band plan for the closed range [low, high] in MHz.
func Resolve(res Resolver, low, high string) (Result, error) {
	lo, err := band.ParseMHz(low)
	if err != nil {
		return Result{}, err
	}
	hi, err := band.ParseMHz(high)
	if err != nil {
		return Result{}, err
	}
	if lo > hi {
		return Result{}, errors.Newf("range start %s is above its end %s", lo, hi).
			Category(errors.CategoryValidation).
			Build()
	}

	rng := band.NewRange(lo, hi)
	return Result{
		Range:    rng,
		Bands:    res.Bands().BandsIn(rng),
		Segments: res.Segments(rng),
		Markers:  res.Markers(rng),
	}, nil
}

// Write prints the result in the requested format.
func Write(w io.Writer, f output.Format, r Result) error {
	if f == output.YAML {
		return output.WriteYAML(w, r)
	}

	p := output.Printer()
	if _, err := p.Fprintf(w, "%s - %s: %d bands\n", output.Hz(p, r.Range.Lower), output.Hz(p, r.Range.Upper), len(r.Bands)); err != nil {
		return err
	}
	for _, s := range r.Segments {
		if _, err := p.Fprintf(w, "  %-6s %s - %s  %s\n", s.Band, output.Hz(p, s.Range.Lower), output.Hz(p, s.Range.Upper), s.Kind); err != nil {
			return err
		}
	}
	for _, m := range r.Markers {
		if _, err := p.Fprintf(w, "  %-6s %s  %s %s\n", m.Band, output.Hz(p, m.Frequency), m.Kind, m.Note); err != nil {
			return err
		}
	}
	return nil
}
