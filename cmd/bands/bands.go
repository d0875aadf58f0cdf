// Package bands implements the frequency to band command.
package bands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tphakala/hamkit/cmd/output"
	"github.com/tphakala/hamkit/internal/band"
	"github.com/tphakala/hamkit/internal/runtime"
)

// Resolver is the band lookup surface the command needs.
type Resolver interface {
	Band(f band.Frequency) (band.Band, bool)
	Segments(rng band.Range) []band.Segment
}

// Result describes one frequency.
type Result struct {
	Frequency band.Frequency `yaml:"frequency"`
	Band      band.Band      `yaml:"band,omitempty"`
	Segments  []band.Segment `yaml:"segments,omitempty"`
}

// Command creates a new cobra.Command that maps frequencies to bands.
func Command(rt *runtime.Context) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "band <MHz>...",
		Short: "Show the band and band-plan segments of frequencies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			results, err := Resolve(rt.Resolver, args)
			if err != nil {
				return err
			}
			return Write(cmd.OutOrStdout(), f, results)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(output.Text), "Output format: text or yaml")

	return cmd
}

// Resolve parses each MHz argument and classifies it.
func Resolve(res Resolver, args []string) ([]Result, error) {
	results := make([]Result, 0, len(args))
	for _, arg := range args {
		freq, err := band.ParseMHz(arg)
		if err != nil {
			return nil, err
		}
		r := Result{Frequency: freq}
		if b, ok := res.Band(freq); ok {
			r.Band = b
			r.Segments = res.Segments(band.NewRange(freq, freq))
		}
		results = append(results, r)
	}
	return results, nil
}

// Write prints results in the requested format.
func Write(w io.Writer, f output.Format, results []Result) error {
	if f == output.YAML {
		return output.WriteYAML(w, results)
	}

	p := output.Printer()
	for _, r := range results {
		name := string(r.Band)
		if name == "" {
			name = "out of band"
		}
		kinds := make([]string, 0, len(r.Segments))
		for _, s := range r.Segments {
			kinds = append(kinds, string(s.Kind))
		}
		if _, err := p.Fprintf(w, "%-18s %-12s %s\n", output.Hz(p, r.Frequency), name, strings.Join(kinds, ", ")); err != nil {
			return err
		}
	}
	return nil
}
