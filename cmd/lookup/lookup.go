// Package lookup implements the callsign lookup command.
package lookup

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tphakala/hamkit/cmd/output"
	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/runtime"
)

// Resolver is the lookup surface the command needs.
type Resolver interface {
	LookupCallsign(callsign string, at time.Time) (country.Entity, bool)
}

// Result is the outcome for one callsign.
type Result struct {
	Callsign string          `yaml:"callsign"`
	Found    bool            `yaml:"found"`
	ISO      string          `yaml:"iso,omitempty"`
	Entity   *country.Entity `yaml:"entity,omitempty"`
}

// Command creates a new cobra.Command for resolving callsigns to DXCC entities.
func Command(rt *runtime.Context) *cobra.Command {
	var (
		at     string
		format string
	)

	cmd := &cobra.Command{
		Use:   "lookup <callsign>...",
		Short: "Resolve callsigns to DXCC entities",
		Long: `Resolve one or more callsigns against the country database.
The database is restored from the local snapshot and refreshed when stale.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			when, err := ParseTime(at, time.Now())
			if err != nil {
				return err
			}
			if err := rt.EnsureDatabase(cmd.Context()); err != nil {
				return err
			}
			return Write(cmd.OutOrStdout(), f, Resolve(rt.Resolver, args, when))
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Resolve as of this date (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVarP(&format, "format", "f", string(output.Text), "Output format: text or yaml")

	return cmd
}

// ParseTime accepts an RFC3339 timestamp or a plain UTC date. An empty value
// yields now.
func ParseTime(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, errors.Newf("invalid --at value %q", s).
			Category(errors.CategoryValidation).
			Build()
	}
	return t, nil
}

// Resolve looks up each callsign in order.
func Resolve(res Resolver, callsigns []string, at time.Time) []Result {
	results := make([]Result, 0, len(callsigns))
	for _, call := range callsigns {
		r := Result{Callsign: country.NormalizeCallsign(call)}
		if entity, ok := res.LookupCallsign(call, at); ok {
			r.Found = true
			r.ISO = entity.ID.ISO()
			r.Entity = &entity
		}
		results = append(results, r)
	}
	return results
}

// Write prints results in the requested format.
func Write(w io.Writer, f output.Format, results []Result) error {
	if f == output.YAML {
		return output.WriteYAML(w, results)
	}

	p := output.Printer()
	for _, r := range results {
		if !r.Found {
			if _, err := p.Fprintf(w, "%-12s not found\n", r.Callsign); err != nil {
				return err
			}
			continue
		}
		e := r.Entity
		iso := r.ISO
		if iso == "" {
			iso = "-"
		}
		_, err := p.Fprintf(w, "%-12s %-6s %s (%d, %s) %s CQ %s ITU %s\n",
			r.Callsign, e.Prefix, e.Name, e.ID, iso, e.Continent,
			output.Optional(p, "%d", e.CQZone),
			output.Optional(p, "%d", e.ITUZone))
		if err != nil {
			return err
		}
	}
	return nil
}
