// Package update implements the command that refreshes the country database.
package update

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tphakala/hamkit/cmd/output"
	"github.com/tphakala/hamkit/internal/logger"
	"github.com/tphakala/hamkit/internal/resolver"
	"github.com/tphakala/hamkit/internal/runtime"
)

// Command creates a new cobra.Command that downloads the country files,
// merges them into the current snapshot and persists the result.
func Command(rt *runtime.Context) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Download and merge the country database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			log := logger.Global().Module("update")
			if _, err := rt.Resolver.Restore(cmd.Context()); err != nil {
				log.Warn("starting without previous snapshot", logger.Error(err))
			}

			start := time.Now()
			if err := rt.Resolver.Refresh(cmd.Context()); err != nil {
				return err
			}
			log.Info("country database updated", logger.Duration("elapsed", time.Since(start)))

			return Write(cmd.OutOrStdout(), f, rt.Resolver.Status())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(output.Text), "Output format: text or yaml")

	return cmd
}

// Write prints the resolver status after a refresh.
func Write(w io.Writer, f output.Format, st resolver.Status) error {
	if f == output.YAML {
		return output.WriteYAML(w, st)
	}

	p := output.Printer()
	_, err := p.Fprintf(w, "database %s: %d entities (%d deleted), %d prefix records\n",
		st.Stats.Timestamp.UTC().Format(time.RFC3339), st.Stats.Entities, st.Stats.Deleted, st.Stats.Records)
	if err != nil {
		return err
	}
	for _, src := range st.Sources {
		state := "ok"
		if src.LastError != "" {
			state = src.LastError
		}
		if _, err := p.Fprintf(w, "  %-12s %s\n", src.Name, state); err != nil {
			return err
		}
	}
	return nil
}
