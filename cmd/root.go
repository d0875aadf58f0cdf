// Package cmd wires the hamkit command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tphakala/hamkit/cmd/bands"
	"github.com/tphakala/hamkit/cmd/lookup"
	"github.com/tphakala/hamkit/cmd/plan"
	"github.com/tphakala/hamkit/cmd/serve"
	"github.com/tphakala/hamkit/cmd/update"
	"github.com/tphakala/hamkit/cmd/version"
	"github.com/tphakala/hamkit/internal/buildinfo"
	"github.com/tphakala/hamkit/internal/conf"
	"github.com/tphakala/hamkit/internal/logger"
	"github.com/tphakala/hamkit/internal/runtime"
)

// flagBindings maps persistent flags to configuration keys.
var flagBindings = map[string]string{
	"debug":       "debug",
	"snapshot":    "snapshot.path",
	"archive":     "snapshot.archive",
	"clublog-key": "sources.clublog.apikey",
}

// RootCommand creates and returns the root command
func RootCommand(build *buildinfo.Context) *cobra.Command {
	app := &runtime.Context{Build: build}
	var (
		configFile string
		central    *logger.CentralLogger
	)

	rootCmd := &cobra.Command{
		Use:          "hamkit",
		Short:        "Callsign, DXCC and band plan lookups",
		Version:      build.GetVersion(),
		SilenceUsage: true,
	}

	if err := setupFlags(rootCmd, &configFile); err != nil {
		fmt.Printf("error setting up flags: %v\n", err)
	}

	versionCmd := version.Command(build)
	rootCmd.AddCommand(
		lookup.Command(app),
		bands.Command(app),
		plan.Command(app),
		update.Command(app),
		serve.Command(app),
		versionCmd,
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// version needs no configuration
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		cl, err := initialize(app, configFile)
		central = cl
		return err
	}

	cobra.OnFinalize(func() {
		if err := app.Close(); err != nil {
			logger.Global().Module("main").Warn("shutdown", logger.Error(err))
		}
		if central != nil {
			_ = central.Close()
		}
	})

	return rootCmd
}

// initialize loads settings, installs the central logger and builds the
// runtime context shared by the subcommands.
func initialize(app *runtime.Context, configFile string) (*logger.CentralLogger, error) {
	settings, err := conf.Load(configFile)
	if err != nil {
		return nil, err
	}

	central, err := logger.NewCentralLogger(&settings.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.SetGlobal(central)

	if err := app.Setup(settings); err != nil {
		return central, err
	}
	return central, nil
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, configFile *string) error {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(configFile, "config", "c", "", "Path to the configuration file")
	flags.BoolP("debug", "d", false, "Enable debug output")
	flags.String("snapshot", "", "Path of the country database snapshot")
	flags.String("archive", "", "Path of the SQLite snapshot archive")
	flags.String("clublog-key", "", "Club Log API key")

	for name, key := range flagBindings {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("error binding flag %s: %w", name, err)
		}
	}
	return nil
}
