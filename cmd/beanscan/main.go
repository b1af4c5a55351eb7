package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/beanscan/config"
	"github.com/dhamidi/beanscan/java/scanner"
	"github.com/dhamidi/beanscan/property"
)

const version = "0.1.0"

// app carries the configuration loaded before any subcommand runs.
type app struct {
	configPath string
	config     *config.Config
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "beanscan",
		Short:         "Resolve the serializable properties of compiled Java classes",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./beanscan.yaml)")
	flags.StringSliceP("classpath", "c", nil, "directories, jars and class files to index")
	flags.Bool("private-properties", true, "treat non-public fields and accessors as visible")
	flags.StringSlice("adapters", nil, "annotation adapters to enable (schema, jsonb, jackson, jaxb)")
	flags.Int("cache-size", 256, "number of memoized resolutions, 0 disables caching")
	flags.Int("workers", 0, "concurrent resolutions for scan (default number of CPUs)")
	flags.CountP("verbose", "v", "increase log verbosity")
	flags.String("log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newPropertiesCmd(a))
	rootCmd.AddCommand(newScanCmd(a))
	rootCmd.AddCommand(newDumpCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.config = cfg

	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, path)
	return nil
}

// resolver indexes the configured classpath.
func (a *app) resolver() (*property.Resolver, error) {
	if len(a.config.Classpath) == 0 {
		return nil, fmt.Errorf("no classpath given, use --classpath or the classpath config key")
	}
	index, err := scanner.LoadIndex(a.config.Classpath...)
	if err != nil {
		return nil, fmt.Errorf("loading classpath: %w", err)
	}
	opts, err := a.config.ResolverOptions()
	if err != nil {
		return nil, err
	}
	return property.NewResolver(index, opts)
}
