package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hverma/elemental/internal/config"
	"github.com/hverma/elemental/internal/logging"
	"github.com/hverma/elemental/internal/store"
	"github.com/hverma/elemental/internal/tui"
)

// rootFlags carries flag values shared by the root command and every
// subcommand. Sentinel defaults (-1, empty string) mean "not set on the
// command line": only explicitly set flags override the config file.
type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string

	width       int
	separation  int
	indent      int
	convention  string
	scheme      string
	epsilon     float64
	temperature float64
	year        int
	excluded    []string
	lookupURL   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "elemental",
		Short:         "An interactive periodic table for the terminal",
		Long:          "Elemental renders the periodic table in the terminal with classification coloring, an element detail panel, sorted property listings and web lookup.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to the configuration file")
	pf.StringVar(&flags.logFile, "log-file", "", "write structured logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.IntVar(&flags.width, "width", -1, "element cell width")
	pf.IntVar(&flags.separation, "separation", -1, "spaces between element cells")
	pf.IntVar(&flags.indent, "indent", -1, "left indentation of the table")
	pf.StringVar(&flags.convention, "convention", "", "table layout (conventional or ordered)")
	pf.StringVar(&flags.scheme, "scheme", "", "classification scheme or numeric property name")
	pf.Float64Var(&flags.epsilon, "epsilon", -1, "equality tolerance for numeric classification")
	pf.Float64Var(&flags.temperature, "temperature", -1, "reference temperature in Kelvin for by-state classification")
	pf.IntVar(&flags.year, "year", -1, "reference year for by-discovery classification")
	pf.StringSliceVar(&flags.excluded, "excluded", nil, "property names to hide from the detail panel")
	pf.StringVar(&flags.lookupURL, "lookup-url", "", "web lookup URL template (%s symbol, %n name)")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	return cmd
}

// loadConfig reads the config file and layers explicitly set flags on top.
func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if flags.width >= 0 {
		cfg.ElementWidth = flags.width
	}
	if flags.separation >= 0 {
		cfg.ElementSeparation = flags.separation
	}
	if flags.indent >= 0 {
		cfg.Indentation = flags.indent
	}
	if flags.convention != "" {
		cfg.Convention = flags.convention
	}
	if flags.scheme != "" {
		cfg.Scheme = flags.scheme
	}
	if flags.epsilon > 0 {
		cfg.Epsilon = flags.epsilon
	}
	if flags.temperature > 0 {
		cfg.Temperature = flags.temperature
	}
	if flags.year > 0 {
		cfg.Year = flags.year
	}
	if flags.excluded != nil {
		cfg.ExcludedProps = flags.excluded
	}
	if flags.lookupURL != "" {
		cfg.LookupURL = flags.lookupURL
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	cfg.Clamp()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runInteractive(flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// A nil logger is safe to call; file logging is opt-in so the log
	// stream never corrupts the alternate screen.
	var log *logging.Logger
	if flags.logFile != "" {
		l, closer, err := logging.ToFile(flags.logFile, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer closer.Close()
		log = l
	}

	s, err := store.Open()
	if err != nil {
		return fmt.Errorf("load element data: %w", err)
	}

	log.WithFields(map[string]any{
		"scheme":     cfg.Scheme,
		"convention": cfg.Convention,
	}).Info("starting interactive session")

	program := tea.NewProgram(
		tui.New(tui.Config{Store: s, Display: cfg, Log: log}),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run interactive session: %w", err)
	}
	return nil
}
