package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hverma/elemental/internal/detail"
	"github.com/hverma/elemental/internal/store"
)

type showOptions struct {
	root  *rootFlags
	width int
}

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := &showOptions{root: root}
	cmd := &cobra.Command{
		Use:   "show <query>",
		Short: "Print the detail panel for one element",
		Long:  "Show resolves a query (name, symbol or atomic number) and prints the element's detail panel to stdout.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts, args[0])
		},
	}
	cmd.Flags().IntVar(&opts.width, "wrap", 0, "wrap long values at this column (0 keeps the default)")
	return cmd
}

func runShow(cmd *cobra.Command, opts *showOptions, query string) error {
	cfg, err := loadConfig(opts.root)
	if err != nil {
		return err
	}
	s, err := store.Open()
	if err != nil {
		return fmt.Errorf("load element data: %w", err)
	}

	z, ok := s.Find(strings.TrimSpace(query))
	if !ok {
		return fmt.Errorf("no element matches %q", query)
	}

	gen := detail.NewGenerator(s)
	gen.SetExcluded(cfg.ExcludedProps)
	if opts.width > 0 {
		gen.SetWidth(opts.width)
	}
	gen.Refresh(z, true)
	fmt.Fprintln(cmd.OutOrStdout(), gen.Content())
	return nil
}
