package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hverma/elemental/internal/store"
)

type listOptions struct {
	root       *rootFlags
	property   string
	descending bool
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{root: root}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print all elements sorted by a numeric property",
		Long:  "List prints every element sorted by a numeric property, undefined values last. Available properties: " + strings.Join(store.NumericProperties(), ", ") + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.property, "by", "density", "numeric property to sort by")
	cmd.Flags().BoolVar(&opts.descending, "desc", false, "sort in descending order")
	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	s, err := store.Open()
	if err != nil {
		return fmt.Errorf("load element data: %w", err)
	}

	property := strings.ToLower(strings.TrimSpace(opts.property))
	info, ok := store.PropertyByName(property)
	if !ok || !info.Numeric {
		return fmt.Errorf("no numeric property named %q", opts.property)
	}

	out := cmd.OutOrStdout()
	for _, z := range s.SortedBy(property, opts.descending) {
		value := s.Property(z, property)
		if value != store.NA && info.Unit != "" {
			value += " " + info.Unit
		}
		fmt.Fprintf(out, "%4d  %-3s %-14s %s\n", z, s.Symbol(z), s.Name(z), value)
	}
	return nil
}
