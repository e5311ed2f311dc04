package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPresetsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.catalog()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, p := range c.Presets {
				fmt.Fprintf(tw, "%s\t%s\t%g bpm\t%s\n", p.Name, p.Category, p.Params.HeartRate, p.Description)
			}
			return tw.Flush()
		},
	}
}
