package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"callbench/internal/scenario"
)

func newScenariosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the scenario catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			registry := scenario.DefaultRegistry()

			for _, category := range registry.Categories() {
				scenarios, err := registry.Scenarios(category)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s:\n", category)
				for _, sc := range scenarios {
					fmt.Fprintf(out, "  [%d] %s: %s\n", sc.Variant, sc.ID, sc.Name)
					fmt.Fprintf(out, "      goal: %s\n", sc.Goal)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	return cmd
}
