package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all catalog operations in traversal order",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := runPipeline(cmd)
			if err != nil {
				return err
			}

			versionFilter, _ := cmd.Flags().GetString("version")

			for _, op := range p.index.Operations() {
				if versionFilter != "" && op.Version != versionFilter {
					continue
				}
				taxonomy := op.Category
				if op.Subcategory != "" {
					taxonomy += "/" + op.Subcategory
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-7s %-60s %-16s %s\n",
					op.Verb, op.RequestPath, op.Version, taxonomy)
			}
			return nil
		},
	}

	cmd.Flags().String("version", "", "Only list operations for this version")

	return cmd
}
