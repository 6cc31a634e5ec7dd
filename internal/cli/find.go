package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkalis/restcat/internal/model"
)

func NewFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find VERB PATH",
		Short: "Find an operation by verb and templated request path",
		Long: `Find an operation by verb and templated request path.

Without --version the first match in catalog traversal order is returned,
which is not version-stable when multiple versions define the same pair.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := runPipeline(cmd)
			if err != nil {
				return err
			}

			verb, requestPath := args[0], args[1]
			version, _ := cmd.Flags().GetString("version")

			var op *model.Operation
			var ok bool
			if version != "" {
				op, ok = p.index.FindVersion(verb, requestPath, version)
			} else {
				op, ok = p.index.Find(verb, requestPath)
			}
			if !ok {
				return fmt.Errorf("no operation %s %s", verb, requestPath)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", op.Key())
			fmt.Fprintf(out, "  category:    %s\n", op.Category)
			fmt.Fprintf(out, "  subcategory: %s\n", op.Subcategory)
			if op.Summary != "" {
				fmt.Fprintf(out, "  summary:     %s\n", op.Summary)
			}
			for _, preview := range op.Previews {
				fmt.Fprintf(out, "  preview:     %s (required=%t)\n", preview.Name, preview.Required)
			}
			for _, param := range op.Parameters {
				fmt.Fprintf(out, "  parameter:   %s (%s)\n", param.Name, param.In)
			}
			for _, sample := range op.CodeSamples {
				fmt.Fprintf(out, "  sample:      %s\n", sample.Lang)
			}
			return nil
		},
	}

	cmd.Flags().String("version", "", "Resolve the operation at this version")

	return cmd
}
