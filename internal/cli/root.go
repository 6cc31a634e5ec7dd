package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkalis/restcat/internal/config"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "restcat",
		Short:   "restcat - reconcile versioned REST API schemas into one validated catalog",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	config.BindCommonFlags(root)

	root.AddCommand(
		NewValidateCmd(),
		NewListCmd(),
		NewFindCmd(),
	)

	return root
}
