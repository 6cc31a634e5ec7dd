package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkalis/restcat/internal/validate"
)

func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate catalog consistency and per-operation usage examples",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := runPipeline(cmd)
			if err != nil {
				return err
			}

			// A broken catalog makes example validation meaningless,
			// so consistency violations abort the run.
			if violations := validate.Consistency(p.reg, p.docs, p.cat, p.cfg.MinVersions); len(violations) > 0 {
				for _, v := range violations {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
				return fmt.Errorf("consistency check failed with %d violation(s)", len(violations))
			}

			opts := validate.Options{
				Languages:              p.cfg.Examples.Languages,
				RawHTTPLanguage:        p.cfg.Examples.RawHTTPLanguage,
				SDKLanguage:            p.cfg.Examples.SDKLanguage,
				BaselineMediaType:      p.cfg.Examples.BaselineMediaType,
				PreviewMediaTypeFormat: p.cfg.Examples.PreviewMediaTypeFormat,
			}

			violations := validate.Examples(p.index, opts, p.log)
			for _, v := range violations {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			if len(violations) > 0 {
				return fmt.Errorf("example validation failed with %d violation(s)", len(violations))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "validated %d operations across %d versions\n",
				p.index.Len(), len(p.docs))
			return nil
		},
	}
}
