package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get <path>",
		Short:   "Print one value of the exported configuration",
		Example: "  portal get themeConfig.navbar.items.0.label",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			res, err := cfg.Lookup(args[0])
			if err != nil {
				return err
			}
			if !res.Exists() {
				return fmt.Errorf("no value at %q", args[0])
			}
			fmt.Fprintln(a.out, res.String())
			return nil
		},
	}
}
