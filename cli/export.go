package cli

import (
	"github.com/spf13/cobra"
	"github.com/unchain-tech/unchain-portal/config/format"
	"github.com/unchain-tech/unchain-portal/utils"
)

func newExportCommand(a *app) *cobra.Command {
	var formatName, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the validated configuration for the site generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.Parse(formatName)
			if err != nil {
				return err
			}
			cfg, err := a.load()
			if err != nil {
				return err
			}
			data, err := cfg.Marshal(f)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = a.out.Write(data)
				return err
			}
			return utils.WriteFileAtomic(output, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", string(format.JSON), "output format: json, yaml or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
