package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/unchain-tech/unchain-portal/config"
	"github.com/unchain-tech/unchain-portal/logging"
)

type app struct {
	viper     *viper.Viper
	verbosity int
	out       io.Writer
	cfg       *config.Config
}

// Execute runs the command line against os.Args.
func Execute() error {
	return NewRootCommand(os.Stdout).Execute()
}

func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{viper: viper.New(), out: out}

	root := &cobra.Command{
		Use:           "portal",
		Short:         "Validate and export the UNCHAIN Portal site configuration",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.LoadLogging(a.verbosity)
		},
	}
	root.SetOut(out)

	root.PersistentFlags().String("config", config.DefaultConfigPath,
		"configuration file (.yaml, .toml, .json); also "+config.ConfigPathEnv)
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")

	a.viper.SetEnvPrefix(config.ENV_PREFIX)
	bindFlag(a.viper, root.PersistentFlags(), "config")

	root.AddCommand(
		newValidateCommand(a),
		newExportCommand(a),
		newGetCommand(a),
		newShowCommand(a),
	)
	return root
}

// bindFlag ties a flag to the viper key of the same name, which also reads
// PORTAL_<NAME> from the environment.
func bindFlag(v *viper.Viper, flags *pflag.FlagSet, name string) {
	_ = v.BindEnv(name)
	_ = v.BindPFlag(name, flags.Lookup(name))
}

func (a *app) configPath() string {
	return a.viper.GetString("config")
}

// load reads and validates the configuration once per process and
// publishes it as the global configuration.
func (a *app) load() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Load(a.configPath())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.configPath(), err)
	}
	if err := config.SetGlobal(cfg); err != nil {
		log.Warn().Err(err).Str("path", a.configPath()).Msg("configuration not published")
	}
	a.cfg = cfg
	return cfg, nil
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and report every problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "configuration OK: %s (%s)\n", cfg.AbsoluteBaseURL, cfg.Fingerprint[:12])
			return nil
		},
	}
}
