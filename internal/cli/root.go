// Package cli implements the passforge commands.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaultpass/passforge/internal/config"
	"github.com/vaultpass/passforge/internal/logger"
	"github.com/vaultpass/passforge/internal/service"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        config.Config
	svc        *service.GeneratorService
}

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "passforge",
		Short: "passforge generates secure random passwords and rates their strength",
		Long: `passforge generates cryptographically secure random passwords from the
selected character classes and rates passwords with an entropy based score
from 0 (Weak) to 4 (Very Strong).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a config file (yaml, toml or json)")
	root.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	_ = a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newGenerateCommand(a), newStrengthCommand(a))

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	dotEnvErr := config.LoadDotEnv()

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Log); err != nil {
		return err
	}

	if dotEnvErr != nil {
		log.Warn().Err(dotEnvErr).Msg("ignoring .env file")
	}

	a.cfg = cfg
	a.svc = service.NewGeneratorService(nil)

	log.Debug().Str("config", a.v.ConfigFileUsed()).Msg("configuration loaded")

	return nil
}
