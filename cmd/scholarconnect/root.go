package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yritu05/Scholar-Connect/internal/pkg/config"
	"github.com/yritu05/Scholar-Connect/pkg/logger"
)

const serviceName = "scholarconnect"

// runtime is shared by every subcommand once PersistentPreRunE has run.
type runtime struct {
	envFile string
	cfg     *config.Config
	log     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Share research papers and find collaborators",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&rt.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(newServeCmd(rt), newMigrateCmd(rt))
	return root
}

// load reads the optional dotenv file, then the environment, then sets up
// the logger.
func (rt *runtime) load(cmd *cobra.Command) error {
	if rt.envFile != "" {
		if err := godotenv.Load(rt.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", rt.envFile, err)
		}
	}

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	rt.cfg = cfg
	rt.log = logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
	})
	return nil
}
