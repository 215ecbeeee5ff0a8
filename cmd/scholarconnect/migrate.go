package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newMigrateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openBackend(ctx, rt.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.close(context.Background()) }()

			if err := store.migrate(ctx); err != nil {
				return err
			}
			rt.log.Info().Str("backend", store.name).Msg("schema up to date")
			return nil
		},
	}
}
