package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"compliancemap/internal/config"
	"compliancemap/internal/loader"
	"compliancemap/pkg/logger"
	"compliancemap/pkg/storage"
)

// restoreCommand constructs the 'restore' subcommand that loads a category
// mapping JSON file and replaces the database mapping with it in a single
// transaction.
func restoreCommand(cfg *config.Config) *cobra.Command {
	var mappingPath string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replaces the database mapping from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			categories, err := loader.Load(ctx, mappingPath)
			if err != nil {
				logger.Fatal(ctx, "could not load mapping file", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			err = strg.WithTx(ctx, func(tx storage.AllStorage) error {
				return tx.ReplaceMapping(ctx, categories)
			})
			if err != nil {
				logger.Fatal(ctx, "could not restore mapping", zap.Error(err))
			}

			logger.Info(ctx, "mapping restored",
				zap.String("path", mappingPath),
				zap.Int("categories", len(categories)),
			)
		},
	}

	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "mapping.json", "Mapping JSON file path")

	return cmd
}
