package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"drillcoach/internal/config"
	"drillcoach/internal/engine"
	"drillcoach/internal/storage"
)

func resolveDBPath() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return storage.ResolveDBPath()
}

func openKV(ctx context.Context) (*storage.KV, func(), error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return storage.NewKV(db), cleanup, nil
}

func openStore(ctx context.Context) (*engine.Store, *storage.KV, func(), error) {
	kv, cleanup, err := openKV(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := engine.NewStore(ctx, kv)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return store, kv, cleanup, nil
}

func newDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "db",
		Short: "Print the database location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveDBPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
