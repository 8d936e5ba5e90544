package main

import (
	"sample-app/internal/seed"
	"sample-app/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with sample users, microposts and relationships",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer a.Close()

			svc := service.New(a.repo, service.BcryptVerifier{}, a.log)
			sum, err := seed.New(svc, a.log).Populate(cmd.Context(), seedOptions(a))
			if err != nil {
				return err
			}
			a.log.Info("seed finished",
				zap.Int("users", sum.Users),
				zap.Int("microposts", sum.Microposts),
				zap.Int("relationships", sum.Relationships),
			)
			return nil
		},
	}
}

func seedOptions(a *app) seed.Options {
	return seed.Options{
		Users:             a.cfg.SeedUsers,
		MicropostsPerUser: a.cfg.SeedMicroposts,
		Workers:           a.cfg.WorkerCount,
	}
}
