package main

import (
	"sample-app/internal/handler"
	mw "sample-app/internal/middleware"
	"sample-app/internal/router"
	"sample-app/internal/seed"
	"sample-app/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	var (
		skipMigrate bool
		withSeed    bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context(), !skipMigrate)
			if err != nil {
				return err
			}
			defer a.Close()

			tokens, err := service.NewTokenIssuer(a.cfg.JWTSecret, a.cfg.TokenTTL)
			if err != nil {
				return err
			}
			svc := service.New(a.repo, service.BcryptVerifier{}, a.log)

			if withSeed {
				sum, err := seed.New(svc, a.log).Populate(cmd.Context(), seedOptions(a))
				if err != nil {
					return err
				}
				a.log.Info("seeded", zap.Int("users", sum.Users))
			}

			e := echo.New()
			e.HideBanner = true
			e.Validator = handler.NewValidator()
			e.Use(middleware.Recover())
			e.Use(middleware.RequestID())
			e.Use(mw.RequestLogger(a.log))

			router.Setup(e, a.repo, svc, tokens)

			a.log.Info("listening", zap.String("addr", a.cfg.ServerAddr), zap.String("store", a.cfg.StoreBackend))
			return startServer(e, a.cfg.ServerAddr)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not run database migrations on start")
	cmd.Flags().BoolVar(&withSeed, "seed", false, "populate sample data before serving")
	return cmd
}
