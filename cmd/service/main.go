package main

import (
	"context"
	"fmt"
	"os"

	"sample-app/internal/config"
	"sample-app/internal/database"
	"sample-app/internal/logging"
	"sample-app/internal/service"
	"sample-app/internal/store"
	"sample-app/internal/store/memory"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	loadConfig      = config.Load
	newLogger       = logging.New
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sample-app",
		Short:         "Microposts, follow graph and feed service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newMigrateCommand(), newSeedCommand())
	return root
}

// app 為各子命令共用的執行環境
type app struct {
	cfg  *config.Config
	log  *zap.Logger
	repo service.Repository
	db   database.DB
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
	_ = a.log.Sync()
}

// bootstrap 讀取設定、建立 logger，並依 STORE_BACKEND 開啟儲存層；
// migrate 為 true 時先執行資料庫遷移
func bootstrap(ctx context.Context, migrate bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log}

	switch cfg.StoreBackend {
	case config.BackendMemory:
		log.Warn("using in-memory store, data is lost on exit")
		a.repo = memory.New()
	default:
		if migrate {
			if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
				a.Close()
				return nil, fmt.Errorf("Migration 執行失敗: %w", err)
			}
		}
		db, err := newPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("DB 連線失敗: %w", err)
		}
		a.db = db
		a.repo = store.NewPostgres(db)
	}
	return a, nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
