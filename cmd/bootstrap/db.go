package bootstrap

import (
	"context"
	"log/slog"

	"braceria-backend/internal/infra/db"
	"braceria-backend/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		logger.Error("database connection failed", "host", cfg.DB.Host, "database", cfg.DB.DBName, "error", err)
		return nil, err
	}
	logger.Info("database connection established", "host", cfg.DB.Host, "database", cfg.DB.DBName)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			logger.Info("database pool closed")
			return nil
		},
	})

	return pool, nil
}
