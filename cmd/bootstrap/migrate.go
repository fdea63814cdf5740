package bootstrap

import (
	"log/slog"

	"hof-drops/internal/infra/migrate"
	"hof-drops/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MigrateModule = fx.Module("migrate",
	fx.Invoke(RunMigrations),
)

// RunMigrations takes the pool so it runs only after the database is reachable.
func RunMigrations(cfg config.Config, _ *pgxpool.Pool) error {
	if !cfg.Migration.AutoMigrate {
		slog.Info("auto-migrate disabled")
		return nil
	}
	if err := migrate.Up(cfg.Migration.Dir, cfg.DB.BuildMigrationURL()); err != nil {
		return err
	}
	slog.Info("migrations applied", "dir", cfg.Migration.Dir)
	return nil
}
