package migrate

import (
	"errors"
	"log/slog"
	"path/filepath"

	"hof-drops/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // pgx5:// driver
	_ "github.com/golang-migrate/migrate/v4/source/file"     // file:// source
)

// Up applies every pending migration in dir against databaseURL.
func Up(dir, databaseURL string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return errs.Wrapf(err, "resolve migrations dir %q", dir)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(abs), databaseURL)
	if err != nil {
		return errs.Wrap(err, "create migrator")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			slog.Warn("failed to close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errs.Wrap(err, "read migration version")
	}
	slog.Info("database migrations applied", "version", version, "dirty", dirty)
	return nil
}
