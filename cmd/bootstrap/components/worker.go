package components

import (
	"context"
	"log/slog"

	"hof-drops/internal/pkg/config"
	"hof-drops/internal/usecase/commands"
	"hof-drops/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		RegisterNotificationDispatcher,
		RegisterReservationSweeper,
	),
)

func RegisterNotificationDispatcher(lc fx.Lifecycle, cmds commands.NotificationCommands, cfg config.Config, logger *slog.Logger) {
	t := worker.NewTicker("notification-dispatcher", cfg.Notification.PollInterval, worker.NotificationDispatch(cmds, logger), logger)
	appendTicker(lc, t)
}

func RegisterReservationSweeper(lc fx.Lifecycle, cmds commands.ReservationCommands, cfg config.Config, logger *slog.Logger) {
	t := worker.NewTicker("reservation-sweeper", cfg.Reservation.SweepInterval, worker.ReservationSweep(cmds, logger), logger)
	appendTicker(lc, t)
}

func appendTicker(lc fx.Lifecycle, t *worker.Ticker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			t.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return t.Stop(ctx)
		},
	})
}
