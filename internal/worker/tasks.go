package worker

import (
	"context"
	"log/slog"

	"hof-drops/internal/usecase/commands"
)

// NotificationDispatch drains due notification jobs to the broker.
func NotificationDispatch(cmds commands.NotificationCommands, logger *slog.Logger) Task {
	return func(ctx context.Context) error {
		result, err := cmds.DispatchDue(ctx)
		if err != nil {
			return err
		}
		if result.Sent+result.Retried+result.Failed+result.Skipped > 0 {
			logger.Info("notification jobs dispatched",
				"sent", result.Sent, "retried", result.Retried, "failed", result.Failed, "skipped", result.Skipped)
		}
		return nil
	}
}

// ReservationSweep deactivates expired holds and purges expired idempotency keys.
func ReservationSweep(cmds commands.ReservationCommands, logger *slog.Logger) Task {
	return func(ctx context.Context) error {
		result, err := cmds.SweepExpired(ctx)
		if err != nil {
			return err
		}
		if result.Reservations > 0 || result.IdempotencyKeys > 0 {
			logger.Info("expired state swept",
				"reservations", result.Reservations, "idempotency_keys", result.IdempotencyKeys)
		}
		return nil
	}
}
