package components

import (
	"hof-drops/internal/domain/reservation"
	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/config"
	"hof-drops/internal/usecase"
	"hof-drops/internal/usecase/commands"
	"hof-drops/internal/usecase/queries"
	"hof-drops/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewHoldPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewOrderUseCase,
		commands.NewPaymentUseCase,
		commands.NewDropUseCase,
		commands.NewInventoryUseCase,
		NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewDropQueries,
		queries.NewOrderQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewHoldPolicy(cfg config.Config) (reservation.HoldPolicy, error) {
	return reservation.NewHoldPolicy(cfg.Reservation.HoldDuration)
}

func NewNotificationCommands(
	uow shared.UnitOfWork,
	publisher commands.NotificationPublisher,
	clock clock.Clock,
	cfg config.Config,
) commands.NotificationCommands {
	return commands.NewNotificationUseCase(uow, publisher, clock, cfg.Notification.BatchSize, cfg.Notification.MaxAttempts)
}
