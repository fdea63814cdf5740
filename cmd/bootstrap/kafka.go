package bootstrap

import (
	"context"

	"hof-drops/internal/infra/messaging"
	"hof-drops/internal/pkg/config"
	"hof-drops/internal/usecase/commands"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		fx.Annotate(
			NewNotificationPublisher,
			fx.As(new(commands.NotificationPublisher)),
		),
	),
)

func NewNotificationPublisher(lc fx.Lifecycle, cfg config.Config) *messaging.KafkaPublisher {
	publisher := messaging.NewKafkaPublisher(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
