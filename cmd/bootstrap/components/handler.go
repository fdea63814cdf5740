package components

import (
	"hof-drops/internal/handler"
	"hof-drops/internal/handler/api"
	"hof-drops/internal/handler/middleware"
	"hof-drops/internal/infra/payment"
	"hof-drops/internal/pkg/config"
	"hof-drops/internal/usecase/commands"
	"hof-drops/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewReservationHandler,
		api.NewCatalogHandler,
		api.NewOrderHandler,
		api.NewDropHandler,
		api.NewAdminHandler,
		fx.Annotate(
			NewPaymentVerifier,
			fx.As(new(api.PaymentVerifier)),
		),
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, cfg config.Config) *api.ReservationHandler {
	return api.NewReservationHandler(cmds, q, cfg.Cookie)
}

func NewPaymentVerifier(cfg config.Config) *payment.StripeVerifier {
	return payment.NewStripeVerifier(cfg.Payment)
}

type handlerParams struct {
	fx.In

	Reservation *api.ReservationHandler
	Catalog     *api.CatalogHandler
	Order       *api.OrderHandler
	Webhook     *api.WebhookHandler
	Drop        *api.DropHandler
	Admin       *api.AdminHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Reservation: p.Reservation,
		Catalog:     p.Catalog,
		Order:       p.Order,
		Webhook:     p.Webhook,
		Drop:        p.Drop,
		Admin:       p.Admin,
	}
}
