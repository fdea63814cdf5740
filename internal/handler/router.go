package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hof-drops/internal/domain/staff"
	"hof-drops/internal/handler/api"
	"hof-drops/internal/handler/middleware"
	"hof-drops/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Catalog     *api.CatalogHandler
	Order       *api.OrderHandler
	Webhook     *api.WebhookHandler
	Drop        *api.DropHandler
	Admin       *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.SessionResolver(cfg.Cookie))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Reserve},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodDelete, Path: "", Handler: h.Reservation.ReleaseSession},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.ReleaseByID},
		})

		addRoutes(apiGroup.Group("/products"), []route{
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Catalog.Availability},
			{Method: http.MethodGet, Path: "/:id/drop", Handler: h.Catalog.ProductDrop},
		})

		addRoutes(apiGroup.Group("/drops"), []route{
			{Method: http.MethodGet, Path: "/active", Handler: h.Catalog.ActiveDrop},
			{Method: http.MethodPost, Path: "/:productId/subscriptions", Handler: h.Drop.Subscribe},
		})

		addRoutes(apiGroup.Group("/orders"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Order.Create},
			{Method: http.MethodGet, Path: "/:number", Handler: h.Order.Get},
		})

		addRoutes(apiGroup.Group("/webhooks"), []route{
			{Method: http.MethodPost, Path: "/payments", Handler: h.Webhook.Payments},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(staff.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/drops/:productId/notify", Handler: h.Drop.Notify},
				{Method: http.MethodPost, Path: "/variants/:id/restock", Handler: h.Admin.Restock},
				{Method: http.MethodPost, Path: "/reservations/sweep", Handler: h.Admin.Sweep},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
