package api

import (
	"errors"
	"net/http"

	reqdto "hof-drops/internal/handler/dto/request"
	resdto "hof-drops/internal/handler/dto/response"
	"hof-drops/internal/usecase/commands"
	"hof-drops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

var (
	errIdempotencyKeyRequired = errors.New("idempotency key is required")
	errInvalidIdempotencyKey  = errors.New("invalid idempotency key format")
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Finalize checkout: order, items, inventory decrement and hold release in one transaction
// @Tags orders
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key (uuid)"
// @Param X-Session-ID header string false "Shopper session id"
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Success 200 {object} resdto.OrderResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	key, err := idempotencyKey(c)
	if err != nil {
		abortBadRequest(c, err, err.Error())
		return
	}
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	sessionID := sessionFrom(c, "")
	if sessionID == "" {
		abortBadRequest(c, errSessionRequired, "Session id is required")
		return
	}

	result, err := h.cmds.CreateOrder(c.Request.Context(), req, sessionID, key)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := resdto.FromOrderView(result.Order)
	if result.IsReplayed {
		resp.IsReplayed = true
		c.JSON(http.StatusOK, resp)
		return
	}
	c.Header("Location", "/api/orders/"+resp.OrderNumber)
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get order
// @Description Order by number, visible only to the session that placed it
// @Tags orders
// @Produce json
// @Param number path string true "Order number"
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{number} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	view, err := h.q.GetByNumber(c.Request.Context(), c.Param("number"), sessionFrom(c, ""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errInvalidIdempotencyKey
	}
	return key, nil
}
