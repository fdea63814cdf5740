package api

import (
	"net/http"

	reqdto "hof-drops/internal/handler/dto/request"
	resdto "hof-drops/internal/handler/dto/response"
	"hof-drops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DropHandler struct {
	cmds commands.DropCommands
}

func NewDropHandler(cmds commands.DropCommands) *DropHandler {
	return &DropHandler{cmds: cmds}
}

// @Summary Subscribe to a drop
// @Description Register an email for the drop going live; re-subscribing updates the source
// @Tags drops
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body reqdto.SubscribeRequest true "Subscription"
// @Success 201 {object} resdto.SubscribeResponse
// @Success 200 {object} resdto.SubscribeResponse "already subscribed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/drops/{productId}/subscriptions [post]
func (h *DropHandler) Subscribe(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		abortBadRequest(c, err, "Invalid product id")
		return
	}
	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Subscribe(c.Request.Context(), productID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromSubscribeResult(result))
}

// @Summary Notify drop subscribers
// @Description Enqueue a drop_live notification for every subscriber not yet notified
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 202 {object} resdto.NotifyResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/drops/{productId}/notify [post]
func (h *DropHandler) Notify(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		abortBadRequest(c, err, "Invalid product id")
		return
	}
	result, err := h.cmds.NotifySubscribers(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.NotifyResponse{ProductID: result.ProductID, Enqueued: result.Enqueued})
}
