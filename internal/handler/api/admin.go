package api

import (
	"log/slog"
	"net/http"

	reqdto "hof-drops/internal/handler/dto/request"
	resdto "hof-drops/internal/handler/dto/response"
	"hof-drops/internal/handler/middleware"
	"hof-drops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	inventory    commands.InventoryCommands
	reservations commands.ReservationCommands
}

func NewAdminHandler(inventory commands.InventoryCommands, reservations commands.ReservationCommands) *AdminHandler {
	return &AdminHandler{inventory: inventory, reservations: reservations}
}

// @Summary Restock variant
// @Description Increase the inventory ledger of a variant
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Variant ID"
// @Param request body reqdto.RestockRequest true "Restock request"
// @Success 200 {object} resdto.RestockResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/variants/{id}/restock [post]
func (h *AdminHandler) Restock(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid variant id")
		return
	}
	var req reqdto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.inventory.Restock(c.Request.Context(), variantID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	staffID, _ := middleware.GetStaffID(c)
	slog.InfoContext(c.Request.Context(), "variant restocked",
		"variant_id", variantID, "quantity", req.Quantity, "inventory", result.Inventory, "staff_id", staffID)
	c.JSON(http.StatusOK, resdto.RestockResponse{VariantID: result.VariantID, Inventory: result.Inventory})
}

// @Summary Sweep expired reservations
// @Description Deactivate expired holds and purge expired idempotency keys
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/reservations/sweep [post]
func (h *AdminHandler) Sweep(c *gin.Context) {
	result, err := h.reservations.SweepExpired(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepResult(result))
}
