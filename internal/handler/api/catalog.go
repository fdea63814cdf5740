package api

import (
	"net/http"

	resdto "hof-drops/internal/handler/dto/response"
	"hof-drops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	availability queries.AvailabilityQueries
	drops        queries.DropQueries
}

func NewCatalogHandler(availability queries.AvailabilityQueries, drops queries.DropQueries) *CatalogHandler {
	return &CatalogHandler{availability: availability, drops: drops}
}

// @Summary Product availability
// @Description Per-variant ledger, held and available units; expired holds are swept first
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id}/availability [get]
func (h *CatalogHandler) Availability(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid product id")
		return
	}
	view, err := h.availability.GetProductAvailability(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Active drop
// @Description The live drop, or the next upcoming one
// @Tags drops
// @Produce json
// @Success 200 {object} resdto.DropResponse
// @Failure 404 {object} httperr.Response
// @Router /api/drops/active [get]
func (h *CatalogHandler) ActiveDrop(c *gin.Context) {
	view, err := h.drops.ActiveDrop(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDropView(view))
}

// @Summary Product drop phase
// @Tags drops
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.DropResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id}/drop [get]
func (h *CatalogHandler) ProductDrop(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid product id")
		return
	}
	view, err := h.drops.ProductDrop(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDropView(view))
}
