package api

import (
	"errors"
	"net/http"

	reqdto "hof-drops/internal/handler/dto/request"
	resdto "hof-drops/internal/handler/dto/response"
	"hof-drops/internal/handler/middleware"
	"hof-drops/internal/pkg/config"
	"hof-drops/internal/pkg/cookie"
	"hof-drops/internal/usecase/commands"
	"hof-drops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errSessionRequired = errors.New("session id is required")

type ReservationHandler struct {
	cmds      commands.ReservationCommands
	q         queries.ReservationQueries
	cookieCfg config.CookieConfig
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, cookieCfg config.CookieConfig) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, cookieCfg: cookieCfg}
}

// @Summary Reserve inventory
// @Description Hold units of a limited-edition variant for the shopper session
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param request body reqdto.ReserveRequest true "Reserve request"
// @Success 200 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	req.SessionID = sessionFrom(c, req.SessionID)

	result, err := h.cmds.Reserve(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.SessionID != "" {
		middleware.SetSessionID(c, result.SessionID)
	}
	if result.SessionCreated {
		cookie.SetSessionCookie(c, h.cookieCfg, result.SessionID)
	}
	c.JSON(http.StatusOK, resdto.FromReserveResult(result))
}

// @Summary Release session reservations
// @Description Release every active hold of the shopper session
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param request body reqdto.ReleaseRequest false "Release request"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [delete]
func (h *ReservationHandler) ReleaseSession(c *gin.Context) {
	var req reqdto.ReleaseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, err, "Invalid request")
			return
		}
	}
	sessionID := sessionFrom(c, req.GetSessionID())
	if sessionID == "" {
		abortBadRequest(c, errSessionRequired, "Session id is required")
		return
	}

	released, err := h.cmds.ReleaseSession(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReleaseResponse{Released: released})
}

// @Summary Release one reservation
// @Description Release a single hold owned by the shopper session; unknown ids are a no-op
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Param X-Session-ID header string false "Shopper session id"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) ReleaseByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid reservation id")
		return
	}
	sessionID := sessionFrom(c, "")
	if sessionID == "" {
		abortBadRequest(c, errSessionRequired, "Session id is required")
		return
	}

	if err := h.cmds.ReleaseByID(c.Request.Context(), id, sessionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List session reservations
// @Description Active, unexpired holds of the shopper session with remaining time
// @Tags reservations
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} resdto.ReservationListResponse
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	sessionID := sessionFrom(c, "")
	if sessionID == "" {
		c.JSON(http.StatusOK, resdto.FromReservationViews("", nil))
		return
	}

	views, err := h.q.ListForSession(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(sessionID, views))
}

// sessionFrom prefers the body value, then whatever SessionResolver found.
func sessionFrom(c *gin.Context, bodySessionID string) string {
	if bodySessionID != "" {
		return bodySessionID
	}
	return middleware.GetSessionID(c)
}
