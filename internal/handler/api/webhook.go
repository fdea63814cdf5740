package api

import (
	"io"
	"log/slog"
	"net/http"

	resdto "hof-drops/internal/handler/dto/response"
	"hof-drops/internal/handler/httperr"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader     = "Stripe-Signature"
	maxWebhookBodyBytes = int64(65536)
)

type PaymentVerifier interface {
	Verify(payload []byte, signatureHeader string) (*commands.PaymentEvent, error)
}

type WebhookHandler struct {
	verifier PaymentVerifier
	payments commands.PaymentCommands
}

func NewWebhookHandler(verifier PaymentVerifier, payments commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, payments: payments}
}

// @Summary Payment provider webhook
// @Description Signed payment_intent events; duplicates and unknown types are acknowledged
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Provider signature"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/webhooks/payments [post]
func (h *WebhookHandler) Payments(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		abortBadRequest(c, err, "Unreadable body")
		return
	}

	ev, err := h.verifier.Verify(payload, c.GetHeader(signatureHeader))
	if err != nil {
		if errs.Is(err, commands.ErrInvalidSignature) {
			slog.WarnContext(c.Request.Context(), "webhook signature rejected", "error", err.Error())
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidSignature, "Invalid signature", nil)
			return
		}
		abortBadRequest(c, err, "Malformed event")
		return
	}

	result, err := h.payments.HandlePaymentEvent(c.Request.Context(), *ev)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WebhookResponse{Received: true, Duplicate: result.Duplicate})
}
