package request

import (
	"hof-drops/internal/domain/notification"

	"github.com/google/uuid"
)

type SubscribeRequest struct {
	Email  string `json:"email" binding:"required"`
	Source string `json:"source,omitempty"`
}

func (r SubscribeRequest) ToDomain(productID uuid.UUID) (*notification.DropSubscription, error) {
	return notification.NewDropSubscription(r.Email, productID, r.Source)
}

type RestockRequest struct {
	Quantity int32 `json:"quantity" binding:"required,min=1"`
}
