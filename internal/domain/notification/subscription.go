package notification

import (
	"errors"
	"strings"

	"hof-drops/internal/domain/order"

	"github.com/google/uuid"
)

const (
	DefaultSource   = "product_page"
	MaxSourceLength = 64
)

var ErrInvalidSource = errors.New("source must be at most 64 characters of [a-z0-9_-]")

// DropSubscription asks to be told when a limited-edition drop goes live.
// One row per (email, product).
type DropSubscription struct {
	email     order.Email
	productID uuid.UUID
	source    string
}

func NewDropSubscription(email string, productID uuid.UUID, source string) (*DropSubscription, error) {
	e, err := order.NewEmail(email)
	if err != nil {
		return nil, err
	}
	src, err := normalizeSource(source)
	if err != nil {
		return nil, err
	}
	return &DropSubscription{email: e, productID: productID, source: src}, nil
}

func normalizeSource(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return DefaultSource, nil
	}
	if len(s) > MaxSourceLength {
		return "", ErrInvalidSource
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '-') {
			return "", ErrInvalidSource
		}
	}
	return s, nil
}

func (s *DropSubscription) Email() order.Email   { return s.email }
func (s *DropSubscription) ProductID() uuid.UUID { return s.productID }
func (s *DropSubscription) Source() string       { return s.source }
