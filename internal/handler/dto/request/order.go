package request

import (
	"hof-drops/internal/domain/order"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone,omitempty"`
}

type AddressRequest struct {
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city" binding:"required"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

func (a AddressRequest) ToDomain() (order.Address, error) {
	return order.NewAddress(a.Line1, a.Line2, a.City, a.Region, a.PostalCode, a.Country)
}

type OrderItemRequest struct {
	ProductID uuid.UUID  `json:"productId" binding:"required"`
	VariantID *uuid.UUID `json:"variantId,omitempty"`
	Quantity  int32      `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Customer        CustomerRequest    `json:"customer" binding:"required"`
	ShippingAddress AddressRequest     `json:"shippingAddress" binding:"required"`
	BillingAddress  *AddressRequest    `json:"billingAddress,omitempty"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingCents   int64              `json:"shippingCents"`
	TaxCents        int64              `json:"taxCents"`
	Currency        string             `json:"currency,omitempty"`
	PaymentIntentID string             `json:"paymentIntentId,omitempty"`
}

// OrderDraft is the validated, catalog-independent part of an order request.
type OrderDraft struct {
	Customer        order.Customer
	Shipping        order.Address
	Billing         order.Address
	ShippingCost    order.Money
	Tax             order.Money
	Currency        order.Currency
	PaymentIntentID string
}

func (r CreateOrderRequest) ToDomain() (*OrderDraft, error) {
	customer, err := order.NewCustomer(r.Customer.Email, r.Customer.FirstName, r.Customer.LastName, r.Customer.Phone)
	if err != nil {
		return nil, err
	}

	shipping, err := r.ShippingAddress.ToDomain()
	if err != nil {
		return nil, err
	}
	billing := shipping
	if r.BillingAddress != nil {
		if billing, err = r.BillingAddress.ToDomain(); err != nil {
			return nil, err
		}
	}

	shippingCost, err := order.NewMoney(r.ShippingCents)
	if err != nil {
		return nil, err
	}
	tax, err := order.NewMoney(r.TaxCents)
	if err != nil {
		return nil, err
	}

	code := r.Currency
	if code == "" {
		code = "USD"
	}
	currency, err := order.NewCurrency(code)
	if err != nil {
		return nil, err
	}

	return &OrderDraft{
		Customer:        customer,
		Shipping:        shipping,
		Billing:         billing,
		ShippingCost:    shippingCost,
		Tax:             tax,
		Currency:        currency,
		PaymentIntentID: r.PaymentIntentID,
	}, nil
}
