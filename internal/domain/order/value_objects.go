package order

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrNegativeMoney      = errors.New("money cannot be negative")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidName        = errors.New("first and last name are required")
	ErrInvalidAddress     = errors.New("address requires line1, city, postal code and a 2-letter country")
	ErrInvalidCurrency    = errors.New("currency must be a 3-letter ISO code")
	ErrInvalidOrderNumber = errors.New("invalid order number")
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int32) Money {
	return Money{cents: m.cents * int64(n)}
}

type Currency string

func NewCurrency(code string) (Currency, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 3 {
		return "", ErrInvalidCurrency
	}
	return Currency(c), nil
}

func (c Currency) String() string { return string(c) }

type Email struct {
	value string
}

// NewEmail lowercases the address; customers are keyed by email.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }

type Customer struct {
	Email     Email
	FirstName string
	LastName  string
	Phone     string
}

func NewCustomer(email, firstName, lastName, phone string) (Customer, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Customer{}, err
	}
	first, last := strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if first == "" || last == "" {
		return Customer{}, ErrInvalidName
	}
	return Customer{Email: e, FirstName: first, LastName: last, Phone: strings.TrimSpace(phone)}, nil
}

type AddressKind string

const (
	AddressShipping AddressKind = "shipping"
	AddressBilling  AddressKind = "billing"
)

type Address struct {
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
}

func NewAddress(line1, line2, city, region, postalCode, country string) (Address, error) {
	a := Address{
		Line1:      strings.TrimSpace(line1),
		Line2:      strings.TrimSpace(line2),
		City:       strings.TrimSpace(city),
		Region:     strings.TrimSpace(region),
		PostalCode: strings.TrimSpace(postalCode),
		Country:    strings.ToUpper(strings.TrimSpace(country)),
	}
	if a.Line1 == "" || a.City == "" || a.PostalCode == "" || len(a.Country) != 2 {
		return Address{}, ErrInvalidAddress
	}
	return a, nil
}

// Number is the customer-facing order reference: HOF-YYMMDD-XXXXXX.
type Number struct {
	value string
}

const numberAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// GenerateNumber builds a date prefix plus a random suffix read from src
// (crypto/rand when nil). Uniqueness is enforced by the database.
func GenerateNumber(now time.Time, src io.Reader) (Number, error) {
	if src == nil {
		src = rand.Reader
	}
	buf := make([]byte, 6)
	if _, err := io.ReadFull(src, buf); err != nil {
		return Number{}, fmt.Errorf("read order number entropy: %w", err)
	}
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = numberAlphabet[int(b)%len(numberAlphabet)]
	}
	return Number{value: fmt.Sprintf("HOF-%s-%s", now.UTC().Format("060102"), suffix)}, nil
}

func ParseNumber(s string) (Number, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if len(v) != len("HOF-060102-XXXXXX") || !strings.HasPrefix(v, "HOF-") {
		return Number{}, ErrInvalidOrderNumber
	}
	return Number{value: v}, nil
}

func (n Number) String() string { return n.value }
