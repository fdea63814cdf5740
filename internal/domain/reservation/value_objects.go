package reservation

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxSessionIDLength = 128
	DefaultHoldPeriod  = 15 * time.Minute
)

var (
	ErrInvalidSessionID = errors.New("session id must be 1-128 printable characters")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrInvalidHold      = errors.New("hold duration must be positive")
)

// SessionID is the opaque shopper session identifier carried in the cookie.
type SessionID struct {
	value string
}

func NewSessionID(value string) (SessionID, error) {
	v := strings.TrimSpace(value)
	if v == "" || len(v) > MaxSessionIDLength {
		return SessionID{}, ErrInvalidSessionID
	}
	for _, r := range v {
		if r < 0x21 || r > 0x7e {
			return SessionID{}, ErrInvalidSessionID
		}
	}
	return SessionID{value: v}, nil
}

func GenerateSessionID() SessionID {
	return SessionID{value: uuid.NewString()}
}

func (s SessionID) String() string { return s.value }
func (s SessionID) IsZero() bool   { return s.value == "" }

type Quantity struct {
	value int32
}

func NewQuantity(v int) (Quantity, error) {
	if v < 1 || v > math.MaxInt32 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: int32(v)}, nil
}

func (q Quantity) Int32() int32 { return q.value }
func (q Quantity) Int() int     { return int(q.value) }

// HoldPolicy carries the configured hold duration.
type HoldPolicy struct {
	duration time.Duration
}

func NewHoldPolicy(d time.Duration) (HoldPolicy, error) {
	if d <= 0 {
		return HoldPolicy{}, ErrInvalidHold
	}
	return HoldPolicy{duration: d}, nil
}

func (p HoldPolicy) Duration() time.Duration { return p.duration }

func (p HoldPolicy) ExpiresAt(now time.Time) time.Time {
	return now.Add(p.duration)
}
