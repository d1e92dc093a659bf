package store

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        string
	CreatedAt time.Time
}

type Booking struct {
	ID          string
	UserID      string
	Status      string
	BookingType string
	Persons     int
	CreatedAt   time.Time
}

type Payment struct {
	ID          string
	BookingID   string
	Status      string
	Amount      decimal.Decimal
	PaymentDate time.Time
}
