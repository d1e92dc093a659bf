package duckdb

import (
	"context"
	"math/rand"
	"time"

	"github.com/de-tools/travel-atlas/pkg/models/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	demoStatuses     = []string{"confirmed", "confirmed", "confirmed", "pending", "canceled"}
	demoBookingTypes = []string{"package", "flight_hotel", "itinerary"}
)

// DemoData is a generated, internally consistent set of platform records
type DemoData struct {
	Users    []store.User
	Bookings []store.Booking
	Payments []store.Payment
}

// GenerateDemoData creates n users spread over the last year, each with zero to
// three bookings. Completed payments are attached to confirmed bookings and to a
// share of pending ones, so all three revenue candidates differ.
func GenerateDemoData(n int, now time.Time, rnd *rand.Rand) DemoData {
	var data DemoData
	for i := 0; i < n; i++ {
		user := store.User{
			ID:        uuid.NewString(),
			CreatedAt: now.Add(-time.Duration(rnd.Intn(365*24)) * time.Hour),
		}
		data.Users = append(data.Users, user)

		for j := rnd.Intn(4); j > 0; j-- {
			created := user.CreatedAt.Add(time.Duration(rnd.Int63n(int64(now.Sub(user.CreatedAt)) + 1)))
			booking := store.Booking{
				ID:          uuid.NewString(),
				UserID:      user.ID,
				Status:      demoStatuses[rnd.Intn(len(demoStatuses))],
				BookingType: demoBookingTypes[rnd.Intn(len(demoBookingTypes))],
				Persons:     1 + rnd.Intn(5),
				CreatedAt:   created,
			}
			data.Bookings = append(data.Bookings, booking)

			if booking.Status == "canceled" || (booking.Status == "pending" && rnd.Intn(2) == 0) {
				continue
			}
			status := "completed"
			paid := created.Add(time.Duration(rnd.Intn(48)) * time.Hour)
			if paid.After(now) {
				paid = now
			}
			if rnd.Intn(10) == 0 {
				status = "failed"
			}
			data.Payments = append(data.Payments, store.Payment{
				ID:          uuid.NewString(),
				BookingID:   booking.ID,
				Status:      status,
				Amount:      decimal.NewFromInt(int64(150 + rnd.Intn(2500))).Mul(decimal.NewFromInt(int64(booking.Persons))),
				PaymentDate: paid,
			})
		}
	}
	return data
}

// Seed writes data in a single transaction.
func (w *Writer) Seed(ctx context.Context, data DemoData) error {
	return w.InTx(ctx, func(ctx context.Context) error {
		if err := w.AddUsers(ctx, data.Users); err != nil {
			return err
		}
		if err := w.AddBookings(ctx, data.Bookings); err != nil {
			return err
		}
		return w.AddPayments(ctx, data.Payments)
	})
}
