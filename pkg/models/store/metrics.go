package store

import "github.com/shopspring/decimal"

// OverviewMetrics is the single row returned by the overview aggregation query.
// Counters come straight from COUNT/SUM reductions; averages are derived by the caller.
type OverviewMetrics struct {
	TotalUsers     int64
	NewUsersPeriod int64

	TotalBookings     int64
	NewBookingsPeriod int64
	ConfirmedBookings int64
	PendingBookings   int64
	CanceledBookings  int64

	PackageBookings     int64
	FlightHotelBookings int64
	ItineraryBookings   int64

	TotalTravelers int64

	RevenueAllPayments   decimal.Decimal
	RevenueConfirmedOnly decimal.Decimal
	RevenueNonCanceled   decimal.Decimal

	RecentRevenueAllPayments   decimal.Decimal
	RecentRevenueConfirmedOnly decimal.Decimal
	RecentRevenueNonCanceled   decimal.Decimal

	CompletedPayments int64
}
