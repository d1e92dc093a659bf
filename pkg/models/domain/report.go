package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is the business overview produced for one analysis window
type Report struct {
	Metrics  RawMetrics
	Revenue  RevenueBreakdown
	Derived  DerivedMetrics
	Insights []Insight
	Metadata ReportMetadata
}

// RawMetrics holds counters and sums computed by the aggregation query
type RawMetrics struct {
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

	TotalTravelers         int64
	AvgTravelersPerBooking decimal.Decimal

	AvgBookingValue         decimal.Decimal
	BookingConfirmationRate decimal.Decimal // percent, 0..100
}

// RevenueCandidates are the three revenue totals for one time scope
type RevenueCandidates struct {
	AllPayments   decimal.Decimal
	ConfirmedOnly decimal.Decimal
	NonCanceled   decimal.Decimal
}

type RevenueMethod string

const (
	RevenueMethodConfirmedOnly RevenueMethod = "confirmed_bookings_only"
	RevenueMethodNonCanceled   RevenueMethod = "non_canceled_bookings"
	RevenueMethodAllPayments   RevenueMethod = "all_successful_payments"
)

// RevenueBreakdown keeps every candidate next to the selected figures for auditability
type RevenueBreakdown struct {
	Total  RevenueCandidates
	Recent RevenueCandidates

	Method        RevenueMethod
	SelectedTotal decimal.Decimal
	// SelectedRecent falls back to the non-canceled figure when the confirmed-only method wins.
	SelectedRecent decimal.Decimal
}

type DerivedMetrics struct {
	DailyRevenueAvg         decimal.Decimal
	EstimatedMonthlyRevenue decimal.Decimal
	EstimatedProfit         decimal.Decimal
}

type ReportMetadata struct {
	GeneratedAt time.Time
	// AnalysisPeriodDays is the caller's window, used for rate derivation only.
	AnalysisPeriodDays int
	// RecentPeriodDays is the fixed sub-window applied inside the aggregation.
	RecentPeriodDays int
}
