package overview

import (
	"github.com/de-tools/travel-atlas/pkg/models/domain"
	"github.com/de-tools/travel-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

const daysPerMonth = 30

var hundred = decimal.NewFromInt(100)

// DeriveMetrics computes the figures that depend on the selected revenue method.
// A non-positive window yields a zero daily average.
func DeriveMetrics(revenue domain.RevenueBreakdown, windowDays int, profitShare decimal.Decimal) domain.DerivedMetrics {
	daily := decimal.Zero
	if windowDays > 0 {
		daily = revenue.SelectedRecent.Div(decimal.NewFromInt(int64(windowDays))).Round(2)
	}

	return domain.DerivedMetrics{
		DailyRevenueAvg:         daily,
		EstimatedMonthlyRevenue: daily.Mul(decimal.NewFromInt(daysPerMonth)).Round(2),
		EstimatedProfit:         revenue.SelectedTotal.Mul(profitShare).Round(2),
	}
}

// RawMetricsFromStore turns the aggregation row into the report's metric bag.
func RawMetricsFromStore(m store.OverviewMetrics) domain.RawMetrics {
	return domain.RawMetrics{
		TotalUsers:              m.TotalUsers,
		NewUsersPeriod:          m.NewUsersPeriod,
		TotalBookings:           m.TotalBookings,
		NewBookingsPeriod:       m.NewBookingsPeriod,
		ConfirmedBookings:       m.ConfirmedBookings,
		PendingBookings:         m.PendingBookings,
		CanceledBookings:        m.CanceledBookings,
		PackageBookings:         m.PackageBookings,
		FlightHotelBookings:     m.FlightHotelBookings,
		ItineraryBookings:       m.ItineraryBookings,
		TotalTravelers:          m.TotalTravelers,
		AvgTravelersPerBooking:  ratio(decimal.NewFromInt(m.TotalTravelers), m.TotalBookings),
		AvgBookingValue:         ratio(m.RevenueAllPayments, m.CompletedPayments),
		BookingConfirmationRate: percent(m.ConfirmedBookings, m.TotalBookings),
	}
}

func candidatesFromStore(m store.OverviewMetrics) (total, recent domain.RevenueCandidates) {
	total = domain.RevenueCandidates{
		AllPayments:   m.RevenueAllPayments,
		ConfirmedOnly: m.RevenueConfirmedOnly,
		NonCanceled:   m.RevenueNonCanceled,
	}
	recent = domain.RevenueCandidates{
		AllPayments:   m.RecentRevenueAllPayments,
		ConfirmedOnly: m.RecentRevenueConfirmedOnly,
		NonCanceled:   m.RecentRevenueNonCanceled,
	}
	return total, recent
}

// ratio returns sum/count rounded to 2 places, or 0 when count is 0.
func ratio(sum decimal.Decimal, count int64) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(count)).Round(2)
}

// percent returns part/total*100 rounded to 2 places, or 0 when total is 0.
func percent(part, total int64) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(total)).Round(2)
}
