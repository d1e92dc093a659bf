package adapters

import (
	"github.com/de-tools/travel-atlas/pkg/models/api"
	"github.com/de-tools/travel-atlas/pkg/models/domain"
)

func MapInsightKindDomainToApi(k domain.InsightKind) api.InsightKind {
	switch k {
	case domain.InsightWarning:
		return api.InsightWarning
	default:
		return api.InsightInfo
	}
}

func MapPriorityDomainToApi(p domain.Priority) api.Priority {
	switch p {
	case domain.PriorityHigh:
		return api.PriorityHigh
	default:
		return api.PriorityLow
	}
}

func MapInsightDomainToApi(i domain.Insight) api.Insight {
	return api.Insight{
		Type:              MapInsightKindDomainToApi(i.Kind),
		Title:             i.Title,
		Message:           i.Message,
		RecommendedAction: i.RecommendedAction,
		Priority:          MapPriorityDomainToApi(i.Priority),
	}
}

func MapMetricsDomainToApi(m domain.RawMetrics) api.Metrics {
	return api.Metrics{
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
		AvgTravelersPerBooking:  m.AvgTravelersPerBooking.InexactFloat64(),
		AvgBookingValue:         m.AvgBookingValue.InexactFloat64(),
		BookingConfirmationRate: m.BookingConfirmationRate.InexactFloat64(),
	}
}

func MapRevenueDomainToApi(r domain.RevenueBreakdown) api.Revenue {
	return api.Revenue{
		AllPayments:         r.Total.AllPayments.InexactFloat64(),
		ConfirmedOnly:       r.Total.ConfirmedOnly.InexactFloat64(),
		NonCanceled:         r.Total.NonCanceled.InexactFloat64(),
		RecentAllPayments:   r.Recent.AllPayments.InexactFloat64(),
		RecentConfirmedOnly: r.Recent.ConfirmedOnly.InexactFloat64(),
		RecentNonCanceled:   r.Recent.NonCanceled.InexactFloat64(),
		Method:              string(r.Method),
		SelectedTotal:       r.SelectedTotal.InexactFloat64(),
		SelectedRecent:      r.SelectedRecent.InexactFloat64(),
	}
}

func MapReportDomainToApi(r domain.Report) api.Report {
	res := api.Report{
		Metrics: MapMetricsDomainToApi(r.Metrics),
		Revenue: MapRevenueDomainToApi(r.Revenue),
		Derived: api.Derived{
			DailyRevenueAvg:         r.Derived.DailyRevenueAvg.InexactFloat64(),
			EstimatedMonthlyRevenue: r.Derived.EstimatedMonthlyRevenue.InexactFloat64(),
			EstimatedProfit:         r.Derived.EstimatedProfit.InexactFloat64(),
		},
		Insights: make([]api.Insight, 0, len(r.Insights)),
		Metadata: api.Metadata{
			GeneratedAt:        r.Metadata.GeneratedAt,
			AnalysisPeriodDays: r.Metadata.AnalysisPeriodDays,
			RecentPeriodDays:   r.Metadata.RecentPeriodDays,
		},
	}
	for _, i := range r.Insights {
		res.Insights = append(res.Insights, MapInsightDomainToApi(i))
	}
	return res
}
