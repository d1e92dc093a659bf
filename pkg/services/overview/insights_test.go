package overview

import (
	"strings"
	"testing"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthyInput() RuleInput {
	return RuleInput{
		Metrics: domain.RawMetrics{
			TotalBookings:           10,
			NewBookingsPeriod:       4,
			ConfirmedBookings:       9,
			CanceledBookings:        1,
			BookingConfirmationRate: d("90"),
		},
		Revenue: SelectRevenue(
			domain.RevenueCandidates{ConfirmedOnly: d("500"), NonCanceled: d("800"), AllPayments: d("1000")},
			domain.RevenueCandidates{},
		),
		Settings: DefaultSettings(),
	}
}

func TestDeriveInsights_AlwaysReportsRevenueMethod(t *testing.T) {
	insights := DeriveInsights(healthyInput(), DefaultRules)

	require.Len(t, insights, 1)
	assert.Equal(t, domain.InsightInfo, insights[0].Kind)
	assert.Contains(t, insights[0].Message, string(domain.RevenueMethodConfirmedOnly))
	assert.Contains(t, insights[0].Message, "500.00")
}

func TestDeriveInsights_PendingBookings(t *testing.T) {
	// Given: three pending bookings, everything else healthy
	in := healthyInput()
	in.Metrics.PendingBookings = 3

	// When
	insights := DeriveInsights(in, DefaultRules)

	// Then
	var high []domain.Insight
	for _, i := range insights {
		if i.Kind == domain.InsightWarning && i.Priority == domain.PriorityHigh {
			high = append(high, i)
		}
	}
	require.Len(t, high, 1)
	assert.True(t, strings.Contains(high[0].Message, "3"))
	assert.Equal(t, "Review pending bookings", high[0].RecommendedAction)
}

func TestDeriveInsights_KeepsRuleOrder(t *testing.T) {
	in := healthyInput()
	in.Metrics.PendingBookings = 2
	in.Metrics.BookingConfirmationRate = d("20")
	in.Metrics.CanceledBookings = 5
	in.Metrics.NewBookingsPeriod = 0

	insights := DeriveInsights(in, DefaultRules)

	titles := make([]string, 0, len(insights))
	for _, i := range insights {
		titles = append(titles, i.Title)
	}
	assert.Equal(t, []string{
		"Revenue calculation method",
		"Pending bookings require attention",
		"Low booking confirmation rate",
		"High cancellation share",
		"No recent bookings",
	}, titles)
	// info first, then a high warning, then low ones: order is not sorted by priority
	assert.Equal(t, domain.PriorityLow, insights[0].Priority)
	assert.Equal(t, domain.PriorityHigh, insights[1].Priority)
}

func TestDeriveInsights_NoBookingsSkipsRateRules(t *testing.T) {
	in := healthyInput()
	in.Metrics = domain.RawMetrics{}

	insights := DeriveInsights(in, DefaultRules)

	require.Len(t, insights, 1)
	assert.Equal(t, "Revenue calculation method", insights[0].Title)
}

func TestDeriveInsights_CustomRules(t *testing.T) {
	never := func(RuleInput) *domain.Insight { return nil }

	insights := DeriveInsights(healthyInput(), []Rule{never})

	assert.NotNil(t, insights)
	assert.Empty(t, insights)
}
