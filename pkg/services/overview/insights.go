package overview

import (
	"fmt"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
)

// RuleInput is everything an insight rule may look at
type RuleInput struct {
	Metrics  domain.RawMetrics
	Revenue  domain.RevenueBreakdown
	Settings Settings
}

// Rule produces at most one insight from the computed metrics.
type Rule func(in RuleInput) *domain.Insight

// DefaultRules is evaluated in order; the order is kept in the report.
var DefaultRules = []Rule{
	revenueMethodRule,
	pendingBookingsRule,
	lowConfirmationRateRule,
	highCancellationRule,
	noRecentBookingsRule,
}

var revenueMethodLabels = map[domain.RevenueMethod]string{
	domain.RevenueMethodConfirmedOnly: "confirmed bookings only",
	domain.RevenueMethodNonCanceled:   "non-canceled bookings",
	domain.RevenueMethodAllPayments:   "all successful payments",
}

// DeriveInsights runs every rule and keeps the ones that fired, in rule order.
func DeriveInsights(in RuleInput, rules []Rule) []domain.Insight {
	insights := make([]domain.Insight, 0, len(rules))
	for _, rule := range rules {
		if insight := rule(in); insight != nil {
			insights = append(insights, *insight)
		}
	}
	return insights
}

func revenueMethodRule(in RuleInput) *domain.Insight {
	return &domain.Insight{
		Kind:  domain.InsightInfo,
		Title: "Revenue calculation method",
		Message: fmt.Sprintf("Revenue of %s is calculated from %s (%s).",
			in.Revenue.SelectedTotal.StringFixed(2), revenueMethodLabels[in.Revenue.Method], in.Revenue.Method),
		RecommendedAction: "Compare the revenue breakdown when candidate totals diverge",
		Priority:          domain.PriorityLow,
	}
}

func pendingBookingsRule(in RuleInput) *domain.Insight {
	pending := in.Metrics.PendingBookings
	if pending <= 0 {
		return nil
	}
	return &domain.Insight{
		Kind:              domain.InsightWarning,
		Title:             "Pending bookings require attention",
		Message:           fmt.Sprintf("%d bookings are waiting for confirmation.", pending),
		RecommendedAction: "Review pending bookings",
		Priority:          domain.PriorityHigh,
	}
}

func lowConfirmationRateRule(in RuleInput) *domain.Insight {
	m := in.Metrics
	if m.TotalBookings == 0 || !m.BookingConfirmationRate.LessThan(in.Settings.LowConfirmationRate) {
		return nil
	}
	return &domain.Insight{
		Kind:  domain.InsightWarning,
		Title: "Low booking confirmation rate",
		Message: fmt.Sprintf("Only %s%% of bookings are confirmed, below the %s%% threshold.",
			m.BookingConfirmationRate.StringFixed(2), in.Settings.LowConfirmationRate.String()),
		RecommendedAction: "Check supplier availability and payment failures for unconfirmed bookings",
		Priority:          domain.PriorityLow,
	}
}

func highCancellationRule(in RuleInput) *domain.Insight {
	m := in.Metrics
	rate := percent(m.CanceledBookings, m.TotalBookings)
	if !rate.GreaterThan(in.Settings.HighCancellationRate) {
		return nil
	}
	return &domain.Insight{
		Kind:  domain.InsightWarning,
		Title: "High cancellation share",
		Message: fmt.Sprintf("%s%% of all bookings were canceled, above the %s%% threshold.",
			rate.StringFixed(2), in.Settings.HighCancellationRate.String()),
		RecommendedAction: "Review cancellation reasons and refund policies",
		Priority:          domain.PriorityLow,
	}
}

func noRecentBookingsRule(in RuleInput) *domain.Insight {
	m := in.Metrics
	if m.TotalBookings == 0 || m.NewBookingsPeriod > 0 {
		return nil
	}
	return &domain.Insight{
		Kind:              domain.InsightInfo,
		Title:             "No recent bookings",
		Message:           fmt.Sprintf("No bookings were created in the last %d days.", in.Settings.RecentWindowDays),
		RecommendedAction: "Check booking funnel and marketing campaigns",
		Priority:          domain.PriorityLow,
	}
}
