package overview

import "github.com/de-tools/travel-atlas/pkg/models/domain"

// SelectRevenue picks the reported revenue from the three candidates. The chain is
// ordered by precision, not by size: any confirmed revenue at all locks in the
// confirmed-only method even when it undercounts pending business.
func SelectRevenue(total, recent domain.RevenueCandidates) domain.RevenueBreakdown {
	breakdown := domain.RevenueBreakdown{
		Total:  total,
		Recent: recent,
	}

	switch {
	case total.ConfirmedOnly.IsPositive():
		breakdown.Method = domain.RevenueMethodConfirmedOnly
		breakdown.SelectedTotal = total.ConfirmedOnly
		// recent figure always uses the broader non-canceled predicate
		breakdown.SelectedRecent = recent.NonCanceled
	case total.NonCanceled.IsPositive():
		breakdown.Method = domain.RevenueMethodNonCanceled
		breakdown.SelectedTotal = total.NonCanceled
		breakdown.SelectedRecent = recent.NonCanceled
	default:
		breakdown.Method = domain.RevenueMethodAllPayments
		breakdown.SelectedTotal = total.AllPayments
		breakdown.SelectedRecent = recent.AllPayments
	}

	return breakdown
}
