package overview

import (
	"time"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
)

// AssembleReport combines finalized parts into a report; it computes nothing.
func AssembleReport(
	metrics domain.RawMetrics,
	revenue domain.RevenueBreakdown,
	derived domain.DerivedMetrics,
	insights []domain.Insight,
	generatedAt time.Time,
	windowDays int,
	recentDays int,
) *domain.Report {
	return &domain.Report{
		Metrics:  metrics,
		Revenue:  revenue,
		Derived:  derived,
		Insights: insights,
		Metadata: domain.ReportMetadata{
			GeneratedAt:        generatedAt,
			AnalysisPeriodDays: windowDays,
			RecentPeriodDays:   recentDays,
		},
	}
}
