package overview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
	"github.com/de-tools/travel-atlas/pkg/store/metrics"
	"github.com/rs/zerolog"
)

// FailureMessage is what callers see when the aggregation could not produce a report.
const FailureMessage = "Failed to generate business overview"

// ErrAggregationFailed wraps data source failures and empty aggregation results.
var ErrAggregationFailed = errors.New("business overview aggregation failed")

type Service interface {
	// GetBusinessOverview builds the overview report. windowDays is trusted to be
	// validated by the caller and is only used for rate derivation.
	GetBusinessOverview(ctx context.Context, windowDays int) (*domain.Report, error)
}

type Option func(*service)

// WithClock overrides the time source used for generated_at and the recent cutoff.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithRules replaces the insight rule list.
func WithRules(rules ...Rule) Option {
	return func(s *service) {
		s.rules = rules
	}
}

type service struct {
	store    metrics.Store
	settings Settings
	rules    []Rule
	now      func() time.Time
}

func NewService(store metrics.Store, settings Settings, opts ...Option) Service {
	s := &service{
		store:    store,
		settings: settings,
		rules:    DefaultRules,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) GetBusinessOverview(ctx context.Context, windowDays int) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	now := s.now().UTC()
	recentSince := now.AddDate(0, 0, -s.settings.RecentWindowDays)

	row, err := s.store.FetchOverview(ctx, recentSince)
	if err != nil {
		logger.Error().
			Err(err).
			Int("window_days", windowDays).
			Msg("overview aggregation failed")
		return nil, fmt.Errorf("%w: %w", ErrAggregationFailed, err)
	}

	raw := RawMetricsFromStore(*row)
	total, recent := candidatesFromStore(*row)
	revenue := SelectRevenue(total, recent)
	derived := DeriveMetrics(revenue, windowDays, s.settings.ProfitShare)
	insights := DeriveInsights(RuleInput{
		Metrics:  raw,
		Revenue:  revenue,
		Settings: s.settings,
	}, s.rules)

	logger.Debug().
		Str("revenue_method", string(revenue.Method)).
		Str("selected_total", revenue.SelectedTotal.String()).
		Int("insights", len(insights)).
		Msg("business overview computed")

	return AssembleReport(raw, revenue, derived, insights, now, windowDays, s.settings.RecentWindowDays), nil
}
