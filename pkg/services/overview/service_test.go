package overview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
	"github.com/de-tools/travel-atlas/pkg/models/store"
	"github.com/de-tools/travel-atlas/pkg/store/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) FetchOverview(ctx context.Context, recentSince time.Time) (*store.OverviewMetrics, error) {
	args := m.Called(ctx, recentSince)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.OverviewMetrics), args.Error(1)
}

var fixedNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func sampleRow() *store.OverviewMetrics {
	return &store.OverviewMetrics{
		TotalUsers:                 120,
		NewUsersPeriod:             14,
		TotalBookings:              80,
		NewBookingsPeriod:          9,
		ConfirmedBookings:          50,
		PendingBookings:            3,
		CanceledBookings:           10,
		PackageBookings:            30,
		FlightHotelBookings:        25,
		ItineraryBookings:          20,
		TotalTravelers:             190,
		RevenueAllPayments:         d("1000"),
		RevenueConfirmedOnly:       d("500"),
		RevenueNonCanceled:         d("800"),
		RecentRevenueAllPayments:   d("400"),
		RecentRevenueConfirmedOnly: d("150"),
		RecentRevenueNonCanceled:   d("300"),
		CompletedPayments:          40,
	}
}

func newTestService(s metrics.Store) Service {
	return NewService(s, DefaultSettings(), WithClock(func() time.Time { return fixedNow }))
}

func TestService_GetBusinessOverview(t *testing.T) {
	// Given
	ctx := context.Background()
	s := new(mockStore)
	s.On("FetchOverview", ctx, fixedNow.AddDate(0, 0, -30)).Return(sampleRow(), nil)

	// When
	report, err := newTestService(s).GetBusinessOverview(ctx, 30)

	// Then
	require.NoError(t, err)
	assert.Equal(t, domain.RevenueMethodConfirmedOnly, report.Revenue.Method)
	assert.Equal(t, "500.00", report.Revenue.SelectedTotal.StringFixed(2))
	assert.Equal(t, "300.00", report.Revenue.SelectedRecent.StringFixed(2))
	assert.Equal(t, "10.00", report.Derived.DailyRevenueAvg.StringFixed(2))
	assert.Equal(t, "300.00", report.Derived.EstimatedMonthlyRevenue.StringFixed(2))
	assert.Equal(t, "125.00", report.Derived.EstimatedProfit.StringFixed(2))
	assert.Equal(t, "62.50", report.Metrics.BookingConfirmationRate.StringFixed(2))
	assert.Equal(t, "2.38", report.Metrics.AvgTravelersPerBooking.StringFixed(2))
	assert.Equal(t, "25.00", report.Metrics.AvgBookingValue.StringFixed(2))
	assert.Equal(t, fixedNow, report.Metadata.GeneratedAt)
	assert.Equal(t, 30, report.Metadata.AnalysisPeriodDays)
	assert.Equal(t, 30, report.Metadata.RecentPeriodDays)

	require.Len(t, report.Insights, 2)
	assert.Equal(t, domain.InsightInfo, report.Insights[0].Kind)
	assert.Equal(t, domain.PriorityHigh, report.Insights[1].Priority)
	s.AssertExpectations(t)
}

func TestService_RecentWindowIndependentOfCallerWindow(t *testing.T) {
	ctx := context.Background()
	s := new(mockStore)
	settings := DefaultSettings()
	settings.RecentWindowDays = 14
	s.On("FetchOverview", ctx, fixedNow.AddDate(0, 0, -14)).Return(sampleRow(), nil)

	svc := NewService(s, settings, WithClock(func() time.Time { return fixedNow }))
	report, err := svc.GetBusinessOverview(ctx, 365)

	require.NoError(t, err)
	assert.Equal(t, 365, report.Metadata.AnalysisPeriodDays)
	assert.Equal(t, 14, report.Metadata.RecentPeriodDays)
	// 300 / 365
	assert.Equal(t, "0.82", report.Derived.DailyRevenueAvg.StringFixed(2))
	s.AssertExpectations(t)
}

func TestService_Failures(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
	}{
		{name: "no aggregate row", storeErr: metrics.ErrEmptyResult},
		{name: "data source unavailable", storeErr: errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, window := range []int{7, 30, 90, 365} {
				s := new(mockStore)
				s.On("FetchOverview", mock.Anything, mock.Anything).Return(nil, tt.storeErr)

				report, err := newTestService(s).GetBusinessOverview(context.Background(), window)

				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrAggregationFailed)
				assert.ErrorIs(t, err, tt.storeErr)
			}
		})
	}
}

func TestService_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := new(mockStore)
	s.On("FetchOverview", mock.Anything, mock.Anything).Return(sampleRow(), nil)

	calls := 0
	clock := func() time.Time {
		calls++
		return fixedNow.Add(time.Duration(calls) * time.Millisecond)
	}
	svc := NewService(s, DefaultSettings(), WithClock(clock))

	first, err := svc.GetBusinessOverview(ctx, 90)
	require.NoError(t, err)
	second, err := svc.GetBusinessOverview(ctx, 90)
	require.NoError(t, err)

	assert.NotEqual(t, first.Metadata.GeneratedAt, second.Metadata.GeneratedAt)
	first.Metadata.GeneratedAt = time.Time{}
	second.Metadata.GeneratedAt = time.Time{}
	assert.Equal(t, first, second)
}
