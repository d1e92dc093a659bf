package metrics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/travel-atlas/pkg/models/store"
	"github.com/de-tools/travel-atlas/pkg/store/datasource"
	"github.com/rs/zerolog"
)

// ErrEmptyResult is returned when the aggregation produced no row at all.
var ErrEmptyResult = errors.New("overview aggregation returned no rows")

// Store reads the raw counters behind the business overview
type Store interface {
	// FetchOverview runs the overview aggregation; recentSince bounds the recent sub-window.
	FetchOverview(ctx context.Context, recentSince time.Time) (*store.OverviewMetrics, error)
}

type overviewStore struct {
	db      *sql.DB
	dialect datasource.Dialect
}

func NewStore(src *datasource.Source) (Store, error) {
	if src == nil || src.DB == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &overviewStore{
		db:      src.DB,
		dialect: src.Dialect,
	}, nil
}

func (s *overviewStore) FetchOverview(ctx context.Context, recentSince time.Time) (*store.OverviewMetrics, error) {
	logger := zerolog.Ctx(ctx)

	query, args := BuildOverviewQuery(s.dialect, recentSince)

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to release overview connection")
		}
	}()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("overview query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close overview query rows")
		}
	}(rows)

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("overview query failed: %w", err)
		}
		return nil, ErrEmptyResult
	}

	var m store.OverviewMetrics
	err = rows.Scan(
		&m.TotalUsers,
		&m.NewUsersPeriod,
		&m.TotalBookings,
		&m.NewBookingsPeriod,
		&m.ConfirmedBookings,
		&m.PendingBookings,
		&m.CanceledBookings,
		&m.PackageBookings,
		&m.FlightHotelBookings,
		&m.ItineraryBookings,
		&m.TotalTravelers,
		&m.RevenueAllPayments,
		&m.RevenueConfirmedOnly,
		&m.RevenueNonCanceled,
		&m.RecentRevenueAllPayments,
		&m.RecentRevenueConfirmedOnly,
		&m.RecentRevenueNonCanceled,
		&m.CompletedPayments,
	)
	if err != nil {
		return nil, fmt.Errorf("scan overview row: %w", err)
	}

	logger.Debug().
		Int64("total_users", m.TotalUsers).
		Int64("total_bookings", m.TotalBookings).
		Time("recent_since", recentSince).
		Msg("retrieved overview metrics")

	return &m, nil
}

// BuildOverviewQuery renders the single left-joined aggregation over
// users -> bookings -> payments for the given dialect. Payments are reduced per booking
// before the join, so a booking with several payment attempts is still one row and its
// persons are counted once. Conditional reductions use CASE inside the aggregate so the
// text is valid on every supported engine.
func BuildOverviewQuery(d datasource.Dialect, recentSince time.Time) (string, []any) {
	b := datasource.NewBinder(d)

	countDistinct := func(col, cond string) string {
		return fmt.Sprintf("CAST(COUNT(DISTINCT CASE WHEN %s THEN %s END) AS BIGINT)", cond, col)
	}
	revenue := func(col, cond string) string {
		if cond == "" {
			return fmt.Sprintf("COALESCE(SUM(%s), 0)", col)
		}
		return fmt.Sprintf("COALESCE(SUM(CASE WHEN %s THEN %s END), 0)", cond, col)
	}

	const (
		confirmed   = "b.status = 'confirmed'"
		nonCanceled = "(b.status IS NULL OR b.status <> 'canceled')"
	)

	columns := []string{
		"CAST(COUNT(DISTINCT u.id) AS BIGINT) AS total_users",
		countDistinct("u.id", "u.created_at >= "+b.Bind(recentSince)) + " AS new_users_period",
		"CAST(COUNT(DISTINCT b.id) AS BIGINT) AS total_bookings",
		countDistinct("b.id", "b.created_at >= "+b.Bind(recentSince)) + " AS new_bookings_period",
		countDistinct("b.id", confirmed) + " AS confirmed_bookings",
		countDistinct("b.id", "b.status = 'pending'") + " AS pending_bookings",
		countDistinct("b.id", "b.status = 'canceled'") + " AS canceled_bookings",
		countDistinct("b.id", "b.booking_type = 'package'") + " AS package_bookings",
		countDistinct("b.id", "b.booking_type = 'flight_hotel'") + " AS flight_hotel_bookings",
		countDistinct("b.id", "b.booking_type = 'itinerary'") + " AS itinerary_bookings",
		"CAST(COALESCE(SUM(b.persons), 0) AS BIGINT) AS total_travelers",
		revenue("p.paid", "") + " AS revenue_all_payments",
		revenue("p.paid", confirmed) + " AS revenue_confirmed_only",
		revenue("p.paid", nonCanceled) + " AS revenue_non_canceled",
		revenue("p.recent_paid", "") + " AS recent_revenue_all_payments",
		revenue("p.recent_paid", confirmed) + " AS recent_revenue_confirmed_only",
		revenue("p.recent_paid", nonCanceled) + " AS recent_revenue_non_canceled",
		"CAST(COALESCE(SUM(p.completed), 0) AS BIGINT) AS completed_payments",
	}

	// one row per booking: completed amounts overall and inside the recent window
	payments := fmt.Sprintf(`
			SELECT
				booking_id,
				SUM(CASE WHEN status = 'completed' THEN amount END) AS paid,
				SUM(CASE WHEN status = 'completed' AND payment_date >= %s THEN amount END) AS recent_paid,
				COUNT(CASE WHEN status = 'completed' THEN id END) AS completed
			FROM %s
			GROUP BY booking_id`,
		b.Bind(recentSince),
		d.Table("payments"),
	)

	query := fmt.Sprintf(`
		SELECT
			%s
		FROM %s u
		LEFT JOIN %s b ON b.user_id = u.id
		LEFT JOIN (%s
		) p ON p.booking_id = b.id
	`,
		strings.Join(columns, ",\n\t\t\t"),
		d.Table("users"),
		d.Table("bookings"),
		payments,
	)

	return query, b.Args()
}
