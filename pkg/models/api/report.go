package api

import "time"

type InsightKind string

const (
	InsightInfo    InsightKind = "info"
	InsightWarning InsightKind = "warning"
)

type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityHigh Priority = "high"
)

// Response is the envelope returned by every report endpoint.
type Response struct {
	Success bool    `json:"success"`
	Data    *Report `json:"data,omitempty"`
	Message string  `json:"message,omitempty"`

	RequestedCategory string `json:"requested_category,omitempty"`
	ServedCategory    string `json:"served_category,omitempty"`
	Notice            string `json:"notice,omitempty"`

	Params *RequestParams `json:"params,omitempty"`
}

// RequestParams echoes the request back on unexpected failures.
type RequestParams struct {
	TimeRange string `json:"time_range"`
	Category  string `json:"category"`
	AdminID   string `json:"admin_id,omitempty"`
}

type Metrics struct {
	TotalUsers              int64   `json:"total_users"`
	NewUsersPeriod          int64   `json:"new_users_period"`
	TotalBookings           int64   `json:"total_bookings"`
	NewBookingsPeriod       int64   `json:"new_bookings_period"`
	ConfirmedBookings       int64   `json:"confirmed_bookings"`
	PendingBookings         int64   `json:"pending_bookings"`
	CanceledBookings        int64   `json:"canceled_bookings"`
	PackageBookings         int64   `json:"package_bookings"`
	FlightHotelBookings     int64   `json:"flight_hotel_bookings"`
	ItineraryBookings       int64   `json:"itinerary_bookings"`
	TotalTravelers          int64   `json:"total_travelers"`
	AvgTravelersPerBooking  float64 `json:"avg_travelers_per_booking"`
	AvgBookingValue         float64 `json:"avg_booking_value"`
	BookingConfirmationRate float64 `json:"booking_confirmation_rate"`
}

type Revenue struct {
	AllPayments         float64 `json:"all_payments"`
	ConfirmedOnly       float64 `json:"confirmed_only"`
	NonCanceled         float64 `json:"non_canceled"`
	RecentAllPayments   float64 `json:"recent_all_payments"`
	RecentConfirmedOnly float64 `json:"recent_confirmed_only"`
	RecentNonCanceled   float64 `json:"recent_non_canceled"`
	Method              string  `json:"method"`
	SelectedTotal       float64 `json:"selected_total"`
	SelectedRecent      float64 `json:"selected_recent"`
}

type Derived struct {
	DailyRevenueAvg         float64 `json:"daily_revenue_avg"`
	EstimatedMonthlyRevenue float64 `json:"estimated_monthly_revenue"`
	EstimatedProfit         float64 `json:"estimated_profit"`
}

type Insight struct {
	Type              InsightKind `json:"type"`
	Title             string      `json:"title"`
	Message           string      `json:"message"`
	RecommendedAction string      `json:"recommended_action"`
	Priority          Priority    `json:"priority"`
}

type Metadata struct {
	GeneratedAt        time.Time `json:"generated_at"`
	AnalysisPeriodDays int       `json:"analysis_period_days"`
	RecentPeriodDays   int       `json:"recent_period_days"`
}

type Report struct {
	Metrics  Metrics   `json:"metrics"`
	Revenue  Revenue   `json:"revenue"`
	Derived  Derived   `json:"derived"`
	Insights []Insight `json:"insights"`
	Metadata Metadata  `json:"metadata"`
}
