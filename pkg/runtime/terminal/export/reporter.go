package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  36,
		ValueWidth: 24,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const reportTemplate = `
Business Overview ({{.Metadata.AnalysisPeriodDays}} days, recent window {{.Metadata.RecentPeriodDays}} days)
Generated at: {{.Metadata.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}

=== Users ===
{{separator}}
{{formatRow "Total users" .Metrics.TotalUsers}}
{{formatRow "New users (recent)" .Metrics.NewUsersPeriod}}
{{separator}}

=== Bookings ===
{{separator}}
{{formatRow "Total bookings" .Metrics.TotalBookings}}
{{formatRow "New bookings (recent)" .Metrics.NewBookingsPeriod}}
{{formatRow "Confirmed" .Metrics.ConfirmedBookings}}
{{formatRow "Pending" .Metrics.PendingBookings}}
{{formatRow "Canceled" .Metrics.CanceledBookings}}
{{formatRow "Package" .Metrics.PackageBookings}}
{{formatRow "Flight + hotel" .Metrics.FlightHotelBookings}}
{{formatRow "Itinerary" .Metrics.ItineraryBookings}}
{{formatRow "Total travelers" .Metrics.TotalTravelers}}
{{formatRow "Avg travelers per booking" (money .Metrics.AvgTravelersPerBooking)}}
{{formatRow "Confirmation rate (%)" (money .Metrics.BookingConfirmationRate)}}
{{separator}}

=== Revenue ({{.Revenue.Method}}) ===
{{separator}}
{{formatRow "All payments" (money .Revenue.Total.AllPayments)}}
{{formatRow "Confirmed only" (money .Revenue.Total.ConfirmedOnly)}}
{{formatRow "Non-canceled" (money .Revenue.Total.NonCanceled)}}
{{formatRow "Selected total" (money .Revenue.SelectedTotal)}}
{{formatRow "Selected recent" (money .Revenue.SelectedRecent)}}
{{formatRow "Avg booking value" (money .Metrics.AvgBookingValue)}}
{{formatRow "Daily revenue avg" (money .Derived.DailyRevenueAvg)}}
{{formatRow "Estimated monthly revenue" (money .Derived.EstimatedMonthlyRevenue)}}
{{formatRow "Estimated profit" (money .Derived.EstimatedProfit)}}
{{separator}}

=== Insights ===
{{range .Insights}}[{{.Kind}}/{{.Priority}}] {{.Title}}
  {{.Message}}{{if .RecommendedAction}}
  -> {{.RecommendedAction}}{{end}}
{{else}}No insights.
{{end}}`

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value interface{}) string {
			return fmt.Sprintf("| %-*s | %*v |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
		"money": func(v decimal.Decimal) string {
			return v.StringFixed(2)
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
