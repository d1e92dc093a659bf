package overview

import "github.com/shopspring/decimal"

// Settings contains the fixed parameters of the overview report
type Settings struct {
	// RecentWindowDays bounds the recent sub-window applied inside the aggregation
	// (new users, new bookings, recent revenue). Independent of the caller's window.
	RecentWindowDays int
	// ProfitShare is the fraction of the selected revenue reported as estimated profit.
	ProfitShare decimal.Decimal
	// LowConfirmationRate flags a confirmation rate (percent) below this value.
	LowConfirmationRate decimal.Decimal
	// HighCancellationRate flags a cancellation share (percent) above this value.
	HighCancellationRate decimal.Decimal
}

func DefaultSettings() Settings {
	return Settings{
		RecentWindowDays:     30,
		ProfitShare:          decimal.RequireFromString("0.25"),
		LowConfirmationRate:  decimal.NewFromInt(50),
		HighCancellationRate: decimal.NewFromInt(20),
	}
}
