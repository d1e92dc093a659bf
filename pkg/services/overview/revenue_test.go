package overview

import (
	"testing"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSelectRevenue(t *testing.T) {
	recent := domain.RevenueCandidates{
		AllPayments:   d("300"),
		ConfirmedOnly: d("100"),
		NonCanceled:   d("250"),
	}

	tests := []struct {
		name           string
		total          domain.RevenueCandidates
		expectedMethod domain.RevenueMethod
		expectedTotal  decimal.Decimal
		expectedRecent decimal.Decimal
	}{
		{
			name:           "confirmed revenue wins",
			total:          domain.RevenueCandidates{ConfirmedOnly: d("500"), NonCanceled: d("800"), AllPayments: d("1000")},
			expectedMethod: domain.RevenueMethodConfirmedOnly,
			expectedTotal:  d("500"),
			expectedRecent: d("250"), // falls back to recent non-canceled
		},
		{
			name:           "non-canceled when nothing confirmed",
			total:          domain.RevenueCandidates{ConfirmedOnly: decimal.Zero, NonCanceled: d("800"), AllPayments: d("1000")},
			expectedMethod: domain.RevenueMethodNonCanceled,
			expectedTotal:  d("800"),
			expectedRecent: d("250"),
		},
		{
			name:           "all payments as last resort",
			total:          domain.RevenueCandidates{ConfirmedOnly: decimal.Zero, NonCanceled: decimal.Zero, AllPayments: d("1000")},
			expectedMethod: domain.RevenueMethodAllPayments,
			expectedTotal:  d("1000"),
			expectedRecent: d("300"),
		},
		{
			name:           "tiny confirmed amount still locks the method",
			total:          domain.RevenueCandidates{ConfirmedOnly: d("0.01"), NonCanceled: d("99999"), AllPayments: d("100000")},
			expectedMethod: domain.RevenueMethodConfirmedOnly,
			expectedTotal:  d("0.01"),
			expectedRecent: d("250"),
		},
		{
			name:           "no revenue at all",
			total:          domain.RevenueCandidates{ConfirmedOnly: decimal.Zero, NonCanceled: decimal.Zero, AllPayments: decimal.Zero},
			expectedMethod: domain.RevenueMethodAllPayments,
			expectedTotal:  decimal.Zero,
			expectedRecent: d("300"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectRevenue(tt.total, recent)

			assert.Equal(t, tt.expectedMethod, got.Method)
			assert.True(t, tt.expectedTotal.Equal(got.SelectedTotal), "total: %s", got.SelectedTotal)
			assert.True(t, tt.expectedRecent.Equal(got.SelectedRecent), "recent: %s", got.SelectedRecent)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, recent, got.Recent)
		})
	}
}

func TestSelectRevenue_IsPure(t *testing.T) {
	total := domain.RevenueCandidates{ConfirmedOnly: d("500"), NonCanceled: d("800"), AllPayments: d("1000")}
	recent := domain.RevenueCandidates{AllPayments: d("10"), ConfirmedOnly: d("5"), NonCanceled: d("8")}

	first := SelectRevenue(total, recent)
	second := SelectRevenue(total, recent)

	assert.Equal(t, first, second)
}
