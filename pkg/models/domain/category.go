package domain

import "fmt"

// Category selects which report the caller asked for
type Category string

const (
	CategoryOverview     Category = "overview"
	CategoryUsers        Category = "users"
	CategoryBookings     Category = "bookings"
	CategoryRevenue      Category = "revenue"
	CategoryContent      Category = "content"
	CategoryProductivity Category = "productivity"
)

var categories = []Category{
	CategoryOverview,
	CategoryUsers,
	CategoryBookings,
	CategoryRevenue,
	CategoryContent,
	CategoryProductivity,
}

func Categories() []Category {
	return append([]Category{}, categories...)
}

func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Resolve returns the category that is actually served. Only the overview report
// exists today; every other category falls back to it and reports implemented=false.
func (c Category) Resolve() (served Category, implemented bool) {
	if c == CategoryOverview {
		return CategoryOverview, true
	}
	return CategoryOverview, false
}
