package providers

import "strings"

// Vehicle-need values that imply a larger vehicle and trigger the XL
// price adjustment.
var largeVehicleNeeds = map[string]bool{
	"xl":      true,
	"6 seats": true,
	"6-seats": true,
	"suv":     true,
}

const (
	xlPriceLowBump  = 10.00
	xlPriceHighBump = 12.00
)

// MockQuotes produces two deterministic placeholder quotes. It is a pure
// function of the request: no I/O, never fails. The aggregator substitutes
// these when no real provider returned a priced quote.
func MockQuotes(req RideRequest) []Quote {
	base := []Quote{
		{
			Provider:   ProviderMock,
			RideType:   "UberX (mock)",
			PriceLow:   ptr(22.50),
			PriceHigh:  ptr(24.00),
			Currency:   "USD",
			ETAMinutes: ptr(6),
		},
		{
			Provider:   ProviderMock,
			RideType:   "Lyft (mock)",
			PriceLow:   ptr(19.75),
			PriceHigh:  ptr(23.00),
			Currency:   "USD",
			ETAMinutes: ptr(7),
		},
	}

	if largeVehicleNeeds[strings.ToLower(strings.TrimSpace(req.VehicleNeed))] {
		for i := range base {
			q := &base[i]
			q.RideType = strings.ReplaceAll(q.RideType, "(mock)", "XL (mock)")
			if q.PriceLow != nil {
				*q.PriceLow += xlPriceLowBump
			}
			if q.PriceHigh != nil {
				*q.PriceHigh += xlPriceHighBump
			}
		}
	}
	return base
}

func ptr[T any](v T) *T { return &v }
