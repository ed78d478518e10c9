// Package render turns a QuoteResult into the textual transcripts shared
// by the CLI and the plain-text HTTP endpoint.
package render

import (
	"fmt"
	"strings"

	"github.com/you/go-ride-agent/internal/providers"
	"github.com/you/go-ride-agent/internal/service"
)

// CLI renders the interactive transcript, emoji prefixes included.
func CLI(res service.QuoteResult) string {
	var b strings.Builder
	b.WriteString("==============================\n")
	b.WriteString("RESULTS\n")
	b.WriteString("==============================\n")
	fmt.Fprintf(&b, "Pickup:  %s\n", res.Request.Pickup)
	fmt.Fprintf(&b, "Dropoff: %s\n", res.Request.Dropoff)
	fmt.Fprintf(&b, "Need:    %s\n\n", res.Request.VehicleNeed)

	if len(res.Quotes) == 0 {
		b.WriteString("No quotes available.\n")
		return b.String()
	}

	for _, q := range res.Quotes {
		b.WriteString(quoteLine(q, 20))
		b.WriteByte('\n')
	}

	if res.Cheapest != nil {
		c := res.Cheapest
		fmt.Fprintf(&b, "\n✅ Cheapest (by low estimate): %s — %s at $%.2f\n",
			strings.ToUpper(c.Provider), c.RideType, *c.PriceLow)
	} else {
		b.WriteString("\n⚠️ Could not determine cheapest (no priced quotes).\n")
	}
	return b.String()
}

// Plain renders the same transcript for HTTP consumers, without the
// emoji prefixes.
func Plain(res service.QuoteResult) string {
	var b strings.Builder
	b.WriteString("RIDE AGENT RESULTS\n")
	b.WriteString(strings.Repeat("=", 18) + "\n")
	fmt.Fprintf(&b, "Pickup:  %s\n", res.Request.Pickup)
	fmt.Fprintf(&b, "Dropoff: %s\n", res.Request.Dropoff)
	fmt.Fprintf(&b, "Need:    %s\n\n", res.Request.VehicleNeed)

	if len(res.Quotes) == 0 {
		b.WriteString("No quotes available.")
		return b.String()
	}

	b.WriteString("Quotes:\n")
	for _, q := range res.Quotes {
		b.WriteString(quoteLine(q, 0))
		b.WriteByte('\n')
	}

	if res.Cheapest != nil && res.Cheapest.PriceLow != nil {
		c := res.Cheapest
		fmt.Fprintf(&b, "\nCheapest (by low estimate): %s — %s at $%.2f",
			strings.ToUpper(c.Provider), c.RideType, *c.PriceLow)
	}
	return b.String()
}

// quoteLine formats one quote. typeWidth pads the ride type for the
// aligned CLI listing; zero leaves it unpadded.
func quoteLine(q providers.Quote, typeWidth int) string {
	provider := fmt.Sprintf("%-4s", strings.ToUpper(q.Provider))
	rideType := q.RideType
	if typeWidth > 0 {
		rideType = fmt.Sprintf("%-*s", typeWidth, rideType)
	}

	if q.PriceLow == nil {
		note := ""
		if q.Notes != "" {
			note = fmt.Sprintf(" (%s)", q.Notes)
		}
		return fmt.Sprintf("- %s | %s | not available%s", provider, rideType, note)
	}

	hi := "?"
	if q.PriceHigh != nil {
		hi = fmt.Sprintf("%.2f", *q.PriceHigh)
	}
	eta := "?"
	if q.ETAMinutes != nil {
		eta = fmt.Sprintf("%d min", *q.ETAMinutes)
	}
	return fmt.Sprintf("- %s | %s | $%.2f–$%s %s | ETA %s",
		provider, rideType, *q.PriceLow, hi, q.Currency, eta)
}
