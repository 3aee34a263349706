package booking

import (
	"github.com/shopspring/decimal"

	"github.com/bookmycut/salon-scheduler/internal/models"
)

// TotalPrice sums the unit prices of the given services using fixed-point
// decimal arithmetic. An empty list yields zero; the caller must then require
// an explicit price.
func TotalPrice(services []models.ServiceOffer) decimal.Decimal {
	total := decimal.Zero
	for _, s := range services {
		total = total.Add(s.UnitPrice)
	}
	return total
}
