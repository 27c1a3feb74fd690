package pricing

import "pierogi/internal/domain"

func itemTax(item domain.OrderItem, rates TaxRateLookup) int64 {
	if item.Kind != domain.ItemKindHot || rates == nil {
		return 0
	}
	return nonNegative(applyRate(item.LineTotal(), perMille(rates.PerMille(item.Kind))))
}

// Tax sums floor(lineTotal * rate) over hot items; frozen items are exempt.
// The delivery context does not affect the rate.
func Tax(order domain.Order, _ domain.DeliveryContext, rates TaxRateLookup) int64 {
	var total int64
	for _, item := range order.Items {
		total += itemTax(item, rates)
	}
	return total
}
