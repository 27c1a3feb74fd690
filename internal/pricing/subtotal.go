package pricing

import "pierogi/internal/domain"

// Subtotal sums unit price times quantity over all items. Negative prices are
// summed as given but the result never drops below zero.
func Subtotal(order domain.Order) int64 {
	var total int64
	for _, item := range order.Items {
		total += item.LineTotal()
	}
	return nonNegative(total)
}
