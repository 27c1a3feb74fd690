package pricing

import "pierogi/internal/domain"

// DeliveryFee is a flat per-order fee chosen by zone and rush. It does not
// depend on the items or on the customer.
func DeliveryFee(
	_ domain.Order,
	delivery domain.DeliveryContext,
	_ domain.CustomerProfile,
	fees DeliveryFeeSchedule,
) int64 {
	if fees == nil {
		return 0
	}
	return nonNegative(fees.Fee(delivery.EffectiveZone(), delivery.Rush))
}
