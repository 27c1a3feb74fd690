package pricing

import "pierogi/internal/domain"

type breakdown struct {
	subtotal        int64
	volumeDiscount  int64
	couponDiscount  int64
	discount        int64
	discountClamped bool
	tax             int64
	deliveryFee     int64
	total           int64
}

func computeBreakdown(
	order domain.Order,
	profile domain.CustomerProfile,
	delivery domain.DeliveryContext,
	code string,
	rates TaxRateLookup,
	fees DeliveryFeeSchedule,
) breakdown {
	b := breakdown{
		subtotal:       Subtotal(order),
		volumeDiscount: VolumeDiscount(order, profile),
		couponDiscount: CouponDiscount(code, order),
		tax:            Tax(order, delivery, rates),
		deliveryFee:    DeliveryFee(order, delivery, profile, fees),
	}

	b.discount = b.volumeDiscount + b.couponDiscount
	if b.discount > b.subtotal {
		b.discount = b.subtotal
		b.discountClamped = true
	}

	b.total = b.subtotal - b.discount + b.tax + b.deliveryFee
	return b
}

// Total is subtotal - discount + tax + delivery fee. A discount larger than the
// subtotal is clamped to it, so the goods never cost less than nothing.
func Total(
	order domain.Order,
	profile domain.CustomerProfile,
	delivery domain.DeliveryContext,
	code string,
	rates TaxRateLookup,
	fees DeliveryFeeSchedule,
) int64 {
	return computeBreakdown(order, profile, delivery, code, rates, fees).total
}
