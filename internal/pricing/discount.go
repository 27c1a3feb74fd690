package pricing

import (
	"github.com/shopspring/decimal"

	"pierogi/internal/domain"
)

type volumeBreak struct {
	minQty int
	rate   decimal.Decimal
}

// Breaks are ordered by descending minQty; the first one met applies.
var volumeSchedules = map[domain.Tier][]volumeBreak{
	domain.TierGuest: {
		{minQty: 24, rate: percent(10)},
		{minQty: 12, rate: percent(5)},
	},
	domain.TierRegular: {
		{minQty: 24, rate: percent(12)},
		{minQty: 12, rate: percent(8)},
	},
	domain.TierVIP: {
		{minQty: 24, rate: percent(10)},
		{minQty: 12, rate: percent(5)},
	},
}

func volumeSchedule(profile domain.CustomerProfile) []volumeBreak {
	return volumeSchedules[profile.EffectiveTier()]
}

func itemVolumeDiscount(item domain.OrderItem, schedule []volumeBreak) int64 {
	for _, b := range schedule {
		if item.Qty >= b.minQty {
			return nonNegative(applyRate(item.LineTotal(), b.rate))
		}
	}
	return 0
}

// VolumeDiscount sums the per-item quantity discounts for the customer's tier.
func VolumeDiscount(order domain.Order, profile domain.CustomerProfile) int64 {
	schedule := volumeSchedule(profile)

	var total int64
	for _, item := range order.Items {
		total += itemVolumeDiscount(item, schedule)
	}
	return total
}

// Discounts is the volume discount plus at most one coupon discount. An empty
// code applies no coupon.
func Discounts(order domain.Order, profile domain.CustomerProfile, code string) int64 {
	return VolumeDiscount(order, profile) + CouponDiscount(code, order)
}
