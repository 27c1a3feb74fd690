package pricing

import (
	"slices"
	"sort"

	"pierogi/internal/domain"
)

const (
	CouponPierogiBOGO = "PIEROGI-BOGO"
	CouponFirst10     = "FIRST10"
)

const (
	bogoPackQty        = 6
	first10MinSubtotal = 2000
)

var (
	bogoRate    = percent(50)
	first10Rate = percent(10)
)

type couponFunc func(order domain.Order) int64

var coupons = map[string]couponFunc{
	CouponPierogiBOGO: pierogiBOGO,
	CouponFirst10:     first10,
}

// CouponDiscount evaluates a single coupon code against the order. Unknown
// codes and empty orders yield zero.
func CouponDiscount(code string, order domain.Order) int64 {
	if order.IsEmpty() {
		return 0
	}
	apply, ok := coupons[code]
	if !ok {
		return 0
	}
	return nonNegative(apply(order))
}

func IsKnownCoupon(code string) bool {
	_, ok := coupons[code]
	return ok
}

func CouponCodes() []string {
	codes := make([]string, 0, len(coupons))
	for code := range coupons {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// pierogiBOGO takes half off the cheapest six-pack in the first filling that
// has at least two six-packs. Fillings must match exactly.
func pierogiBOGO(order domain.Order) int64 {
	var fillings []string
	packs := make(map[string][]int64)
	for _, item := range order.Items {
		if item.Qty != bogoPackQty {
			continue
		}
		if _, seen := packs[item.Filling]; !seen {
			fillings = append(fillings, item.Filling)
		}
		packs[item.Filling] = append(packs[item.Filling], item.LineTotal())
	}

	for _, filling := range fillings {
		lines := packs[filling]
		if len(lines) < 2 {
			continue
		}
		return applyRate(slices.Min(lines), bogoRate)
	}
	return 0
}

func first10(order domain.Order) int64 {
	subtotal := Subtotal(order)
	if subtotal < first10MinSubtotal {
		return 0
	}
	return applyRate(subtotal, first10Rate)
}
