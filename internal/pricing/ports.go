package pricing

import "pierogi/internal/domain"

// TaxRateLookup returns the tax rate for an item kind in parts per thousand.
type TaxRateLookup interface {
	PerMille(kind domain.ItemKind) int64
}

// DeliveryFeeSchedule returns the flat per-order delivery fee in cents.
type DeliveryFeeSchedule interface {
	Fee(zone domain.Zone, rush bool) int64
}
