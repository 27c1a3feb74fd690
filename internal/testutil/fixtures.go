package testutil

import (
	"math/rand"
	"testing"

	"pierogi/internal/domain"
)

var (
	SKUs     = []string{"P6-POTATO", "P12-POTATO", "P24-POTATO", "P6-SAUER", "P12-SAUER"}
	AddOns   = []string{"sour-cream", "fried-onion", "bacon-bits"}
	Fillings = []string{"potato", "sauerkraut", "sweet-cheese", "mushroom"}
	Kinds    = []domain.ItemKind{domain.ItemKindHot, domain.ItemKindFrozen}
	Tiers    = []domain.Tier{domain.TierGuest, domain.TierRegular, domain.TierVIP}
	Zones    = []domain.Zone{domain.ZoneLocal, domain.ZoneOuter}
	PackQtys = []int{6, 12, 24}
)

const (
	MinUnitPriceCents = 500
	MaxUnitPriceCents = 3000
)

// SixPack builds a hot six-pack of the given filling.
func SixPack(filling string, unitPriceCents int64) domain.OrderItem {
	return domain.OrderItem{
		Kind:           domain.ItemKindHot,
		SKU:            "P6-" + filling,
		Title:          filling + " six-pack",
		Filling:        filling,
		Qty:            6,
		UnitPriceCents: unitPriceCents,
	}
}

func Item(kind domain.ItemKind, qty int, unitPriceCents int64) domain.OrderItem {
	return domain.OrderItem{
		Kind:           kind,
		SKU:            "P-TEST",
		Title:          "test item",
		Filling:        "potato",
		Qty:            qty,
		UnitPriceCents: unitPriceCents,
	}
}

func OrderOf(items ...domain.OrderItem) domain.Order {
	return domain.Order{Items: items}
}

// ForAll runs check against runs random draws from a fixed seed so failures
// reproduce. The seed is logged when the test fails.
func ForAll(t *testing.T, seed int64, runs int, check func(t *testing.T, r *rand.Rand)) {
	t.Helper()

	r := rand.New(rand.NewSource(seed))
	for i := 0; i < runs; i++ {
		check(t, r)
		if t.Failed() {
			t.Logf("property failed on run %d (seed %d)", i, seed)
			return
		}
	}
}

func pick[T any](r *rand.Rand, values []T) T {
	return values[r.Intn(len(values))]
}

func RandomUnitPrice(r *rand.Rand) int64 {
	return int64(MinUnitPriceCents + r.Intn(MaxUnitPriceCents-MinUnitPriceCents+1))
}

func RandomItem(r *rand.Rand) domain.OrderItem {
	addOns := make([]string, r.Intn(4))
	for i := range addOns {
		addOns[i] = pick(r, AddOns)
	}

	return domain.OrderItem{
		Kind:           pick(r, Kinds),
		SKU:            pick(r, SKUs),
		Title:          pick(r, Fillings) + " pierogi",
		Filling:        pick(r, Fillings),
		Qty:            pick(r, PackQtys),
		UnitPriceCents: RandomUnitPrice(r),
		AddOns:         addOns,
	}
}

// RandomOrder draws an order of one to five items.
func RandomOrder(r *rand.Rand) domain.Order {
	items := make([]domain.OrderItem, 1+r.Intn(5))
	for i := range items {
		items[i] = RandomItem(r)
	}
	return domain.Order{Items: items}
}

// RandomOrderOfKind draws an order whose items all have the given kind.
func RandomOrderOfKind(r *rand.Rand, kind domain.ItemKind) domain.Order {
	order := RandomOrder(r)
	for i := range order.Items {
		order.Items[i].Kind = kind
	}
	return order
}

func RandomProfile(r *rand.Rand) domain.CustomerProfile {
	return domain.CustomerProfile{Tier: pick(r, Tiers)}
}

func RandomDelivery(r *rand.Rand) domain.DeliveryContext {
	return domain.DeliveryContext{Zone: pick(r, Zones), Rush: r.Intn(2) == 1}
}

// Duplicate returns a copy of order with every item repeated twice.
func Duplicate(order domain.Order) domain.Order {
	items := make([]domain.OrderItem, 0, 2*len(order.Items))
	items = append(items, order.Items...)
	items = append(items, order.Items...)
	return domain.Order{Items: items}
}

// ScalePrices returns a copy of order with every unit price multiplied by factor.
func ScalePrices(order domain.Order, factor int64) domain.Order {
	items := make([]domain.OrderItem, len(order.Items))
	for i, item := range order.Items {
		item.UnitPriceCents *= factor
		items[i] = item
	}
	return domain.Order{Items: items}
}
