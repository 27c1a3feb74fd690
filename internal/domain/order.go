package domain

type ItemKind string

const (
	ItemKindHot    ItemKind = "hot"
	ItemKindFrozen ItemKind = "frozen"
)

type OrderItem struct {
	Kind           ItemKind
	SKU            string
	Title          string
	Filling        string
	Qty            int
	UnitPriceCents int64
	AddOns         []string
}

// LineTotal is the item's undiscounted price in cents. Items without a
// positive quantity are malformed and contribute nothing.
func (i OrderItem) LineTotal() int64 {
	if i.Qty <= 0 {
		return 0
	}
	return i.UnitPriceCents * int64(i.Qty)
}

func (i OrderItem) HasAddOn(addOn string) bool {
	for _, a := range i.AddOns {
		if a == addOn {
			return true
		}
	}
	return false
}

type Order struct {
	Items []OrderItem
}

func (o Order) IsEmpty() bool {
	return len(o.Items) == 0
}
