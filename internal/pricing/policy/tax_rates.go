package policy

import (
	"fmt"

	"pierogi/internal/domain"
	apperrors "pierogi/internal/errors"
)

const (
	DefaultHotPerMille    int64 = 80
	DefaultFrozenPerMille int64 = 0

	maxPerMille int64 = 1000
)

// TaxRateTable maps item kinds to per-mille tax rates. Kinds missing from the
// table are untaxed.
type TaxRateTable struct {
	rates map[domain.ItemKind]int64
}

func NewTaxRateTable(rates map[domain.ItemKind]int64) (*TaxRateTable, error) {
	var details []apperrors.ValidationDetail
	copied := make(map[domain.ItemKind]int64, len(rates))
	for kind, rate := range rates {
		if rate < 0 || rate > maxPerMille {
			details = append(details, apperrors.ValidationDetail{
				Field:   string(kind),
				Message: fmt.Sprintf("per-mille rate must be between 0 and %d, got %d", maxPerMille, rate),
			})
			continue
		}
		copied[kind] = rate
	}

	if len(details) > 0 {
		sortDetails(details)
		return nil, apperrors.NewValidationError("invalid tax rate table", details...)
	}

	return &TaxRateTable{rates: copied}, nil
}

func DefaultTaxRateTable() *TaxRateTable {
	return &TaxRateTable{rates: map[domain.ItemKind]int64{
		domain.ItemKindHot:    DefaultHotPerMille,
		domain.ItemKindFrozen: DefaultFrozenPerMille,
	}}
}

func (t *TaxRateTable) PerMille(kind domain.ItemKind) int64 {
	return t.rates[kind]
}
