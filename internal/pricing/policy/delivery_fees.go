package policy

import (
	"fmt"
	"sort"

	"pierogi/internal/domain"
	apperrors "pierogi/internal/errors"
)

const (
	DefaultLocalFeeCents     int64 = 499
	DefaultLocalRushFeeCents int64 = 999
	DefaultOuterFeeCents     int64 = 799
	DefaultOuterRushFeeCents int64 = 1499
)

type ZoneFees struct {
	Standard int64
	Rush     int64
}

func (f ZoneFees) pick(rush bool) int64 {
	if rush {
		return f.Rush
	}
	return f.Standard
}

// DeliveryFeeTable holds the flat per-order fee for each zone. The local entry
// is mandatory and also prices zones the table does not list.
type DeliveryFeeTable struct {
	fees map[domain.Zone]ZoneFees
}

func NewDeliveryFeeTable(fees map[domain.Zone]ZoneFees) (*DeliveryFeeTable, error) {
	var details []apperrors.ValidationDetail
	if _, ok := fees[domain.ZoneLocal]; !ok {
		details = append(details, apperrors.ValidationDetail{
			Field:   string(domain.ZoneLocal),
			Message: "local zone fees are required",
		})
	}

	copied := make(map[domain.Zone]ZoneFees, len(fees))
	for zone, zf := range fees {
		if zf.Standard < 0 {
			details = append(details, negativeFee(zone, "standard", zf.Standard))
		}
		if zf.Rush < 0 {
			details = append(details, negativeFee(zone, "rush", zf.Rush))
		}
		copied[zone] = zf
	}

	if len(details) > 0 {
		sortDetails(details)
		return nil, apperrors.NewValidationError("invalid delivery fee table", details...)
	}

	return &DeliveryFeeTable{fees: copied}, nil
}

func DefaultDeliveryFeeTable() *DeliveryFeeTable {
	return &DeliveryFeeTable{fees: map[domain.Zone]ZoneFees{
		domain.ZoneLocal: {Standard: DefaultLocalFeeCents, Rush: DefaultLocalRushFeeCents},
		domain.ZoneOuter: {Standard: DefaultOuterFeeCents, Rush: DefaultOuterRushFeeCents},
	}}
}

func (t *DeliveryFeeTable) Fee(zone domain.Zone, rush bool) int64 {
	if zf, ok := t.fees[zone]; ok {
		return zf.pick(rush)
	}
	return t.fees[domain.ZoneLocal].pick(rush)
}

func negativeFee(zone domain.Zone, column string, fee int64) apperrors.ValidationDetail {
	return apperrors.ValidationDetail{
		Field:   fmt.Sprintf("%s.%s", zone, column),
		Message: fmt.Sprintf("fee must be non-negative, got %d", fee),
	}
}

// Map iteration order is random; keep error output stable.
func sortDetails(details []apperrors.ValidationDetail) {
	sort.Slice(details, func(i, j int) bool { return details[i].Field < details[j].Field })
}
