package domain

type Zone string

const (
	ZoneLocal Zone = "local"
	ZoneOuter Zone = "outer"
)

type DeliveryContext struct {
	Zone Zone
	Rush bool
}

// EffectiveZone resolves an empty or unrecognised zone to local.
func (d DeliveryContext) EffectiveZone() Zone {
	if d.Zone == ZoneOuter {
		return ZoneOuter
	}
	return ZoneLocal
}
