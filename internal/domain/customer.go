package domain

type Tier string

const (
	TierGuest   Tier = "guest"
	TierRegular Tier = "regular"
	TierVIP     Tier = "vip"
)

type CustomerProfile struct {
	Tier Tier
}

// EffectiveTier resolves an empty or unrecognised tier to guest.
func (p CustomerProfile) EffectiveTier() Tier {
	switch p.Tier {
	case TierGuest, TierRegular, TierVIP:
		return p.Tier
	default:
		return TierGuest
	}
}
