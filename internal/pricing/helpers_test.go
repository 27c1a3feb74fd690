package pricing

import "pierogi/internal/domain"

type stubRates map[domain.ItemKind]int64

func (s stubRates) PerMille(kind domain.ItemKind) int64 {
	return s[kind]
}

type stubFees struct {
	calls int
	fee   int64
}

func (s *stubFees) Fee(domain.Zone, bool) int64 {
	s.calls++
	return s.fee
}
