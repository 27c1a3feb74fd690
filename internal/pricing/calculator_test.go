package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pierogi/internal/domain"
	"pierogi/internal/pricing/policy"
	"pierogi/internal/testutil"
)

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestCalculator(logger *zap.Logger) *Calculator {
	c := NewCalculator(policy.DefaultTaxRateTable(), policy.DefaultDeliveryFeeTable(), logger)
	c.now = func() time.Time { return fixedNow }
	c.newID = func() string { return "quote-1" }
	return c
}

func TestNewCalculator_NilLogger(t *testing.T) {
	c := NewCalculator(policy.DefaultTaxRateTable(), policy.DefaultDeliveryFeeTable(), nil)

	assert.NotNil(t, c.logger)
	assert.NotPanics(t, func() {
		c.Quote(domain.Order{}, domain.CustomerProfile{}, domain.DeliveryContext{}, "")
	})
}

func TestCalculator_DelegatesToComponents(t *testing.T) {
	c := newTestCalculator(zap.NewNop())
	order := testutil.OrderOf(
		testutil.Item(domain.ItemKindHot, 24, 1000),
		testutil.SixPack("potato", 800),
		testutil.SixPack("potato", 900),
	)
	profile := domain.CustomerProfile{Tier: domain.TierRegular}
	delivery := domain.DeliveryContext{Zone: domain.ZoneOuter}

	assert.Equal(t, Subtotal(order), c.Subtotal(order))
	assert.Equal(t, Discounts(order, profile, CouponPierogiBOGO), c.Discounts(order, profile, CouponPierogiBOGO))
	assert.Equal(t, Tax(order, delivery, c.rates), c.Tax(order, delivery))
	assert.Equal(t, int64(799), c.DeliveryFee(order, delivery, profile))
	assert.Equal(t, Total(order, profile, delivery, CouponPierogiBOGO, c.rates, c.fees), c.Total(order, profile, delivery, CouponPierogiBOGO))
}

func TestCalculator_Quote(t *testing.T) {
	c := newTestCalculator(zap.NewNop())
	order := testutil.OrderOf(
		domain.OrderItem{Kind: domain.ItemKindHot, SKU: "P24-POTATO", Title: "Potato 24", Filling: "potato", Qty: 24, UnitPriceCents: 1000},
		domain.OrderItem{Kind: domain.ItemKindFrozen, SKU: "P6-SAUER", Title: "Sauerkraut 6", Filling: "sauerkraut", Qty: 6, UnitPriceCents: 700},
	)
	profile := domain.CustomerProfile{Tier: domain.TierRegular}
	delivery := domain.DeliveryContext{Zone: domain.ZoneLocal, Rush: true}

	quote := c.Quote(order, profile, delivery, CouponFirst10)

	assert.Equal(t, "quote-1", quote.QuoteID)
	assert.Equal(t, fixedNow, quote.Timestamp)
	assert.Equal(t, int64(28200), quote.SubtotalCents)
	assert.Equal(t, int64(2880), quote.VolumeDiscountCents)
	assert.Equal(t, CouponFirst10, quote.CouponCode)
	assert.Equal(t, int64(2820), quote.CouponDiscountCents)
	assert.Equal(t, int64(5700), quote.DiscountCents)
	assert.False(t, quote.DiscountClamped)
	assert.Equal(t, int64(1920), quote.TaxCents)
	assert.Equal(t, int64(999), quote.DeliveryFeeCents)
	assert.Equal(t, int64(28200-5700+1920+999), quote.TotalCents)
	assert.Equal(t, c.Total(order, profile, delivery, CouponFirst10), quote.TotalCents)

	require.Len(t, quote.Lines, 2)
	assert.Equal(t, "P24-POTATO", quote.Lines[0].SKU)
	assert.Equal(t, "hot", quote.Lines[0].Kind)
	assert.Equal(t, int64(24000), quote.Lines[0].LineTotalCents)
	assert.Equal(t, int64(2880), quote.Lines[0].VolumeDiscountCents)
	assert.Equal(t, int64(1920), quote.Lines[0].TaxCents)
	assert.Equal(t, "P6-SAUER", quote.Lines[1].SKU)
	assert.Equal(t, int64(4200), quote.Lines[1].LineTotalCents)
	assert.Equal(t, int64(0), quote.Lines[1].VolumeDiscountCents)
	assert.Equal(t, int64(0), quote.Lines[1].TaxCents)
}

func TestCalculator_Quote_CouponCodeOnlyWhenApplied(t *testing.T) {
	c := newTestCalculator(zap.NewNop())
	order := testutil.OrderOf(testutil.SixPack("potato", 1000), testutil.SixPack("mushroom", 1000))

	quote := c.Quote(order, domain.CustomerProfile{}, domain.DeliveryContext{}, CouponPierogiBOGO)

	assert.Empty(t, quote.CouponCode)
	assert.Equal(t, int64(0), quote.CouponDiscountCents)
}

func TestCalculator_Quote_LogsClampedDiscount(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := newTestCalculator(zap.New(core))
	order := testutil.OrderOf(
		testutil.SixPack("potato", 1000),
		testutil.SixPack("potato", 1000),
		testutil.Item(domain.ItemKindFrozen, 1, -11000),
	)

	quote := c.Quote(order, domain.CustomerProfile{}, domain.DeliveryContext{}, CouponPierogiBOGO)

	assert.True(t, quote.DiscountClamped)
	assert.Equal(t, int64(1000), quote.DiscountCents)
	assert.Equal(t, int64(3000), quote.CouponDiscountCents)

	entries := logs.FilterMessage("discount clamped to subtotal").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "quote-1", fields["quoteId"])
	assert.Equal(t, int64(1000), fields["subtotalCents"])
	assert.Equal(t, int64(3000), fields["requestedDiscountCents"])
}

func TestCalculator_Quote_LogsUnknownCoupon(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := newTestCalculator(zap.New(core))

	c.Quote(testutil.OrderOf(testutil.SixPack("potato", 1000)), domain.CustomerProfile{}, domain.DeliveryContext{}, "SPRING25")

	entries := logs.FilterMessage("unknown coupon code ignored").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "SPRING25", entries[0].ContextMap()["couponCode"])
	assert.Equal(t, 1, logs.FilterMessage("quote computed").Len())
}
