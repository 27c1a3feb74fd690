package pricing

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pierogi/internal/domain"
	"pierogi/internal/dto"
)

// Calculator binds the tax and delivery collaborators so callers only pass
// the order and its context. It holds no mutable state.
type Calculator struct {
	rates  TaxRateLookup
	fees   DeliveryFeeSchedule
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

func NewCalculator(rates TaxRateLookup, fees DeliveryFeeSchedule, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{
		rates:  rates,
		fees:   fees,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
	}
}

func (c *Calculator) Subtotal(order domain.Order) int64 {
	return Subtotal(order)
}

func (c *Calculator) Discounts(order domain.Order, profile domain.CustomerProfile, code string) int64 {
	return Discounts(order, profile, code)
}

func (c *Calculator) Tax(order domain.Order, delivery domain.DeliveryContext) int64 {
	return Tax(order, delivery, c.rates)
}

func (c *Calculator) DeliveryFee(order domain.Order, delivery domain.DeliveryContext, profile domain.CustomerProfile) int64 {
	return DeliveryFee(order, delivery, profile, c.fees)
}

func (c *Calculator) Total(
	order domain.Order,
	profile domain.CustomerProfile,
	delivery domain.DeliveryContext,
	code string,
) int64 {
	return Total(order, profile, delivery, code, c.rates, c.fees)
}

// Quote prices the order and itemises every component. Its totals match the
// individual operations exactly.
func (c *Calculator) Quote(
	order domain.Order,
	profile domain.CustomerProfile,
	delivery domain.DeliveryContext,
	code string,
) dto.Quote {
	quoteID := c.newID()
	logger := c.logger.With(zap.String("quoteId", quoteID))

	if code != "" && !IsKnownCoupon(code) {
		logger.Debug("unknown coupon code ignored", zap.String("couponCode", code))
	}

	b := computeBreakdown(order, profile, delivery, code, c.rates, c.fees)
	schedule := volumeSchedule(profile)

	lines := make([]dto.QuoteLine, len(order.Items))
	for i, item := range order.Items {
		lines[i] = dto.QuoteLine{
			SKU:                 item.SKU,
			Title:               item.Title,
			Kind:                string(item.Kind),
			Qty:                 item.Qty,
			LineTotalCents:      item.LineTotal(),
			VolumeDiscountCents: itemVolumeDiscount(item, schedule),
			TaxCents:            itemTax(item, c.rates),
		}
	}

	quote := dto.Quote{
		QuoteID:             quoteID,
		SubtotalCents:       b.subtotal,
		VolumeDiscountCents: b.volumeDiscount,
		CouponDiscountCents: b.couponDiscount,
		DiscountCents:       b.discount,
		DiscountClamped:     b.discountClamped,
		TaxCents:            b.tax,
		DeliveryFeeCents:    b.deliveryFee,
		TotalCents:          b.total,
		Lines:               lines,
		Timestamp:           c.now(),
	}
	if b.couponDiscount > 0 {
		quote.CouponCode = code
	}

	if b.discountClamped {
		logger.Info("discount clamped to subtotal",
			zap.Int64("subtotalCents", b.subtotal),
			zap.Int64("requestedDiscountCents", b.volumeDiscount+b.couponDiscount),
		)
	}

	logger.Debug("quote computed",
		zap.String("tier", string(profile.EffectiveTier())),
		zap.String("zone", string(delivery.EffectiveZone())),
		zap.Bool("rush", delivery.Rush),
		zap.Int("itemCount", len(order.Items)),
		zap.Int64("subtotalCents", b.subtotal),
		zap.Int64("discountCents", b.discount),
		zap.Int64("taxCents", b.tax),
		zap.Int64("deliveryFeeCents", b.deliveryFee),
		zap.Int64("totalCents", b.total),
	)

	return quote
}
