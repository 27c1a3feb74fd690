package dto

import "time"

type Quote struct {
	QuoteID             string      `json:"quoteId"`
	SubtotalCents       int64       `json:"subtotalCents"`
	VolumeDiscountCents int64       `json:"volumeDiscountCents"`
	CouponCode          string      `json:"couponCode,omitempty"`
	CouponDiscountCents int64       `json:"couponDiscountCents"`
	DiscountCents       int64       `json:"discountCents"`
	DiscountClamped     bool        `json:"discountClamped"`
	TaxCents            int64       `json:"taxCents"`
	DeliveryFeeCents    int64       `json:"deliveryFeeCents"`
	TotalCents          int64       `json:"totalCents"`
	Lines               []QuoteLine `json:"lines"`
	Timestamp           time.Time   `json:"timestamp"`
}

type QuoteLine struct {
	SKU                 string `json:"sku"`
	Title               string `json:"title"`
	Kind                string `json:"kind"`
	Qty                 int    `json:"qty"`
	LineTotalCents      int64  `json:"lineTotalCents"`
	VolumeDiscountCents int64  `json:"volumeDiscountCents"`
	TaxCents            int64  `json:"taxCents"`
}
