package pricing

import (
	"go.uber.org/zap"

	"pierogi/internal/config"
	apperrors "pierogi/internal/errors"
	"pierogi/internal/pricing/policy"
)

func NewModule(cfg *config.Config, logger *zap.Logger) (*Calculator, error) {
	rates, err := policy.NewTaxRateTable(cfg.TaxRates())
	if err != nil {
		return nil, apperrors.NewInternalError("invalid pricing policy", err)
	}

	fees, err := policy.NewDeliveryFeeTable(cfg.DeliveryFees())
	if err != nil {
		return nil, apperrors.NewInternalError("invalid pricing policy", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("pricing policy loaded",
		zap.String("policyFile", cfg.PolicyFile),
		zap.Int64("hotTaxPerMille", cfg.Tax.HotPerMille),
		zap.Int64("frozenTaxPerMille", cfg.Tax.FrozenPerMille),
		zap.Int64("localFeeCents", cfg.Delivery.Local.Standard),
		zap.Int64("localRushFeeCents", cfg.Delivery.Local.Rush),
		zap.Int64("outerFeeCents", cfg.Delivery.Outer.Standard),
		zap.Int64("outerRushFeeCents", cfg.Delivery.Outer.Rush),
	)

	return NewCalculator(rates, fees, logger), nil
}
