package config

import (
	"github.com/spf13/viper"

	"pierogi/internal/domain"
	"pierogi/internal/pricing/policy"
)

type Config struct {
	Log        LogConfig      `yaml:"log"`
	Tax        TaxConfig      `yaml:"tax"`
	Delivery   DeliveryConfig `yaml:"delivery"`
	PolicyFile string         `yaml:"-"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// TaxConfig holds per-mille rates by item kind.
type TaxConfig struct {
	HotPerMille    int64 `yaml:"hotPerMille"`
	FrozenPerMille int64 `yaml:"frozenPerMille"`
}

type DeliveryConfig struct {
	Local ZoneFeeConfig `yaml:"local"`
	Outer ZoneFeeConfig `yaml:"outer"`
}

type ZoneFeeConfig struct {
	Standard int64 `yaml:"standard"`
	Rush     int64 `yaml:"rush"`
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TAX_RATE_HOT", policy.DefaultHotPerMille)
	viper.SetDefault("TAX_RATE_FROZEN", policy.DefaultFrozenPerMille)
	viper.SetDefault("DELIVERY_FEE_LOCAL", policy.DefaultLocalFeeCents)
	viper.SetDefault("DELIVERY_FEE_LOCAL_RUSH", policy.DefaultLocalRushFeeCents)
	viper.SetDefault("DELIVERY_FEE_OUTER", policy.DefaultOuterFeeCents)
	viper.SetDefault("DELIVERY_FEE_OUTER_RUSH", policy.DefaultOuterRushFeeCents)
	viper.SetDefault("POLICY_FILE", "")

	cfg := &Config{
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Tax: TaxConfig{
			HotPerMille:    viper.GetInt64("TAX_RATE_HOT"),
			FrozenPerMille: viper.GetInt64("TAX_RATE_FROZEN"),
		},
		Delivery: DeliveryConfig{
			Local: ZoneFeeConfig{
				Standard: viper.GetInt64("DELIVERY_FEE_LOCAL"),
				Rush:     viper.GetInt64("DELIVERY_FEE_LOCAL_RUSH"),
			},
			Outer: ZoneFeeConfig{
				Standard: viper.GetInt64("DELIVERY_FEE_OUTER"),
				Rush:     viper.GetInt64("DELIVERY_FEE_OUTER_RUSH"),
			},
		},
		PolicyFile: viper.GetString("POLICY_FILE"),
	}

	return cfg, nil
}

func (c *Config) TaxRates() map[domain.ItemKind]int64 {
	return map[domain.ItemKind]int64{
		domain.ItemKindHot:    c.Tax.HotPerMille,
		domain.ItemKindFrozen: c.Tax.FrozenPerMille,
	}
}

func (c *Config) DeliveryFees() map[domain.Zone]policy.ZoneFees {
	return map[domain.Zone]policy.ZoneFees{
		domain.ZoneLocal: {Standard: c.Delivery.Local.Standard, Rush: c.Delivery.Local.Rush},
		domain.ZoneOuter: {Standard: c.Delivery.Outer.Standard, Rush: c.Delivery.Outer.Rush},
	}
}
