package config

import (
	"errors"
	"fmt"
)

// Upper bound on the stream rate; above this the tick interval collapses
// below a microsecond.
const maxRate = 1_000_000

// Validate checks that all required fields are set and values are valid.
func (c *StreamerConfig) Validate() error {
	switch c.Generator.Module {
	case "stock", "supermarket":
	case "":
		return errors.New("generator.module is required")
	default:
		return fmt.Errorf("generator.module must be \"stock\" or \"supermarket\", got %q", c.Generator.Module)
	}
	if c.Generator.Variants < 0 {
		return errors.New("generator.variants must be >= 0")
	}

	if c.Stream.Rate < 1 {
		return errors.New("stream.rate must be >= 1")
	}
	if c.Stream.Rate > maxRate {
		return fmt.Errorf("stream.rate must be <= %d, got %d", maxRate, c.Stream.Rate)
	}

	if err := c.Kafka.validate(); err != nil {
		return err
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}

	if err := c.Stock.validate(); err != nil {
		return err
	}
	return c.Supermarket.validate()
}

func (k *KafkaConfig) validate() error {
	if (len(k.Brokers) > 0) != (k.Topic != "") {
		return errors.New("kafka.brokers and kafka.topic must be set together")
	}
	if k.BatchSize < 1 {
		return errors.New("kafka.batch_size must be >= 1")
	}
	if k.FlushInterval <= 0 {
		return errors.New("kafka.flush_interval must be > 0")
	}
	if k.BufferSize < 1 {
		return errors.New("kafka.buffer_size must be >= 1")
	}
	return nil
}

func (s *StockConfig) validate() error {
	if s.Volatility < 0 {
		return errors.New("stock.volatility must be >= 0")
	}
	if s.Dt <= 0 {
		return errors.New("stock.dt must be > 0")
	}
	if s.PriceFloor <= 0 {
		return errors.New("stock.price_floor must be > 0")
	}
	if s.BaseSpread <= 0 {
		return errors.New("stock.base_spread must be > 0")
	}
	if s.ExtraSpreadMax < 0 {
		return errors.New("stock.extra_spread_max must be >= 0")
	}
	if s.BaseVolume < 0 {
		return errors.New("stock.base_volume must be >= 0")
	}
	if s.VolumeJitterMax < 0 {
		return errors.New("stock.volume_jitter_max must be >= 0")
	}
	if s.InitialPriceMin <= 0 {
		return errors.New("stock.initial_price_min must be > 0")
	}
	if s.InitialPriceMax < s.InitialPriceMin {
		return fmt.Errorf("stock.initial_price_max (%v) cannot be below initial_price_min (%v)",
			s.InitialPriceMax, s.InitialPriceMin)
	}
	if s.InitialSpreadMin <= 0 {
		return errors.New("stock.initial_spread_min must be > 0")
	}
	if s.InitialSpreadMax < s.InitialSpreadMin {
		return fmt.Errorf("stock.initial_spread_max (%v) cannot be below initial_spread_min (%v)",
			s.InitialSpreadMax, s.InitialSpreadMin)
	}
	return nil
}

func (s *SupermarketConfig) validate() error {
	if s.BasketSizeMin < 1 {
		return errors.New("supermarket.basket_size_min must be >= 1")
	}
	if s.BasketSizeMax < s.BasketSizeMin {
		return fmt.Errorf("supermarket.basket_size_max (%d) cannot be below basket_size_min (%d)",
			s.BasketSizeMax, s.BasketSizeMin)
	}
	if s.QuantityMin < 1 {
		return errors.New("supermarket.quantity_min must be >= 1")
	}
	if s.QuantityMax < s.QuantityMin {
		return fmt.Errorf("supermarket.quantity_max (%d) cannot be below quantity_min (%d)",
			s.QuantityMax, s.QuantityMin)
	}
	return nil
}
