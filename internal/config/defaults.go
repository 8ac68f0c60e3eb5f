package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultModule   = "stock"
	DefaultVariants = 5
	DefaultRate     = 1

	DefaultKafkaBatchSize     = 100
	DefaultKafkaFlushInterval = 1 * time.Second
	DefaultKafkaBufferSize    = 256

	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 100
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 7

	DefaultStockDrift           = 0.0001
	DefaultStockVolatility      = 0.01
	DefaultStockDt              = 1.0 / 252.0
	DefaultStockPriceFloor      = 0.01
	DefaultStockBaseSpread      = 0.001
	DefaultStockExtraSpreadMax  = 0.001
	DefaultStockBaseVolume      = 1000
	DefaultStockVolumeJitterMax = 500
	DefaultInitialPriceMin      = 100
	DefaultInitialPriceMax      = 200
	DefaultInitialSpreadMin     = 0.001
	DefaultInitialSpreadMax     = 0.002

	DefaultBasketSizeMin = 5
	DefaultBasketSizeMax = 16
	DefaultQuantityMin   = 1
	DefaultQuantityMax   = 5
)

// Default returns a fully defaulted configuration, the starting point when
// no config file is given.
func Default() *StreamerConfig {
	cfg := &StreamerConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *StreamerConfig) applyDefaults() {
	// Generator defaults
	if c.Generator.Module == "" {
		c.Generator.Module = DefaultModule
	}
	if c.Generator.Variants == 0 {
		c.Generator.Variants = DefaultVariants
	}

	// Stream defaults
	if c.Stream.Rate == 0 {
		c.Stream.Rate = DefaultRate
	}

	// Kafka defaults
	if c.Kafka.BatchSize == 0 {
		c.Kafka.BatchSize = DefaultKafkaBatchSize
	}
	if c.Kafka.FlushInterval == 0 {
		c.Kafka.FlushInterval = DefaultKafkaFlushInterval
	}
	if c.Kafka.BufferSize == 0 {
		c.Kafka.BufferSize = DefaultKafkaBufferSize
	}

	// Logging defaults
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = DefaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = DefaultLogMaxBackups
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = DefaultLogMaxAgeDays
	}

	// Stock defaults
	if c.Stock.Drift == 0 {
		c.Stock.Drift = DefaultStockDrift
	}
	if c.Stock.Volatility == 0 {
		c.Stock.Volatility = DefaultStockVolatility
	}
	if c.Stock.Dt == 0 {
		c.Stock.Dt = DefaultStockDt
	}
	if c.Stock.PriceFloor == 0 {
		c.Stock.PriceFloor = DefaultStockPriceFloor
	}
	if c.Stock.BaseSpread == 0 {
		c.Stock.BaseSpread = DefaultStockBaseSpread
	}
	if c.Stock.ExtraSpreadMax == 0 {
		c.Stock.ExtraSpreadMax = DefaultStockExtraSpreadMax
	}
	if c.Stock.BaseVolume == 0 {
		c.Stock.BaseVolume = DefaultStockBaseVolume
	}
	if c.Stock.VolumeJitterMax == 0 {
		c.Stock.VolumeJitterMax = DefaultStockVolumeJitterMax
	}
	if c.Stock.InitialPriceMin == 0 {
		c.Stock.InitialPriceMin = DefaultInitialPriceMin
	}
	if c.Stock.InitialPriceMax == 0 {
		c.Stock.InitialPriceMax = DefaultInitialPriceMax
	}
	if c.Stock.InitialSpreadMin == 0 {
		c.Stock.InitialSpreadMin = DefaultInitialSpreadMin
	}
	if c.Stock.InitialSpreadMax == 0 {
		c.Stock.InitialSpreadMax = DefaultInitialSpreadMax
	}

	// Supermarket defaults
	if c.Supermarket.BasketSizeMin == 0 {
		c.Supermarket.BasketSizeMin = DefaultBasketSizeMin
	}
	if c.Supermarket.BasketSizeMax == 0 {
		c.Supermarket.BasketSizeMax = DefaultBasketSizeMax
	}
	if c.Supermarket.QuantityMin == 0 {
		c.Supermarket.QuantityMin = DefaultQuantityMin
	}
	if c.Supermarket.QuantityMax == 0 {
		c.Supermarket.QuantityMax = DefaultQuantityMax
	}
}
