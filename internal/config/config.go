// Package config defines the YAML configuration for a fluxgen run.
//
// Loading happens in three stages (Load, LoadWithDefaults, LoadAndValidate)
// so callers can choose how much resolution they need. Values left at zero
// fall back to documented defaults; ${VAR} references expand from the
// environment.
package config

import "time"

// StreamerConfig is the root configuration for a fluxgen instance.
type StreamerConfig struct {
	Generator   GeneratorConfig   `yaml:"generator"`
	Stream      StreamConfig      `yaml:"stream"`
	Kafka       KafkaConfig       `yaml:"kafka"`
	Logging     LoggingConfig     `yaml:"logging"`
	Stock       StockConfig       `yaml:"stock"`
	Supermarket SupermarketConfig `yaml:"supermarket"`
}

// GeneratorConfig selects and seeds the generator module.
type GeneratorConfig struct {
	Module   string `yaml:"module"`   // "stock" or "supermarket"
	Variants int    `yaml:"variants"` // Simulated instrument count (stock module)
	Seed     int64  `yaml:"seed"`     // Deterministic randomness when non-zero
}

// StreamConfig holds cadence settings.
type StreamConfig struct {
	Rate int `yaml:"rate"` // Records per second
}

// KafkaConfig holds optional broker delivery settings. Delivery is enabled
// only when both brokers and topic are present.
type KafkaConfig struct {
	Brokers       []string      `yaml:"brokers"`
	Topic         string        `yaml:"topic"`
	BatchSize     int           `yaml:"batch_size"`
	FlushInterval time.Duration `yaml:"flush_interval"`
	BufferSize    int           `yaml:"buffer_size"`
}

// Enabled reports whether Kafka delivery is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.Topic != ""
}

// LoggingConfig controls the slog handler. Logs always go to stderr; File
// adds a rotating copy on disk.
type LoggingConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // Optional log file path
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// StockConfig tunes the quote simulation.
type StockConfig struct {
	Drift            float64 `yaml:"drift"`
	Volatility       float64 `yaml:"volatility"`
	Dt               float64 `yaml:"dt"` // Step size in years
	PriceFloor       float64 `yaml:"price_floor"`
	BaseSpread       float64 `yaml:"base_spread"`
	ExtraSpreadMax   float64 `yaml:"extra_spread_max"`
	BaseVolume       int64   `yaml:"base_volume"`
	VolumeJitterMax  int64   `yaml:"volume_jitter_max"`
	InitialPriceMin  float64 `yaml:"initial_price_min"`
	InitialPriceMax  float64 `yaml:"initial_price_max"`
	InitialSpreadMin float64 `yaml:"initial_spread_min"`
	InitialSpreadMax float64 `yaml:"initial_spread_max"`
}

// SupermarketConfig tunes the basket simulation.
type SupermarketConfig struct {
	BasketSizeMin int `yaml:"basket_size_min"`
	BasketSizeMax int `yaml:"basket_size_max"`
	QuantityMin   int `yaml:"quantity_min"`
	QuantityMax   int `yaml:"quantity_max"`
}
