package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rickgao/fluxgen/internal/config"
	"github.com/rickgao/fluxgen/internal/generator"
	"github.com/rickgao/fluxgen/internal/sink"
	"github.com/rickgao/fluxgen/internal/stock"
	"github.com/rickgao/fluxgen/internal/stream"
	"github.com/rickgao/fluxgen/internal/supermarket"
	"github.com/rickgao/fluxgen/internal/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	module := flag.String("module", "", "generator module: stock or supermarket")
	mps := flag.Int("mps", 0, "records per second")
	variants := flag.Int("variants", 0, "simulated instrument count (stock module)")
	seed := flag.Int64("seed", 0, "deterministic seed (0 = time-seeded)")
	broker := flag.String("broker", "", "Kafka broker address(es), comma-separated (optional)")
	topic := flag.String("topic", "", "Kafka topic (optional, requires -broker)")
	flag.Parse()

	// Bootstrap logger until the configured one is ready. Logs go to stderr
	// so stdout stays a clean record stream.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// CLI flags override file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "module":
			cfg.Generator.Module = *module
		case "mps":
			cfg.Stream.Rate = *mps
		case "variants":
			cfg.Generator.Variants = *variants
		case "seed":
			cfg.Generator.Seed = *seed
		case "broker":
			cfg.Kafka.Brokers = strings.Split(*broker, ",")
		case "topic":
			cfg.Kafka.Topic = *topic
		}
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger = newLogger(cfg.Logging)
	slog.SetDefault(logger)

	logger.Info("starting fluxgen",
		"version", version.Version,
		"commit", version.Commit,
		"module", cfg.Generator.Module,
		"rate", cfg.Stream.Rate,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	gen, err := generator.New(cfg.Generator.Module, generator.Options{
		Variants:    cfg.Generator.Variants,
		Seed:        cfg.Generator.Seed,
		Stock:       stockConfig(cfg.Stock),
		Supermarket: supermarketConfig(cfg.Supermarket),
		Logger:      logger,
	})
	if err != nil {
		logger.Error("failed to create generator", "error", err)
		os.Exit(1)
	}

	// Console delivery is always on; Kafka joins when configured.
	sinks := []sink.Sink{sink.NewConsoleSink(os.Stdout)}
	if cfg.Kafka.Enabled() {
		kafkaCfg := sink.KafkaConfig{
			Brokers:       cfg.Kafka.Brokers,
			Topic:         cfg.Kafka.Topic,
			BatchSize:     cfg.Kafka.BatchSize,
			FlushInterval: cfg.Kafka.FlushInterval,
			BufferSize:    cfg.Kafka.BufferSize,
		}
		sinks = append(sinks, sink.NewKafkaSink(kafkaCfg, sink.NewWriter(kafkaCfg), logger))
	}

	for _, s := range sinks {
		if err := s.Start(ctx); err != nil {
			logger.Error("failed to start sink", "sink", s.Name(), "error", err)
			os.Exit(1)
		}
	}

	driver := stream.New(stream.Config{Rate: cfg.Stream.Rate}, gen, sinks, logger)
	if err := driver.Start(ctx); err != nil {
		logger.Error("failed to start stream driver", "error", err)
		os.Exit(1)
	}

	logger.Info("fluxgen running", "sinks", len(sinks))

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// Stop the driver first so sinks can flush a quiet stream.
	if err := driver.Stop(shutdownCtx); err != nil {
		logger.Error("stream driver stop failed", "error", err)
	}
	for _, s := range sinks {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("sink stop failed", "sink", s.Name(), "error", err)
		}
	}

	stats := driver.Stats()
	logger.Info("fluxgen stopped",
		"produced", stats.Produced,
		"sink_errors", stats.SinkErrors,
	)

	// Final state dump on stdout, after the record stream has gone quiet.
	fmt.Println("\n--- Generator Internal State Dump ---")
	fmt.Println(gen.Snapshot())
}

// newLogger builds the run logger: a text handler on stderr, plus a
// rotating file copy when one is configured.
func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var w io.Writer = os.Stderr
	if cfg.File != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// stockConfig maps the config file section onto the engine's parameters.
func stockConfig(c config.StockConfig) stock.Config {
	return stock.Config{
		Drift:            c.Drift,
		Volatility:       c.Volatility,
		Dt:               c.Dt,
		PriceFloor:       c.PriceFloor,
		BaseSpread:       c.BaseSpread,
		ExtraSpreadMax:   c.ExtraSpreadMax,
		BaseVolume:       c.BaseVolume,
		VolumeJitterMax:  c.VolumeJitterMax,
		InitialPriceMin:  c.InitialPriceMin,
		InitialPriceMax:  c.InitialPriceMax,
		InitialSpreadMin: c.InitialSpreadMin,
		InitialSpreadMax: c.InitialSpreadMax,
	}
}

func supermarketConfig(c config.SupermarketConfig) supermarket.Config {
	return supermarket.Config{
		BasketSizeMin: c.BasketSizeMin,
		BasketSizeMax: c.BasketSizeMax,
		QuantityMin:   c.QuantityMin,
		QuantityMax:   c.QuantityMax,
	}
}
