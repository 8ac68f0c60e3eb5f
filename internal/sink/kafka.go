package sink

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the slice of kafka-go's Writer the sink depends on.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ErrSinkClosed is returned by Publish after the sink has been stopped.
var ErrSinkClosed = errors.New("sink closed")

// KafkaConfig configures the Kafka sink.
type KafkaConfig struct {
	Brokers       []string
	Topic         string
	BatchSize     int           // Records per broker write (default: 100)
	FlushInterval time.Duration // Max time a record waits in the batch (default: 1s)
	BufferSize    int           // Initial record buffer capacity (default: 256)
}

// NewWriter builds the kafka-go writer the sink publishes through.
func NewWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// KafkaMetrics counts delivery outcomes.
type KafkaMetrics struct {
	Published int64 // Records accepted by Publish
	Written   int64 // Records acknowledged by the broker
	Errors    int64 // Failed batch writes
	Flushes   int64
}

// KafkaSink batches records and publishes them to one topic. Records flow
// Publish -> RecordBuffer -> consume loop -> batch -> broker, so a slow or
// unreachable broker never stalls the generation cadence.
type KafkaSink struct {
	cfg    KafkaConfig
	logger *slog.Logger

	writer messageWriter
	input  *RecordBuffer

	// Batching
	batch       [][]byte
	batchMu     sync.Mutex
	flushTicker *time.Ticker

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	metrics KafkaMetrics
}

// NewKafkaSink creates a Kafka sink publishing through the given writer.
// The sink owns the writer and closes it on Stop. A nil logger means
// slog.Default().
func NewKafkaSink(cfg KafkaConfig, writer messageWriter, logger *slog.Logger) *KafkaSink {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 256
	}
	return &KafkaSink{
		cfg:    cfg,
		logger: logger,
		writer: writer,
		input:  NewRecordBuffer(cfg.BufferSize),
		batch:  make([][]byte, 0, cfg.BatchSize),
	}
}

// Name identifies the sink in logs and stats.
func (s *KafkaSink) Name() string { return "kafka" }

// Start launches the consume and flush loops.
func (s *KafkaSink) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.flushTicker = time.NewTicker(s.cfg.FlushInterval)

	s.wg.Add(1)
	go s.consumeLoop()

	s.wg.Add(1)
	go s.flushLoop()

	s.logger.Info("kafka sink started",
		"brokers", s.cfg.Brokers,
		"topic", s.cfg.Topic,
		"batch_size", s.cfg.BatchSize,
		"flush_interval", s.cfg.FlushInterval,
	)
	return nil
}

// Publish enqueues one record for delivery.
func (s *KafkaSink) Publish(record []byte) error {
	if !s.input.Send(record) {
		return ErrSinkClosed
	}
	s.batchMu.Lock()
	s.metrics.Published++
	s.batchMu.Unlock()
	return nil
}

// Stop shuts the loops down, drains everything still queued, and closes the
// writer. The context bounds how long to wait for the loops.
func (s *KafkaSink) Stop(ctx context.Context) error {
	s.logger.Info("stopping kafka sink")

	if s.cancel != nil {
		s.cancel()
	}
	if s.flushTicker != nil {
		s.flushTicker.Stop()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("kafka sink stop timed out")
	}

	// Loops are down; take whatever they left behind and flush it.
	s.input.Close()
	if remaining := s.input.Drain(0); len(remaining) > 0 {
		s.batchMu.Lock()
		s.batch = append(s.batch, remaining...)
		s.batchMu.Unlock()
	}
	s.flush(ctx)

	if err := s.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	s.logger.Info("kafka sink stopped")
	return nil
}

// Stats returns current metrics.
func (s *KafkaSink) Stats() KafkaMetrics {
	s.batchMu.Lock()
	defer s.batchMu.Unlock()
	return s.metrics
}

// consumeLoop moves records from the input buffer into the batch.
func (s *KafkaSink) consumeLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
			record, ok := s.input.TryReceive()
			if !ok {
				select {
				case <-s.ctx.Done():
					return
				case <-time.After(10 * time.Millisecond):
					continue
				}
			}
			s.handleRecord(record)
		}
	}
}

// flushLoop bounds the latency of partially filled batches.
func (s *KafkaSink) flushLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.flushTicker.C:
			s.flush(s.ctx)
		}
	}
}

// handleRecord appends to the batch and flushes when it reaches BatchSize.
func (s *KafkaSink) handleRecord(record []byte) {
	s.batchMu.Lock()
	s.batch = append(s.batch, record)
	shouldFlush := len(s.batch) >= s.cfg.BatchSize
	s.batchMu.Unlock()

	if shouldFlush {
		s.flush(s.ctx)
	}
}

// flush writes the current batch to the broker.
func (s *KafkaSink) flush(ctx context.Context) {
	s.batchMu.Lock()
	if len(s.batch) == 0 {
		s.batchMu.Unlock()
		return
	}
	batch := s.batch
	s.batch = make([][]byte, 0, s.cfg.BatchSize)
	s.batchMu.Unlock()

	msgs := make([]kafka.Message, len(batch))
	for i, record := range batch {
		msgs[i] = kafka.Message{Topic: s.cfg.Topic, Value: record}
	}

	start := time.Now()
	if err := s.writer.WriteMessages(ctx, msgs...); err != nil {
		s.logger.Error("kafka batch write failed", "error", err, "count", len(batch))
		s.batchMu.Lock()
		s.metrics.Errors++
		s.batchMu.Unlock()
		return
	}

	s.batchMu.Lock()
	s.metrics.Written += int64(len(batch))
	s.metrics.Flushes++
	s.batchMu.Unlock()

	s.logger.Debug("flushed records",
		"count", len(batch),
		"duration", time.Since(start),
	)
}
