// Package sink implements record delivery targets for the stream driver.
//
// Sinks:
//   - Console sink: line-delimited records on an io.Writer (stdout by default)
//   - Kafka sink: batched topic publishes via segmentio/kafka-go
//
// The Kafka sink decouples the driver's cadence from broker latency with an
// internal record buffer; a consume loop batches records and a flush loop
// bounds their latency. Publish never blocks on the network.
package sink
