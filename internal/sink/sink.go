package sink

import "context"

// Sink delivers serialized records to one destination.
//
// Publish must return quickly; sinks that talk to the network buffer
// internally. Start and Stop bracket any background work; Stop flushes
// whatever is still buffered before returning.
type Sink interface {
	Name() string
	Start(ctx context.Context) error
	Publish(record []byte) error
	Stop(ctx context.Context) error
}
