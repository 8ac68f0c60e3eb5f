package sink

import "sync"

// RecordBuffer is a growable ring of serialized records connecting the
// publish path to the Kafka flush loop. It doubles capacity at 70%
// occupancy, so producers never block on a slow broker.
type RecordBuffer struct {
	mu       sync.Mutex
	records  [][]byte
	head     int // read position
	tail     int // write position
	count    int
	capacity int
	closed   bool

	// Stats
	enqueued int64
	dequeued int64
	resizes  int
}

// NewRecordBuffer creates a buffer with the given initial capacity.
func NewRecordBuffer(initialCapacity int) *RecordBuffer {
	if initialCapacity < 1 {
		initialCapacity = 1
	}
	return &RecordBuffer{
		records:  make([][]byte, initialCapacity),
		capacity: initialCapacity,
	}
}

// Send enqueues a record, growing the ring when it reaches 70% occupancy.
// Returns false once the buffer is closed.
func (b *RecordBuffer) Send(record []byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return false
	}

	threshold := (b.capacity * 70) / 100
	if threshold < 1 {
		threshold = 1
	}
	if b.count+1 >= threshold {
		b.grow()
	}

	b.records[b.tail] = record
	b.tail = (b.tail + 1) % b.capacity
	b.count++
	b.enqueued++
	return true
}

// TryReceive dequeues one record without blocking. Remaining records stay
// receivable after Close until the buffer drains.
func (b *RecordBuffer) TryReceive() ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == 0 {
		return nil, false
	}
	return b.take(), true
}

// Drain dequeues up to max records (all of them when max <= 0).
func (b *RecordBuffer) Drain(max int) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.count
	if max > 0 && max < n {
		n = max
	}
	if n == 0 {
		return nil
	}

	out := make([][]byte, n)
	for i := range out {
		out[i] = b.take()
	}
	return out
}

// Close rejects further sends. Queued records remain receivable.
func (b *RecordBuffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}

// Len returns the number of queued records.
func (b *RecordBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Cap returns the current ring capacity.
func (b *RecordBuffer) Cap() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.capacity
}

// BufferStats describes a RecordBuffer's lifetime activity.
type BufferStats struct {
	Count    int
	Capacity int
	Enqueued int64
	Dequeued int64
	Resizes  int
}

// Stats returns a snapshot of the buffer's counters.
func (b *RecordBuffer) Stats() BufferStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return BufferStats{
		Count:    b.count,
		Capacity: b.capacity,
		Enqueued: b.enqueued,
		Dequeued: b.dequeued,
		Resizes:  b.resizes,
	}
}

// take removes the head record. Caller must hold the lock and have checked
// count > 0.
func (b *RecordBuffer) take() []byte {
	record := b.records[b.head]
	b.records[b.head] = nil
	b.head = (b.head + 1) % b.capacity
	b.count--
	b.dequeued++
	return record
}

// grow doubles capacity, unwrapping the ring. Caller must hold the lock.
func (b *RecordBuffer) grow() {
	grown := make([][]byte, b.capacity*2)
	if b.count > 0 {
		if b.head < b.tail {
			copy(grown, b.records[b.head:b.tail])
		} else {
			n := copy(grown, b.records[b.head:])
			copy(grown[n:], b.records[:b.tail])
		}
	}
	b.records = grown
	b.head = 0
	b.tail = b.count
	b.capacity *= 2
	b.resizes++
}
