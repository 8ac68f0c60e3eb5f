package sink

import (
	"fmt"
	"sync"
	"testing"
)

func record(i int) []byte {
	return []byte(fmt.Sprintf("record-%d", i))
}

func TestRecordBuffer_SendReceiveOrder(t *testing.T) {
	buf := NewRecordBuffer(10)

	for i := 0; i < 5; i++ {
		if !buf.Send(record(i)) {
			t.Fatalf("Send(%d) returned false", i)
		}
	}
	if buf.Len() != 5 {
		t.Errorf("Len() = %d, want 5", buf.Len())
	}

	for i := 0; i < 5; i++ {
		got, ok := buf.TryReceive()
		if !ok {
			t.Fatalf("TryReceive() returned false for record %d", i)
		}
		if string(got) != string(record(i)) {
			t.Errorf("received %q, want %q", got, record(i))
		}
	}

	if _, ok := buf.TryReceive(); ok {
		t.Error("TryReceive() on empty buffer returned ok")
	}
}

func TestRecordBuffer_GrowAt70Percent(t *testing.T) {
	buf := NewRecordBuffer(10)

	for i := 0; i < 7; i++ {
		buf.Send(record(i))
	}

	stats := buf.Stats()
	if stats.Capacity <= 10 {
		t.Errorf("Capacity = %d, expected growth after 70%% fill", stats.Capacity)
	}
	if stats.Resizes != 1 {
		t.Errorf("Resizes = %d, want 1", stats.Resizes)
	}

	for i := 0; i < 7; i++ {
		got, ok := buf.TryReceive()
		if !ok {
			t.Fatalf("TryReceive() returned false for record %d", i)
		}
		if string(got) != string(record(i)) {
			t.Errorf("received %q, want %q", got, record(i))
		}
	}
}

func TestRecordBuffer_WrapAroundSurvivesGrow(t *testing.T) {
	buf := NewRecordBuffer(8)

	// Advance head so the ring wraps before growing.
	for i := 0; i < 4; i++ {
		buf.Send(record(i))
	}
	for i := 0; i < 4; i++ {
		buf.TryReceive()
	}

	for i := 4; i < 40; i++ {
		if !buf.Send(record(i)) {
			t.Fatalf("Send(%d) returned false", i)
		}
	}

	for i := 4; i < 40; i++ {
		got, ok := buf.TryReceive()
		if !ok {
			t.Fatalf("TryReceive() returned false for record %d", i)
		}
		if string(got) != string(record(i)) {
			t.Errorf("received %q, want %q", got, record(i))
		}
	}
}

func TestRecordBuffer_Drain(t *testing.T) {
	buf := NewRecordBuffer(4)
	for i := 0; i < 10; i++ {
		buf.Send(record(i))
	}

	first := buf.Drain(4)
	if len(first) != 4 {
		t.Fatalf("Drain(4) returned %d records", len(first))
	}
	rest := buf.Drain(0)
	if len(rest) != 6 {
		t.Fatalf("Drain(0) returned %d records, want remaining 6", len(rest))
	}
	for i, got := range append(first, rest...) {
		if string(got) != string(record(i)) {
			t.Errorf("drained %q at %d, want %q", got, i, record(i))
		}
	}

	if got := buf.Drain(0); got != nil {
		t.Errorf("Drain on empty buffer = %v, want nil", got)
	}
}

func TestRecordBuffer_CloseSemantics(t *testing.T) {
	buf := NewRecordBuffer(4)
	buf.Send(record(0))
	buf.Close()

	if buf.Send(record(1)) {
		t.Error("Send after Close returned true")
	}

	got, ok := buf.TryReceive()
	if !ok || string(got) != string(record(0)) {
		t.Errorf("queued record lost after Close: %q, %v", got, ok)
	}
	if _, ok := buf.TryReceive(); ok {
		t.Error("TryReceive returned ok on drained closed buffer")
	}
}

func TestRecordBuffer_ConcurrentSenders(t *testing.T) {
	buf := NewRecordBuffer(4)

	var wg sync.WaitGroup
	const senders, perSender = 8, 50
	for g := 0; g < senders; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perSender; i++ {
				buf.Send([]byte("r"))
			}
		}()
	}
	wg.Wait()

	stats := buf.Stats()
	if stats.Enqueued != senders*perSender {
		t.Errorf("Enqueued = %d, want %d", stats.Enqueued, senders*perSender)
	}
	if stats.Count != senders*perSender {
		t.Errorf("Count = %d, want %d", stats.Count, senders*perSender)
	}
}
