// If you are AI: This file defines the Subscriber type.
// Subscribers receive change events from feeds via a ring buffer and a wake-up channel.

package bus

// Subscriber represents a consumer of change events from a feed.
// Each subscriber has its own ring buffer to avoid blocking the publisher.
type Subscriber struct {
	id      uint64                    // Unique subscriber ID
	buffer  *RingBuffer[*ChangeEvent] // Bounded buffer for event delivery
	ready   chan struct{}             // Signalled after each delivery, capacity 1
	onEvent func(*ChangeEvent)        // Callback for event delivery (optional)
}

// NewSubscriber creates a new subscriber with the specified buffer capacity and strategy.
func NewSubscriber(id uint64, capacity uint32, strategy BackpressureStrategy) *Subscriber {
	return &Subscriber{
		id:     id,
		buffer: NewRingBuffer[*ChangeEvent](capacity, strategy),
		ready:  make(chan struct{}, 1),
	}
}

// ID returns the unique subscriber identifier.
func (s *Subscriber) ID() uint64 {
	return s.id
}

// Buffer returns the subscriber's ring buffer.
func (s *Subscriber) Buffer() *RingBuffer[*ChangeEvent] {
	return s.buffer
}

// Ready returns a channel that receives a value whenever new events may be buffered.
// Wake-ups coalesce, so readers must drain with Process or Buffer().Read.
func (s *Subscriber) Ready() <-chan struct{} {
	return s.ready
}

// SetEventHandler sets a callback function to be called for each event read by Process.
func (s *Subscriber) SetEventHandler(handler func(*ChangeEvent)) {
	s.onEvent = handler
}

// deliver buffers ev and wakes the reader without blocking.
func (s *Subscriber) deliver(ev *ChangeEvent) {
	s.buffer.Write(ev)
	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// Process reads and processes events from the buffer.
// Returns the number of events processed.
func (s *Subscriber) Process(maxEvents int) int {
	processed := 0
	for i := 0; i < maxEvents; i++ {
		ev, ok := s.buffer.Read()
		if !ok {
			break
		}

		if s.onEvent != nil {
			s.onEvent(ev)
		}
		processed++
	}
	return processed
}

// Dropped returns the number of events dropped due to backpressure.
func (s *Subscriber) Dropped() uint64 {
	return s.buffer.Dropped()
}
