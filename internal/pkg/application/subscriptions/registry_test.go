package subscriptions

import (
	"sync"
	"testing"

	"github.com/matryer/is"
)

func TestRegisterIsIdempotent(t *testing.T) {
	is := is.New(t)

	r := NewRegistry()
	s := NewSubscriber("greenhouse-01")

	r.Register(s)
	r.Register(s)

	is.Equal(1, r.Count("greenhouse-01"))
}

func TestUnregisterPrunesEmptyDeviceSets(t *testing.T) {
	is := is.New(t)

	r := NewRegistry()
	s := NewSubscriber("greenhouse-01")

	r.Register(s)
	r.Unregister(s)

	is.Equal(0, r.Count("greenhouse-01"))
	is.Equal(0, len(r.subs))
}

func TestUnregisterClosesEventsExactlyOnce(t *testing.T) {
	is := is.New(t)

	r := NewRegistry()
	s := NewSubscriber("greenhouse-01")

	r.Register(s)
	r.Unregister(s)
	r.Unregister(s)

	_, open := <-s.Events()
	is.True(!open)
}

func TestDeliverReachesEverySubscriber(t *testing.T) {
	is := is.New(t)

	r := NewRegistry()
	subscribers := make([]*Subscriber, 5)
	for i := range subscribers {
		subscribers[i] = NewSubscriber("greenhouse-01")
		r.Register(subscribers[i])
	}

	delivered, dropped := r.deliver("greenhouse-01", Message{Type: MessageTypeReading})
	is.Equal(5, delivered)
	is.Equal(0, dropped)

	for _, s := range subscribers {
		msg := <-s.Events()
		is.Equal(MessageTypeReading, msg.Type)
	}
}

func TestDeliverIsIsolatedPerDevice(t *testing.T) {
	is := is.New(t)

	r := NewRegistry()
	a := NewSubscriber("greenhouse-01")
	b := NewSubscriber("greenhouse-02")
	r.Register(a)
	r.Register(b)

	r.deliver("greenhouse-01", Message{Type: MessageTypeReading})

	is.Equal(1, len(a.events))
	is.Equal(0, len(b.events))
}

func TestDeliverPreservesOrderPerSubscriber(t *testing.T) {
	is := is.New(t)

	r := NewRegistry()
	s := NewSubscriber("greenhouse-01")
	r.Register(s)

	for i := 0; i < 100; i++ {
		r.deliver("greenhouse-01", Message{Type: MessageTypeReading, Data: i})
	}

	for i := 0; i < 100; i++ {
		msg := <-s.Events()
		is.Equal(i, msg.Data)
	}
}

func TestSlowSubscriberIsDroppedOthersUnaffected(t *testing.T) {
	is := is.New(t)

	r := NewRegistry()
	slow := NewSubscriber("greenhouse-01")
	fast := NewSubscriber("greenhouse-01")
	r.Register(slow)
	r.Register(fast)

	drain := func(s *Subscriber) {
		for range s.Events() {
		}
	}
	go drain(fast)

	// one more than the slow subscriber's buffer can hold
	totalDropped := 0
	for i := 0; i <= sendBufferSize; i++ {
		_, dropped := r.deliver("greenhouse-01", Message{Type: MessageTypeReading, Data: i})
		totalDropped += dropped
	}

	is.Equal(1, totalDropped)
	is.Equal(1, r.Count("greenhouse-01"))

	// the slow subscriber's channel was closed on removal
	drained := 0
	for range slow.Events() {
		drained++
	}
	is.Equal(sendBufferSize, drained)
}

func TestConcurrentRegisterUnregisterAndDeliver(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := NewSubscriber("greenhouse-01")
				r.Register(s)
				r.deliver("greenhouse-01", Message{Type: MessageTypeReading, Data: j})
				r.Unregister(s)
			}
		}()
	}

	wg.Wait()

	if r.Count("greenhouse-01") != 0 {
		t.Errorf("expected no subscribers left, got %d", r.Count("greenhouse-01"))
	}
}

func TestSubscribersOfReturnsStableSnapshot(t *testing.T) {
	is := is.New(t)

	r := NewRegistry()
	a := NewSubscriber("greenhouse-01")
	b := NewSubscriber("greenhouse-01")
	r.Register(b)
	r.Register(a)

	snapshot := r.SubscribersOf("greenhouse-01")
	is.Equal(2, len(snapshot))
	is.True(snapshot[0].id < snapshot[1].id)

	// mutating the registry does not affect the snapshot
	r.Unregister(a)
	is.Equal(2, len(snapshot))
}
