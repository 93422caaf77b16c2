package subscriptions

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Message is the envelope pushed to subscribers and written to the peer as is.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

const (
	MessageTypeSnapshot = "latest_data"
	MessageTypeReading  = "sensor_data"
	MessageTypeAlert    = "alert"
	MessageTypePing     = "ping"
	MessageTypePong     = "pong"
)

const sendBufferSize = 256

var subscriberIDCounter atomic.Uint64

// Subscriber is one live connection's interest in a single device's stream.
// Events are delivered on a bounded channel that is closed exactly once, when
// the subscriber is unregistered.
type Subscriber struct {
	id       uint64
	deviceID string
	events   chan Message
}

func NewSubscriber(deviceID string) *Subscriber {
	return &Subscriber{
		id:       subscriberIDCounter.Add(1),
		deviceID: deviceID,
		events:   make(chan Message, sendBufferSize),
	}
}

func (s *Subscriber) DeviceID() string {
	return s.deviceID
}

// Events is closed when the subscriber has been unregistered and no further
// deliveries will be attempted.
func (s *Subscriber) Events() <-chan Message {
	return s.events
}

// Registry maps device identifiers to their currently registered subscribers.
// Sets are created lazily on register and pruned when the last subscriber
// leaves, so an idle device costs nothing.
type Registry struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscriber]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		subs: make(map[string]map[*Subscriber]struct{}),
	}
}

// Register adds the subscriber to its device's set. Registering an already
// registered subscriber is a no-op.
func (r *Registry) Register(s *Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.subs[s.deviceID]
	if !ok {
		set = make(map[*Subscriber]struct{})
		r.subs[s.deviceID] = set
	}

	set[s] = struct{}{}
}

// Unregister removes the subscriber and closes its event channel. Safe to call
// more than once; removal and close happen atomically under the registry lock
// so the channel is closed exactly once and no delivery can race the close.
func (r *Registry) Unregister(s *Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remove(s)
}

func (r *Registry) remove(s *Subscriber) {
	set, ok := r.subs[s.deviceID]
	if !ok {
		return
	}

	if _, ok := set[s]; !ok {
		return
	}

	delete(set, s)
	close(s.events)

	if len(set) == 0 {
		delete(r.subs, s.deviceID)
	}
}

// SubscribersOf returns a snapshot of the device's current subscribers, in a
// stable order, safe against concurrent register and unregister.
func (r *Registry) SubscribersOf(deviceID string) []*Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.subs[deviceID]
	subscribers := make([]*Subscriber, 0, len(set))
	for s := range set {
		subscribers = append(subscribers, s)
	}

	sort.Slice(subscribers, func(i, j int) bool {
		return subscribers[i].id < subscribers[j].id
	})

	return subscribers
}

func (r *Registry) Count(deviceID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[deviceID])
}

// deliver enqueues msg for every subscriber of the device without ever
// blocking. A subscriber whose buffer is full is dropped from the registry so
// a slow consumer cannot hold back the rest of the device's stream. Returns
// the number of successful enqueues and the number of dropped subscribers.
func (r *Registry) deliver(deviceID string, msg Message) (delivered, dropped int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.subs[deviceID]

	subscribers := make([]*Subscriber, 0, len(set))
	for s := range set {
		subscribers = append(subscribers, s)
	}
	sort.Slice(subscribers, func(i, j int) bool {
		return subscribers[i].id < subscribers[j].id
	})

	for _, s := range subscribers {
		select {
		case s.events <- msg:
			delivered++
		default:
			r.remove(s)
			dropped++
		}
	}

	return delivered, dropped
}
