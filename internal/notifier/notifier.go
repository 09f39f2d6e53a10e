// Package notifier provides the in-process change notifier: an explicit
// observer registry that fans committed aggregate changes out to
// subscribers. Rapid consecutive changes to the same entity are debounced
// into one notification carrying the latest state, so a task that goes
// Assigned and PickedUp within the window produces a single callback.
package notifier

import (
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/ports"
)

// DefaultDebounceWindow is the coalescing window applied when New is given
// a non-positive one.
const DefaultDebounceWindow = time.Second

// Callback receives the latest committed change of one entity.
// Callbacks run on notifier-owned goroutines and must not block for long.
type Callback func(change ports.Change)

// Subscription is the handle returned by Subscribe. Unsubscribe stops
// deliveries to its callback; calling it more than once is safe.
type Subscription struct {
	notifier *Notifier
	id       int64
}

// Unsubscribe removes the subscription's callback from the registry.
func (s *Subscription) Unsubscribe() {
	s.notifier.unsubscribe(s.id)
}

type subscriber struct {
	entityType ports.EntityType
	callback   Callback
}

type pendingChange struct {
	latest ports.Change
	timer  *time.Timer
}

// Notifier implements ports.ChangePublisher over a subscriber registry.
// Publish never blocks and never fails; a change to an entity with no
// subscribers is dropped after the window expires.
type Notifier struct {
	mu          sync.Mutex
	subscribers map[int64]subscriber
	nextID      int64
	pending     map[string]*pendingChange
	window      time.Duration
	closed      bool

	logger *slog.Logger
}

// New creates a notifier with the given debounce window.
func New(window time.Duration, logger *slog.Logger) *Notifier {
	if window <= 0 {
		window = DefaultDebounceWindow
	}

	return &Notifier{
		subscribers: make(map[int64]subscriber),
		pending:     make(map[string]*pendingChange),
		window:      window,
		logger:      logger,
	}
}

// Subscribe registers a callback for subsequent notifications about
// entities of the given type.
func (n *Notifier) Subscribe(entityType ports.EntityType, callback Callback) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.subscribers[id] = subscriber{entityType: entityType, callback: callback}
	return &Subscription{notifier: n, id: id}
}

func (n *Notifier) unsubscribe(id int64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.subscribers, id)
}

// Publish schedules a notification for the change's entity. Publishing the
// same entity again within the window replaces the pending change instead
// of adding a second notification.
func (n *Notifier) Publish(change ports.Change) {
	key := string(change.EntityType) + "/" + change.EntityID

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	if p, ok := n.pending[key]; ok {
		p.latest = change
		return
	}

	p := &pendingChange{latest: change}
	p.timer = time.AfterFunc(n.window, func() {
		n.flush(key)
	})
	n.pending[key] = p
}

// Close flushes every pending notification immediately and rejects further
// publishes. Subscribers may still receive callbacks during Close.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true

	keys := make([]string, 0, len(n.pending))
	for key, p := range n.pending {
		p.timer.Stop()
		keys = append(keys, key)
	}
	n.mu.Unlock()

	for _, key := range keys {
		n.flush(key)
	}
}

// flush delivers the latest change for a key to the subscribers registered
// for its entity type.
func (n *Notifier) flush(key string) {
	n.mu.Lock()
	p, ok := n.pending[key]
	if !ok {
		n.mu.Unlock()
		return
	}
	delete(n.pending, key)

	change := p.latest
	callbacks := make([]Callback, 0, len(n.subscribers))
	for _, sub := range n.subscribers {
		if sub.entityType == change.EntityType {
			callbacks = append(callbacks, sub.callback)
		}
	}
	n.mu.Unlock()

	n.logger.Debug("dispatching change notification",
		"entityType", string(change.EntityType),
		"entityId", change.EntityID,
		"newState", change.NewState,
		"subscribers", len(callbacks),
	)

	for _, callback := range callbacks {
		callback(change)
	}
}
