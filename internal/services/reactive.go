package services

import "sync"

// ChangeHub is the store's single "changed" fan-out. Invalidation is
// coarse: every registered subscription re-runs its read on every write,
// with no per-row tracking and no debouncing. N writes in quick succession
// mean N recomputes per subscription; tests assert on that cadence, so no
// batching may be introduced here.
type ChangeHub struct {
	mu          sync.Mutex
	subscribers map[uint64]func()
	nextID      uint64
}

func NewChangeHub() *ChangeHub {
	return &ChangeHub{subscribers: make(map[uint64]func())}
}

// Notify re-runs every registered read synchronously with respect to the
// triggering write. Delivery to consumers stays asynchronous; see
// Subscription.
func (hub *ChangeHub) Notify() {
	hub.mu.Lock()
	recomputes := make([]func(), 0, len(hub.subscribers))
	for _, recompute := range hub.subscribers {
		recomputes = append(recomputes, recompute)
	}
	hub.mu.Unlock()

	for _, recompute := range recomputes {
		recompute()
	}
}

func (hub *ChangeHub) register(recompute func()) uint64 {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	hub.nextID++
	id := hub.nextID
	hub.subscribers[id] = recompute
	return id
}

func (hub *ChangeHub) unregister(id uint64) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	delete(hub.subscribers, id)
}

// Subscription wraps a read function in the live-query contract: the read
// runs once at subscribe time and again, in full, after every store write.
// Consumers poll Current or drain Updates; a superseded result is simply
// replaced, never blocking the write path.
//
// A parameterized consumer (say a day-count that changed) closes its
// subscription and opens a new one; previous results are never partially
// reused.
type Subscription[T any] struct {
	hub     *ChangeHub
	id      uint64
	read    func() T
	updates chan T

	mu      sync.Mutex
	current T
	closed  bool
}

// Subscribe runs read immediately for the initial snapshot and registers it
// for recomputation on every subsequent write. The read must resolve to a
// well-defined empty value while the store is unavailable rather than
// failing, so consumers never special-case "loading".
func Subscribe[T any](hub *ChangeHub, read func() T) *Subscription[T] {
	subscription := &Subscription[T]{
		hub:     hub,
		read:    read,
		updates: make(chan T, 1),
	}
	subscription.current = read()
	subscription.id = hub.register(subscription.recompute)
	return subscription
}

// Current returns the latest computed snapshot.
func (subscription *Subscription[T]) Current() T {
	subscription.mu.Lock()
	defer subscription.mu.Unlock()
	return subscription.current
}

// Updates yields recomputed snapshots, latest-wins: if the consumer lags,
// older pending results are discarded.
func (subscription *Subscription[T]) Updates() <-chan T {
	return subscription.updates
}

// Close tears the subscription down. A recompute racing with Close may
// still complete; its result is discarded.
func (subscription *Subscription[T]) Close() {
	subscription.mu.Lock()
	if subscription.closed {
		subscription.mu.Unlock()
		return
	}
	subscription.closed = true
	subscription.mu.Unlock()

	subscription.hub.unregister(subscription.id)
}

func (subscription *Subscription[T]) recompute() {
	value := subscription.read()

	subscription.mu.Lock()
	if subscription.closed {
		subscription.mu.Unlock()
		return
	}
	subscription.current = value
	subscription.mu.Unlock()

	for {
		select {
		case subscription.updates <- value:
			return
		default:
		}
		select {
		case <-subscription.updates:
		default:
		}
	}
}
