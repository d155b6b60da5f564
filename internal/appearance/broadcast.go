package appearance

import (
	"sort"
	"sync"
)

// broadcaster delivers applied settings to in-process observers.
// Delivery is synchronous and fire-and-forget: no queue, no replay.
// Observers that were not subscribed at emission time read the persisted
// value on their own next mount instead.
type broadcaster struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Settings)
}

func (b *broadcaster) subscribe(fn func(Settings)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	b.mu.Lock()
	if b.subs == nil {
		b.subs = map[int]func(Settings){}
	}
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// emit calls subscribers in subscription order with a value copy.
// It runs outside the controller mutex so a subscriber may re-enter
// Apply (e.g. to undo a change) without deadlocking.
func (b *broadcaster) emit(s Settings) {
	b.mu.Lock()
	ids := make([]int, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Settings), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, b.subs[id])
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
