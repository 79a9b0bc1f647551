package service

import "sync"

// subscriberList is a small synchronous publish mechanism. Callbacks run on
// the goroutine that triggered the notification, after the state change has
// been applied.
type subscriberList struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// add registers fn and returns a function that removes it.
func (l *subscriberList) add(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.subs == nil {
		l.subs = make(map[int]func())
	}
	id := l.next
	l.next++
	l.subs[id] = fn
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, id)
	}
}

// notify calls every registered callback. Callbacks are invoked outside the
// list lock so a subscriber may unsubscribe itself.
func (l *subscriberList) notify() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.subs))
	for _, fn := range l.subs {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
