// Package themeswitch holds the active light/dark mode of a running surface
// and tells subscribers when it changes.
package themeswitch

import (
	"context"
	"sync"

	"github.com/fundraise-pro/themegen/internal/domain/theme"
	"github.com/fundraise-pro/themegen/internal/ports"
)

// Listener is notified with the newly active mode.
type Listener func(theme.Mode)

// Switch is the single owner of the active mode. Listeners run synchronously
// on the goroutine that changed the mode, in subscription order.
type Switch struct {
	mu        sync.RWMutex
	mode      theme.Mode
	listeners []listenerEntry
	nextID    int
	publisher ports.EventPublisher
}

type listenerEntry struct {
	id int
	fn Listener
}

// New returns a Switch starting in initial. An invalid initial mode starts
// in light. publisher may be nil.
func New(initial theme.Mode, publisher ports.EventPublisher) *Switch {
	if !initial.Valid() {
		initial = theme.ModeLight
	}
	return &Switch{mode: initial, publisher: publisher}
}

// Current returns the active mode.
func (s *Switch) Current() theme.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Toggle flips between light and dark and returns the new mode.
func (s *Switch) Toggle(ctx context.Context) theme.Mode {
	s.mu.Lock()
	next := s.mode.Toggle()
	from := s.mode
	s.mode = next
	listeners := s.snapshot()
	s.mu.Unlock()

	s.notify(ctx, from, next, listeners)
	return next
}

// Set activates mode. Setting the already active mode notifies nobody.
func (s *Switch) Set(ctx context.Context, mode theme.Mode) error {
	mode, err := theme.ParseMode(string(mode))
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.mode == mode {
		s.mu.Unlock()
		return nil
	}
	from := s.mode
	s.mode = mode
	listeners := s.snapshot()
	s.mu.Unlock()

	s.notify(ctx, from, mode, listeners)
	return nil
}

// Subscribe registers fn for mode changes. The returned subscription removes it.
func (s *Switch) Subscribe(fn Listener) ports.Subscription {
	if fn == nil {
		return unsubscribeFunc(nil)
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return unsubscribeFunc(func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, entry := range s.listeners {
				if entry.id == id {
					next := make([]listenerEntry, 0, len(s.listeners)-1)
					next = append(next, s.listeners[:i]...)
					s.listeners = append(next, s.listeners[i+1:]...)
					return
				}
			}
		})
	})
}

func (s *Switch) snapshot() []listenerEntry {
	return append([]listenerEntry(nil), s.listeners...)
}

func (s *Switch) notify(ctx context.Context, from, to theme.Mode, listeners []listenerEntry) {
	for _, entry := range listeners {
		entry.fn(to)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, toggledEvent{from: from, to: to})
	}
}

type unsubscribeFunc func()

func (f unsubscribeFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}

type toggledEvent struct {
	from theme.Mode
	to   theme.Mode
}

func (e toggledEvent) EventType() string { return ports.EventThemeToggled }

func (e toggledEvent) Payload() interface{} {
	return map[string]interface{}{
		"from": string(e.from),
		"to":   string(e.to),
	}
}
