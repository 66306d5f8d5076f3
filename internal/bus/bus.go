// Package bus is a page-scoped publish/subscribe channel that lets sibling
// view components coordinate without shared parent state. Fan-out is
// synchronous on the caller's goroutine: subscribers have run by the time
// Publish returns, and no ordering holds across distinct event types.
package bus

import (
	"reflect"
	"sync"
)

// Section identifies a menu belt section in MenuOpenRequest events.
type Section string

const (
	SectionProjects    Section = "projects"
	SectionAbout       Section = "about"
	SectionProjectInfo Section = "project-info"
)

// MenuOpenRequest asks the menu belt to expand to a given section.
type MenuOpenRequest struct {
	Section Section
}

// TransitionStarting announces that a page transition fade-out has begun.
type TransitionStarting struct {
	// FadeOutInfoPanel additionally fades the project-info panel,
	// independent of the main content fade.
	FadeOutInfoPanel bool
}

// GridToggleRequest asks the current gallery to flip slideshow/grid mode.
type GridToggleRequest struct{}

type subscriber struct {
	id int
	fn func(any)
}

// Bus routes events by payload type. The zero value is not usable; call New.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[reflect.Type][]subscriber
}

func New() *Bus {
	return &Bus{subs: map[reflect.Type][]subscriber{}}
}

// Subscribe registers fn for events of type T and returns a disposer.
// The disposer must be invoked when the subscribing component unmounts;
// it is safe to call more than once.
func Subscribe[T any](b *Bus, fn func(T)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := reflect.TypeOf((*T)(nil)).Elem()
	b.nextID++
	id := b.nextID
	b.subs[t] = append(b.subs[t], subscriber{id: id, fn: func(v any) { fn(v.(T)) }})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[t]
		for i, s := range list {
			if s.id == id {
				b.subs[t] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers ev to every live subscriber of its type, in subscription
// order, before returning.
func Publish[T any](b *Bus, ev T) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	b.mu.Lock()
	list := make([]subscriber, len(b.subs[t]))
	copy(list, b.subs[t])
	b.mu.Unlock()

	for _, s := range list {
		s.fn(ev)
	}
}
