package bus

import "testing"

func TestPublishReachesTypedSubscribersOnly(t *testing.T) {
	b := New()

	var menuEvents []MenuOpenRequest
	var gridEvents int
	Subscribe(b, func(ev MenuOpenRequest) { menuEvents = append(menuEvents, ev) })
	Subscribe(b, func(GridToggleRequest) { gridEvents++ })

	Publish(b, MenuOpenRequest{Section: SectionProjectInfo})

	if len(menuEvents) != 1 || menuEvents[0].Section != SectionProjectInfo {
		t.Fatalf("menu events = %+v", menuEvents)
	}
	if gridEvents != 0 {
		t.Fatalf("grid subscriber fired for a menu event")
	}
}

func TestSynchronousFanOut(t *testing.T) {
	b := New()
	delivered := false
	Subscribe(b, func(TransitionStarting) { delivered = true })
	Publish(b, TransitionStarting{FadeOutInfoPanel: true})
	if !delivered {
		t.Fatalf("subscriber must run before Publish returns")
	}
}

func TestDisposerStopsDelivery(t *testing.T) {
	b := New()
	count := 0
	dispose := Subscribe(b, func(GridToggleRequest) { count++ })

	Publish(b, GridToggleRequest{})
	dispose()
	Publish(b, GridToggleRequest{})
	dispose() // calling twice is safe

	if count != 1 {
		t.Fatalf("count = %d; want 1", count)
	}
}

func TestDisposeOneOfMany(t *testing.T) {
	b := New()
	var got []int
	d1 := Subscribe(b, func(GridToggleRequest) { got = append(got, 1) })
	Subscribe(b, func(GridToggleRequest) { got = append(got, 2) })
	Subscribe(b, func(GridToggleRequest) { got = append(got, 3) })

	d1()
	Publish(b, GridToggleRequest{})

	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("got = %v; want [2 3] in subscription order", got)
	}
}
