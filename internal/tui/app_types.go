package tui

type view int

const (
	viewHome view = iota
	viewProject
	viewNotFound
)

// heartbeatMsg drives the deadline machines while any of them has a timer
// armed. The seq guard discards ticks scheduled before the latest arm.
type heartbeatMsg struct{ seq int }

// resizeDoneMsg fires once the window size has settled; intermediate sizes
// during a drag-resize are coalesced away.
type resizeDoneMsg struct{ seq int }
