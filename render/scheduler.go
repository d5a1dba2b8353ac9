package render

// FrameScheduler defers a function until the next frame. The host
// environment supplies its animation-frame hook here; the Orchestrator
// coalesces deferred render requests through it, so when several
// requests land within one frame, only the last is executed.
type FrameScheduler interface {
	// Schedule arranges for fn to run later, typically on the next
	// animation frame. Implementations may run fn on any goroutine.
	Schedule(fn func())
}

// immediateScheduler runs every scheduled function synchronously. It is
// the default when no host scheduler is configured; coalescing then
// degrades to rendering every request, which is correct but unthrottled.
type immediateScheduler struct{}

func (immediateScheduler) Schedule(fn func()) { fn() }
