package engine

import "github.com/okarlsen/skyshot/internal/geom"

// NullBackend is a backend double for deterministic tests. Drawing is a
// no-op, frame pacing returns a constant dt, and PollEvents replays
// scripted event batches, one batch per frame.
type NullBackend struct {
	batches [][]Event
	dt      float64
}

// NewNullBackend creates a null backend that replays the given event
// batches in order. Once the batches run out, PollEvents returns nothing,
// so scripts normally end with a QuitEvent batch.
func NewNullBackend(batches ...[]Event) *NullBackend {
	return &NullBackend{batches: batches, dt: 1}
}

// SetDT overrides the constant frame delta returned by Tick (default 1).
func (b *NullBackend) SetDT(dt float64) {
	b.dt = dt
}

// Init implements Backend.
func (b *NullBackend) Init(width, height float64, fps int) error {
	return nil
}

// PollEvents pops and returns the next scripted batch.
func (b *NullBackend) PollEvents() []Event {
	if len(b.batches) == 0 {
		return nil
	}
	batch := b.batches[0]
	b.batches = b.batches[1:]
	return batch
}

// ClearScreen implements Backend.
func (b *NullBackend) ClearScreen() {}

// DrawCircle implements Backend.
func (b *NullBackend) DrawCircle(center geom.Point, radius float64, color Color) {}

// DrawText implements Backend.
func (b *NullBackend) DrawText(position geom.Point, text string, size float64, color Color) {}

// Flip implements Backend.
func (b *NullBackend) Flip() {}

// Tick implements Backend, returning the constant frame delta immediately.
func (b *NullBackend) Tick(fps int) float64 {
	return b.dt
}

// Quit implements Backend.
func (b *NullBackend) Quit() {}
