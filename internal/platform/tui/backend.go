package tui

import (
	"sync"
	"time"

	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
)

// keyHoldTimeout is how long a held key stays latched before a synthetic
// key-up is emitted. Terminals report key presses but never releases, so
// the backend treats a press as "held" and expires it when the repeat
// stream stops.
const keyHoldTimeout = 200 * time.Millisecond

// Backend implements engine.Backend on top of a Bubble Tea program. The
// engine loop runs in its own goroutine; the model feeds input through the
// events channel and receives rendered frames through the frames channel.
// Closing done (from either side) unblocks the other.
type Backend struct {
	screen  *Screen
	events  chan engine.Event
	resizes chan [2]int
	frames  chan string
	done    chan struct{}
	closing sync.Once

	holds    map[engine.Key]time.Time
	lastTick time.Time
}

// NewBackend creates a backend rendering into cols x rows terminal cells.
func NewBackend(cols, rows int) *Backend {
	return &Backend{
		screen:  NewScreen(cols, rows, 1, 1),
		events:  make(chan engine.Event, 64),
		resizes: make(chan [2]int, 4),
		frames:  make(chan string, 1),
		done:    make(chan struct{}),
		holds:   make(map[engine.Key]time.Time),
	}
}

// Init records the game-coordinate extent the screen scales from.
func (b *Backend) Init(width, height float64, fps int) error {
	b.screen.gameW = width
	b.screen.gameH = height
	b.lastTick = time.Now()
	return nil
}

// Send queues an input event from the model. Events are dropped rather
// than blocking the UI when the game falls behind.
func (b *Backend) Send(event engine.Event) {
	select {
	case b.events <- event:
	default:
	}
}

// SendResize queues a terminal resize from the model.
func (b *Backend) SendResize(cols, rows int) {
	select {
	case b.resizes <- [2]int{cols, rows}:
	default:
	}
}

// PollEvents drains pending input, applies resizes, and synthesizes
// key-up events for keys whose press stream has gone quiet. After the
// backend is shut down it reports a quit event so the loop unwinds.
func (b *Backend) PollEvents() []engine.Event {
	select {
	case <-b.done:
		return []engine.Event{engine.QuitEvent()}
	default:
	}

	for {
		select {
		case size := <-b.resizes:
			b.screen.Resize(size[0], size[1])
			continue
		default:
		}
		break
	}

	var out []engine.Event
	for {
		select {
		case event := <-b.events:
			out = append(out, b.trackHold(event)...)
			continue
		default:
		}
		break
	}

	now := time.Now()
	for key, deadline := range b.holds {
		if now.After(deadline) {
			delete(b.holds, key)
			out = append(out, engine.KeyUpEvent(key))
		}
	}
	return out
}

// trackHold converts a raw press into key-down plus hold state. Repeated
// presses of an already-held key only refresh the hold; other events pass
// through untouched.
func (b *Backend) trackHold(event engine.Event) []engine.Event {
	if event.Kind != engine.EventKeyDown || !isHoldKey(event.Key) {
		return []engine.Event{event}
	}
	_, held := b.holds[event.Key]
	b.holds[event.Key] = time.Now().Add(keyHoldTimeout)
	if held {
		return nil
	}
	return []engine.Event{event}
}

// isHoldKey reports whether the key is latched (steering) rather than
// edge-triggered.
func isHoldKey(k engine.Key) bool {
	return k == engine.KeyLeft || k == engine.KeyRight
}

// ClearScreen implements engine.Backend.
func (b *Backend) ClearScreen() {
	b.screen.Clear()
}

// DrawCircle implements engine.Backend.
func (b *Backend) DrawCircle(center geom.Point, radius float64, color engine.Color) {
	b.screen.FillCircle(center, radius, color)
}

// DrawText implements engine.Backend.
func (b *Backend) DrawText(position geom.Point, text string, size float64, color engine.Color) {
	b.screen.WriteText(position, text, color)
}

// Flip publishes the rendered frame to the model, replacing an unread one
// so the display always shows the latest frame.
func (b *Backend) Flip() {
	frame := b.screen.Render()
	for {
		select {
		case b.frames <- frame:
			return
		case <-b.done:
			return
		default:
			select {
			case <-b.frames:
			default:
			}
		}
	}
}

// Tick sleeps out the remainder of the frame budget and returns the
// elapsed milliseconds since the previous call.
func (b *Backend) Tick(fps int) float64 {
	budget := time.Second / time.Duration(fps)
	elapsed := time.Since(b.lastTick)
	if remaining := budget - elapsed; remaining > 0 {
		select {
		case <-time.After(remaining):
		case <-b.done:
		}
	}
	now := time.Now()
	dt := now.Sub(b.lastTick)
	b.lastTick = now
	return float64(dt) / float64(time.Millisecond)
}

// Quit implements engine.Backend: it signals the model that the game loop
// has finished.
func (b *Backend) Quit() {
	b.closing.Do(func() { close(b.done) })
}
