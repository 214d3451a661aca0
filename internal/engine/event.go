package engine

// Key identifies a keyboard key the shooter cares about.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyLeft
	KeyRight
	KeyEscape
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// EventKind discriminates the input event variants a backend can produce.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit           // user closed the window / terminal session
	EventKeyDown
	EventKeyUp
	EventJoyButtonDown
	EventJoyAxisMotion
)

// Event is a discrete input event polled from the backend once per frame.
// Only the fields relevant to the Kind are set.
type Event struct {
	Kind   EventKind
	Key    Key
	Button int     // joystick button code
	Device int     // joystick instance id
	Axis   int     // joystick axis index
	Value  float64 // axis value in [-1, 1]
}

// QuitEvent creates a window-close event.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyDownEvent creates a key-down event.
func KeyDownEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUpEvent creates a key-up event.
func KeyUpEvent(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// JoyButtonEvent creates a joystick button-down event for a device instance.
func JoyButtonEvent(device, button int) Event {
	return Event{Kind: EventJoyButtonDown, Device: device, Button: button}
}

// JoyAxisEvent creates a joystick axis-motion event for a device instance.
func JoyAxisEvent(device, axis int, value float64) Event {
	return Event{Kind: EventJoyAxisMotion, Device: device, Axis: axis, Value: value}
}

// IsQuit reports whether the user closed the window.
func (e Event) IsQuit() bool {
	return e.Kind == EventQuit
}

// IsKeyDown reports whether this is a key-down event for k.
func (e Event) IsKeyDown(k Key) bool {
	return e.Kind == EventKeyDown && e.Key == k
}

// IsKeyUp reports whether this is a key-up event for k.
func (e Event) IsKeyUp(k Key) bool {
	return e.Kind == EventKeyUp && e.Key == k
}

// IsJoyButtonDown reports whether this is a button-down event for the
// given button code, on any device.
func (e Event) IsJoyButtonDown(button int) bool {
	return e.Kind == EventJoyButtonDown && e.Button == button
}

// IsJoyAxisMotion reports whether this is an axis-motion event.
func (e Event) IsJoyAxisMotion() bool {
	return e.Kind == EventJoyAxisMotion
}
