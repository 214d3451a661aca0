package launcher

import (
	"reflect"
	"testing"

	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
)

func testEntries() []Entry {
	return []Entry{
		{Name: "SuperTux", Position: geom.Pt(100, 100), Command: []string{"supertux2"}},
		{Name: "Balloon Shooter", Position: geom.Pt(100, 200), Command: []string{"skyshot", "play"}},
	}
}

func TestSelectionRunsClosestEntryAndReenters(t *testing.T) {
	scene := NewScene(testEntries())
	runner := NewNullRunner()
	backend := engine.NewNullBackend(
		[]engine.Event{engine.JoyButtonEvent(0, 0)},
		[]engine.Event{engine.JoyButtonEvent(0, 0)},
	)
	app := NewApp(engine.New(backend, engine.DefaultConfig()), scene, NewFinite(2), runner)

	if err := app.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Cursor starts at (500, 500): Balloon Shooter at (100, 200) is nearer
	// than SuperTux at (100, 100), and is selected both cycles.
	expected := [][]string{{"skyshot", "play"}, {"skyshot", "play"}}
	if !reflect.DeepEqual(runner.Commands(), expected) {
		t.Errorf("commands = %v, expected %v", runner.Commands(), expected)
	}
}

func TestCursorSteeredByJoystickAxis(t *testing.T) {
	scene := NewScene(testEntries())
	rec := engine.NewRecorder()
	backend := engine.NewNullBackend(
		nil,
		[]engine.Event{engine.JoyAxisEvent(0, 1, 1.0)},
		[]engine.Event{engine.QuitEvent()},
	)
	loop := engine.New(backend, engine.DefaultConfig())
	loop.AddListener(rec)
	app := NewApp(loop, scene, NewFinite(1), NewNullRunner())

	if err := app.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	circles := rec.Filter("DRAW_CIRCLE")
	if len(circles) != 2 {
		t.Fatalf("DRAW_CIRCLE notes = %d, expected one per drawn frame", len(circles))
	}
	// The null backend reports dt=1: one frame of full downward deflection
	// moves the cursor one unit.
	if y := circles[1].Data["y"]; y != 501 {
		t.Errorf("cursor y = %v, expected 501", y)
	}
}

func TestCursorSteeredByKeyboard(t *testing.T) {
	scene := NewScene(testEntries())

	scene.HandleEvent(engine.KeyDownEvent(engine.KeyRight))
	scene.Tick(10, discardCanvas{})
	if scene.cursor != geom.Pt(510, 500) {
		t.Fatalf("cursor = %v, expected (510, 500)", scene.cursor)
	}

	scene.HandleEvent(engine.KeyUpEvent(engine.KeyRight))
	scene.Tick(10, discardCanvas{})
	if scene.cursor != geom.Pt(510, 500) {
		t.Errorf("cursor moved after key-up: %v", scene.cursor)
	}
}

func TestCommandFollowsCursor(t *testing.T) {
	scene := NewScene(testEntries())

	scene.MoveCursor(geom.Pt(100, 100))
	if got := scene.Command(); !reflect.DeepEqual(got, []string{"supertux2"}) {
		t.Errorf("Command() = %v", got)
	}

	scene.MoveCursor(geom.Pt(100, 200))
	if got := scene.Command(); !reflect.DeepEqual(got, []string{"skyshot", "play"}) {
		t.Errorf("Command() = %v", got)
	}
}

func TestCancelRunsNothing(t *testing.T) {
	scene := NewScene(testEntries())
	runner := NewNullRunner()
	backend := engine.NewNullBackend(
		[]engine.Event{engine.KeyDownEvent(engine.KeyEscape)},
	)
	app := NewApp(engine.New(backend, engine.DefaultConfig()), scene, NewFinite(3), runner)

	if err := app.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(runner.Commands()) != 0 {
		t.Errorf("commands = %v, expected none after cancel", runner.Commands())
	}
}

func TestClosestEntryHighlighted(t *testing.T) {
	scene := NewScene(testEntries())
	rec := engine.NewRecorder()
	loop := engine.New(engine.NewNullBackend(), engine.DefaultConfig())
	loop.AddListener(rec)

	scene.draw(loop)

	texts := rec.Filter("DRAW_TEXT")
	if len(texts) != 2 {
		t.Fatalf("DRAW_TEXT notes = %d", len(texts))
	}
	if texts[0].Data["color"] != "black" || texts[1].Data["color"] != "lightblue" {
		t.Errorf("highlight colors = %v / %v", texts[0].Data["color"], texts[1].Data["color"])
	}
}

// discardCanvas is a no-op canvas for white-box steering tests.
type discardCanvas struct{}

func (discardCanvas) ClearScreen()                                              {}
func (discardCanvas) DrawCircle(center geom.Point, radius float64, color engine.Color) {}
func (discardCanvas) DrawText(position geom.Point, text string, size float64, color engine.Color) {
}
