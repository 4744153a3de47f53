package script

import (
	"strings"
	"testing"

	"github.com/devicelab-dev/appium-gestures/pkg/core"
	"github.com/devicelab-dev/appium-gestures/pkg/driver/mock"
	"github.com/devicelab-dev/appium-gestures/pkg/gesture"
)

func newTestEngine(t *testing.T) (*Engine, *mock.Driver) {
	t.Helper()
	d := mock.New(mock.Config{
		Width:  1000,
		Height: 2000,
		Element: &mock.Element{
			Bounds: core.Bounds{X: 100, Y: 200, Width: 200, Height: 50},
		},
	})
	a, err := gesture.New(d, gesture.Config{})
	if err != nil {
		t.Fatalf("gesture.New failed: %v", err)
	}
	return New(a), d
}

func TestRunScriptSwipes(t *testing.T) {
	e, d := newTestEngine(t)

	if err := e.RunScript(`swipeUp(); swipeLeft();`); err != nil {
		t.Fatalf("RunScript failed: %v", err)
	}
	if d.Swipes() != 2 {
		t.Errorf("swipes = %d, want 2", d.Swipes())
	}
}

func TestTapWithStringShorthand(t *testing.T) {
	e, d := newTestEngine(t)

	if err := e.RunScript(`tap("Save");`); err != nil {
		t.Fatalf("RunScript failed: %v", err)
	}
	if d.Swipes() != 1 {
		t.Fatalf("expected one pointer sequence, got %d", d.Swipes())
	}
	// Single tap sequence on the element center.
	seq := d.PointerSequences[0]
	if len(seq) != 3 || seq[0].X != 200 || seq[0].Y != 225 {
		t.Errorf("tap sequence = %+v", seq)
	}
}

func TestSelectorObject(t *testing.T) {
	e, d := newTestEngine(t)

	script := `tap({android: {strategy: "accessibility id", value: "Save"}});`
	if err := e.RunScript(script); err != nil {
		t.Fatalf("RunScript failed: %v", err)
	}
	if d.Swipes() != 1 {
		t.Errorf("expected one pointer sequence, got %d", d.Swipes())
	}
}

func TestScrollIntoViewReturnsRect(t *testing.T) {
	e, _ := newTestEngine(t)

	result, err := e.Eval(`scrollIntoView("row", "down").y`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result != int64(200) {
		t.Errorf("y = %v (%T), want 200", result, result)
	}
}

func TestPinchFromScript(t *testing.T) {
	e, d := newTestEngine(t)

	if err := e.RunScript(`pinchOpen("image", 0.5, 1.0);`); err != nil {
		t.Fatalf("RunScript failed: %v", err)
	}
	if len(d.ScriptCalls) != 1 || d.ScriptCalls[0].Script != "mobile: pinchOpenGesture" {
		t.Errorf("script calls = %v", d.ScriptCalls)
	}
}

func TestDeviceGlobals(t *testing.T) {
	e, _ := newTestEngine(t)

	result, err := e.Eval(`device.width + "x" + device.height + " " + device.platform`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result != "1000x2000 android" {
		t.Errorf("device globals = %v", result)
	}
}

func TestGestureErrorBecomesJSException(t *testing.T) {
	d := mock.New(mock.Config{Width: 1000, Height: 2000}) // no element
	a, err := gesture.New(d, gesture.Config{ProbeAttempts: 1})
	if err != nil {
		t.Fatalf("gesture.New failed: %v", err)
	}
	e := New(a)

	err = e.RunScript(`scrollIntoView("missing", "down");`)
	if err == nil {
		t.Fatal("expected the locate failure to surface as a script error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v", err)
	}
}

func TestBadSelectorArgument(t *testing.T) {
	e, _ := newTestEngine(t)

	if err := e.RunScript(`tap(42);`); err == nil {
		t.Error("numeric selector should raise a type error")
	}
	if err := e.RunScript(`tap({});`); err == nil {
		t.Error("empty selector object should raise a type error")
	}
}
