package gesture

import (
	"errors"
	"testing"

	"github.com/devicelab-dev/appium-gestures/pkg/core"
)

// fakeDriver is a full in-package Driver for surface-level tests.
type fakeDriver struct {
	platform string
	width    int
	height   int
	density  int

	seqs    [][]PointerAction
	scripts []scriptCall

	locateFn   func(Selector) (core.Bounds, error)
	performErr error
	scriptErr  error
}

type scriptCall struct {
	script string
	args   map[string]interface{}
}

func (f *fakeDriver) Platform() string { return f.platform }

func (f *fakeDriver) WindowSize() (int, int, error) { return f.width, f.height, nil }

func (f *fakeDriver) DisplayDensity() (int, error) { return f.density, nil }

func (f *fakeDriver) PerformPointer(actions []PointerAction) error {
	if f.performErr != nil {
		return f.performErr
	}
	seq := make([]PointerAction, len(actions))
	copy(seq, actions)
	f.seqs = append(f.seqs, seq)
	return nil
}

func (f *fakeDriver) ExecuteScript(script string, args map[string]interface{}) (interface{}, error) {
	if f.scriptErr != nil {
		return nil, f.scriptErr
	}
	f.scripts = append(f.scripts, scriptCall{script: script, args: args})
	return true, nil
}

func (f *fakeDriver) Locate(sel Selector) (core.Bounds, error) {
	if f.locateFn != nil {
		return f.locateFn(sel)
	}
	return core.Bounds{}, core.ErrElementNotFound
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		platform: PlatformAndroid,
		width:    1000,
		height:   2000,
		density:  160,
	}
}

func fixedElement(b core.Bounds) func(Selector) (core.Bounds, error) {
	return func(Selector) (core.Bounds, error) { return b, nil }
}

func TestNewDerivesRegionOnce(t *testing.T) {
	d := newFakeDriver()
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r := a.Region()
	if r.Upper != 100 || r.Lower != 1600 || r.Left != 50 || r.Right != 950 {
		t.Errorf("region = %+v", r)
	}
}

func TestNewRejectsZeroViewport(t *testing.T) {
	d := newFakeDriver()
	d.width, d.height = 0, 0
	if _, err := New(d, Config{}); !errors.Is(err, core.ErrViewportUnavailable) {
		t.Errorf("expected ErrViewportUnavailable, got %v", err)
	}
}

func TestDirectionalSwipes(t *testing.T) {
	tests := []struct {
		name           string
		swipe          func(*Actions) error
		startX, startY int
		endX, endY     int
	}{
		{"up", (*Actions).SwipeUp, 500, 1600, 500, 100},
		{"down", (*Actions).SwipeDown, 500, 100, 500, 1600},
		{"left", (*Actions).SwipeLeft, 950, 1000, 50, 1000},
		{"right", (*Actions).SwipeRight, 50, 1000, 950, 1000},
		// Pager swipes run edge to edge, past the crop margins.
		{"next", (*Actions).SwipeNext, 1000, 1000, 0, 1000},
		{"previous", (*Actions).SwipePrevious, 0, 1000, 1000, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newFakeDriver()
			a, err := New(d, Config{})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if err := tt.swipe(a); err != nil {
				t.Fatalf("swipe failed: %v", err)
			}
			if len(d.seqs) != 1 {
				t.Fatalf("got %d sequences, want 1", len(d.seqs))
			}
			start, end := d.seqs[0][0], d.seqs[0][2]
			if start.X != tt.startX || start.Y != tt.startY {
				t.Errorf("start = (%d,%d), want (%d,%d)", start.X, start.Y, tt.startX, tt.startY)
			}
			if end.X != tt.endX || end.Y != tt.endY {
				t.Errorf("end = (%d,%d), want (%d,%d)", end.X, end.Y, tt.endX, tt.endY)
			}
		})
	}
}

func TestSwipeOnElement(t *testing.T) {
	d := newFakeDriver()
	d.locateFn = fixedElement(core.Bounds{X: 100, Y: 200, Width: 200, Height: 50})
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := a.SwipeOnElement(testSelector(), DirectionRight); err != nil {
		t.Fatalf("SwipeOnElement failed: %v", err)
	}
	start, end := d.seqs[0][0], d.seqs[0][2]
	if start.X != 100 || start.Y != 225 {
		t.Errorf("start = (%d,%d), want left-mid (100,225)", start.X, start.Y)
	}
	if end.X != 300 || end.Y != 225 {
		t.Errorf("end = (%d,%d), want right-mid (300,225)", end.X, end.Y)
	}

	if err := a.SwipeOnElement(testSelector(), Direction("diagonal")); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for bad direction, got %v", err)
	}
}

func TestTapSequences(t *testing.T) {
	d := newFakeDriver()
	d.locateFn = fixedElement(core.Bounds{X: 100, Y: 200, Width: 200, Height: 50})
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := a.Tap(testSelector()); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	single := d.seqs[0]
	if len(single) != 3 {
		t.Fatalf("single tap = %d actions, want move/down/up", len(single))
	}
	if single[0].X != 200 || single[0].Y != 225 {
		t.Errorf("tap point = (%d,%d), want element center (200,225)", single[0].X, single[0].Y)
	}

	if err := a.TripleTap(testSelector()); err != nil {
		t.Fatalf("TripleTap failed: %v", err)
	}
	triple := d.seqs[1]
	// Three taps with two pauses between them, dispatched atomically.
	if len(triple) != 11 {
		t.Errorf("triple tap = %d actions, want 11", len(triple))
	}
	if triple[3].Type != ActionPause || triple[3].DurationMs != 100 {
		t.Errorf("expected 100ms pause between taps, got %+v", triple[3])
	}
}

func TestLongPress(t *testing.T) {
	d := newFakeDriver()
	d.locateFn = fixedElement(core.Bounds{X: 100, Y: 200, Width: 200, Height: 50})
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := a.LongPress(testSelector(), 0); err != nil {
		t.Fatalf("LongPress failed: %v", err)
	}
	seq := d.seqs[0]
	if len(seq) != 4 || seq[2].Type != ActionPause || seq[2].DurationMs != DefaultLongPressMs {
		t.Errorf("long press sequence = %+v", seq)
	}
}

func TestTapPropagatesLocateError(t *testing.T) {
	d := newFakeDriver()
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.Tap(testSelector()); !errors.Is(err, core.ErrElementNotFound) {
		t.Errorf("expected ErrElementNotFound, got %v", err)
	}
}

func TestPinchAndroid(t *testing.T) {
	d := newFakeDriver()
	d.locateFn = fixedElement(core.Bounds{X: 100, Y: 200, Width: 400, Height: 300})
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := a.PinchOpen(testSelector(), 0.5, 1.0); err != nil {
		t.Fatalf("PinchOpen failed: %v", err)
	}
	call := d.scripts[0]
	if call.script != "mobile: pinchOpenGesture" {
		t.Errorf("script = %q", call.script)
	}
	if call.args["left"] != 100 || call.args["top"] != 200 || call.args["width"] != 400 || call.args["height"] != 300 {
		t.Errorf("pinch area args = %v", call.args)
	}
	if call.args["speed"] != float64(2500*160) {
		t.Errorf("speed = %v, want dpi-scaled velocity", call.args["speed"])
	}

	if err := a.PinchClose(testSelector(), 0.5, 1.0); err != nil {
		t.Fatalf("PinchClose failed: %v", err)
	}
	if d.scripts[1].script != "mobile: pinchCloseGesture" {
		t.Errorf("script = %q", d.scripts[1].script)
	}
}

func TestPinchIOSInvertsCloseScale(t *testing.T) {
	d := newFakeDriver()
	d.platform = PlatformIOS
	d.locateFn = fixedElement(core.Bounds{X: 100, Y: 200, Width: 400, Height: 300})
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := a.PinchOpen(testSelector(), 0.5, 1.0); err != nil {
		t.Fatalf("PinchOpen failed: %v", err)
	}
	if d.scripts[0].script != "mobile: pinch" || d.scripts[0].args["scale"] != 0.5 {
		t.Errorf("open call = %+v", d.scripts[0])
	}

	if err := a.PinchClose(testSelector(), 0.5, 1.0); err != nil {
		t.Fatalf("PinchClose failed: %v", err)
	}
	if d.scripts[1].args["scale"] != 1.0 {
		t.Errorf("close scale = %v, want doubled to 1.0", d.scripts[1].args["scale"])
	}
}

func TestPinchRejectsBadPercent(t *testing.T) {
	d := newFakeDriver()
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.PinchOpen(testSelector(), 1.5, 1.0); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestDragAndDropAndroid(t *testing.T) {
	d := newFakeDriver()
	d.locateFn = func(sel Selector) (core.Bounds, error) {
		if sel.Android.Value == "source" {
			return core.Bounds{X: 100, Y: 100, Width: 100, Height: 100}, nil
		}
		return core.Bounds{X: 500, Y: 500, Width: 100, Height: 100}, nil
	}
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	src := Selector{Android: &Query{Strategy: "accessibility id", Value: "source"}}
	dst := Selector{Android: &Query{Strategy: "accessibility id", Value: "target"}}
	if err := a.DragAndDrop(src, dst, 1.0); err != nil {
		t.Fatalf("DragAndDrop failed: %v", err)
	}

	call := d.scripts[0]
	if call.script != "mobile: dragGesture" {
		t.Errorf("script = %q", call.script)
	}
	if call.args["startX"] != 150 || call.args["startY"] != 150 || call.args["endX"] != 550 || call.args["endY"] != 550 {
		t.Errorf("drag endpoints = %v", call.args)
	}
}

func TestDragAndDropIOS(t *testing.T) {
	d := newFakeDriver()
	d.platform = PlatformIOS
	d.locateFn = fixedElement(core.Bounds{X: 100, Y: 100, Width: 100, Height: 100})
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := a.DragAndDrop(testSelector(), testSelector(), 2.0); err != nil {
		t.Fatalf("DragAndDrop failed: %v", err)
	}
	call := d.scripts[0]
	if call.script != "mobile: dragFromToWithVelocity" {
		t.Errorf("script = %q", call.script)
	}
	if call.args["velocity"] != 800.0 {
		t.Errorf("velocity = %v, want 800", call.args["velocity"])
	}
	if call.args["pressDuration"] != 0.5 || call.args["holdDuration"] != 0.1 {
		t.Errorf("hold args = %v", call.args)
	}
}

func TestDragAndDropRejectsBadSpeed(t *testing.T) {
	d := newFakeDriver()
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.DragAndDrop(testSelector(), testSelector(), 11); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSwipeIntoViewEndToEnd(t *testing.T) {
	d := newFakeDriver()
	found := false
	d.locateFn = func(Selector) (core.Bounds, error) {
		// Appears once a probe swipe has been issued.
		if !found && len(d.seqs) == 0 {
			return core.Bounds{}, core.ErrElementNotFound
		}
		found = true
		return core.Bounds{X: 450, Y: 120, Width: 100, Height: 40}, nil
	}
	a, err := New(d, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	bounds, err := a.SwipeIntoView(testSelector(), SeekDown)
	if err != nil {
		t.Fatalf("SwipeIntoView failed: %v", err)
	}
	if bounds.Y != 120 {
		t.Errorf("bounds.Y = %d, want 120", bounds.Y)
	}
	if len(d.seqs) != 1 {
		t.Errorf("swipes = %d, want 1 probe", len(d.seqs))
	}
}
