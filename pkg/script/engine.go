// Package script exposes the gesture surface to JavaScript, so gesture
// sequences can be driven from script files instead of Go code.
package script

import (
	"fmt"
	"sync"

	"github.com/dop251/goja"

	"github.com/devicelab-dev/appium-gestures/pkg/gesture"
	"github.com/devicelab-dev/appium-gestures/pkg/logger"
)

// Engine wraps a goja runtime with gesture bindings.
type Engine struct {
	runtime *goja.Runtime
	actions *gesture.Actions
	mu      sync.Mutex
}

// New creates a script engine bound to the given gesture surface.
func New(actions *gesture.Actions) *Engine {
	e := &Engine{
		runtime: goja.New(),
		actions: actions,
	}
	e.setupBuiltins()
	return e
}

// setupBuiltins registers all built-in functions and objects.
func (e *Engine) setupBuiltins() {
	e.setupConsole()
	e.setupDevice()
	e.setupGestures()
}

// setupConsole adds console.log, console.error, console.warn, routed to the
// shared logger.
func (e *Engine) setupConsole() {
	makeConsoleFunc := func(level func(string, ...interface{})) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			args := make([]interface{}, len(call.Arguments))
			for i, arg := range call.Arguments {
				args[i] = arg.Export()
			}
			level("%v", args)
			return goja.Undefined()
		}
	}

	console := e.runtime.NewObject()
	console.Set("log", makeConsoleFunc(logger.Info))
	console.Set("error", makeConsoleFunc(logger.Error))
	console.Set("warn", makeConsoleFunc(logger.Warn))
	e.runtime.Set("console", console)
}

// setupDevice adds the device global with viewport and region info.
func (e *Engine) setupDevice() {
	device := e.runtime.NewObject()

	device.DefineAccessorProperty("width", e.runtime.ToValue(func() int {
		return e.actions.Viewport().Width
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	device.DefineAccessorProperty("height", e.runtime.ToValue(func() int {
		return e.actions.Viewport().Height
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	device.DefineAccessorProperty("platform", e.runtime.ToValue(func() string {
		return e.actions.Platform()
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	e.runtime.Set("device", device)
}

// setupGestures registers the gesture functions as globals.
func (e *Engine) setupGestures() {
	e.runtime.Set("swipeUp", e.simple(e.actions.SwipeUp))
	e.runtime.Set("swipeDown", e.simple(e.actions.SwipeDown))
	e.runtime.Set("swipeLeft", e.simple(e.actions.SwipeLeft))
	e.runtime.Set("swipeRight", e.simple(e.actions.SwipeRight))
	e.runtime.Set("swipeNext", e.simple(e.actions.SwipeNext))
	e.runtime.Set("swipePrevious", e.simple(e.actions.SwipePrevious))

	// tap(selector), doubleTap(selector), tripleTap(selector)
	e.runtime.Set("tap", e.selectorFunc(e.actions.Tap))
	e.runtime.Set("doubleTap", e.selectorFunc(e.actions.DoubleTap))
	e.runtime.Set("tripleTap", e.selectorFunc(e.actions.TripleTap))

	// longPress(selector, durationMs?)
	e.runtime.Set("longPress", func(call goja.FunctionCall) goja.Value {
		sel := e.selectorArg(call, 0)
		duration := 0
		if len(call.Arguments) > 1 {
			duration = int(call.Arguments[1].ToInteger())
		}
		e.throwOnErr(e.actions.LongPress(sel, duration))
		return goja.Undefined()
	})

	// scrollIntoView(selector, direction) -> {x, y, width, height}
	e.runtime.Set("scrollIntoView", func(call goja.FunctionCall) goja.Value {
		sel := e.selectorArg(call, 0)
		dir := gesture.SeekDown
		if len(call.Arguments) > 1 {
			dir = gesture.SeekDirection(call.Arguments[1].String())
		}
		bounds, err := e.actions.SwipeIntoView(sel, dir)
		e.throwOnErr(err)
		rect := e.runtime.NewObject()
		rect.Set("x", bounds.X)
		rect.Set("y", bounds.Y)
		rect.Set("width", bounds.Width)
		rect.Set("height", bounds.Height)
		return rect
	})

	// swipeOn(selector, direction)
	e.runtime.Set("swipeOn", func(call goja.FunctionCall) goja.Value {
		sel := e.selectorArg(call, 0)
		dir := gesture.Direction(e.stringArg(call, 1, "swipeOn direction"))
		e.throwOnErr(e.actions.SwipeOnElement(sel, dir))
		return goja.Undefined()
	})

	// dragAndDrop(source, target, speed?)
	e.runtime.Set("dragAndDrop", func(call goja.FunctionCall) goja.Value {
		src := e.selectorArg(call, 0)
		dst := e.selectorArg(call, 1)
		speed := 0.0
		if len(call.Arguments) > 2 {
			speed = call.Arguments[2].ToFloat()
		}
		e.throwOnErr(e.actions.DragAndDrop(src, dst, speed))
		return goja.Undefined()
	})

	// pinchOpen(selector, percent?, speed?), pinchClose(...)
	e.runtime.Set("pinchOpen", e.pinchFunc(e.actions.PinchOpen))
	e.runtime.Set("pinchClose", e.pinchFunc(e.actions.PinchClose))
}

func (e *Engine) simple(fn func() error) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		e.throwOnErr(fn())
		return goja.Undefined()
	}
}

func (e *Engine) selectorFunc(fn func(gesture.Selector) error) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		e.throwOnErr(fn(e.selectorArg(call, 0)))
		return goja.Undefined()
	}
}

func (e *Engine) pinchFunc(fn func(gesture.Selector, float64, float64) error) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		sel := e.selectorArg(call, 0)
		percent, speed := 0.0, 0.0
		if len(call.Arguments) > 1 {
			percent = call.Arguments[1].ToFloat()
		}
		if len(call.Arguments) > 2 {
			speed = call.Arguments[2].ToFloat()
		}
		e.throwOnErr(fn(sel, percent, speed))
		return goja.Undefined()
	}
}

// selectorArg converts a JS object {android: {strategy, value}, ios: {...}}
// into a Selector. A plain string is shorthand for accessibility id on both
// platforms.
func (e *Engine) selectorArg(call goja.FunctionCall, idx int) gesture.Selector {
	if len(call.Arguments) <= idx {
		panic(e.runtime.NewTypeError("missing selector argument"))
	}
	arg := call.Arguments[idx].Export()

	if s, ok := arg.(string); ok {
		q := &gesture.Query{Strategy: "accessibility id", Value: s}
		return gesture.Selector{Android: q, IOS: q}
	}

	m, ok := arg.(map[string]interface{})
	if !ok {
		panic(e.runtime.NewTypeError("selector must be a string or an object"))
	}
	var sel gesture.Selector
	sel.Android = queryFromMap(m["android"])
	sel.IOS = queryFromMap(m["ios"])
	if sel.Empty() {
		panic(e.runtime.NewTypeError("selector has no android or ios query"))
	}
	return sel
}

func queryFromMap(v interface{}) *gesture.Query {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	strategy, _ := m["strategy"].(string)
	value, _ := m["value"].(string)
	if strategy == "" || value == "" {
		return nil
	}
	return &gesture.Query{Strategy: strategy, Value: value}
}

func (e *Engine) stringArg(call goja.FunctionCall, idx int, what string) string {
	if len(call.Arguments) <= idx {
		panic(e.runtime.NewTypeError(fmt.Sprintf("missing %s argument", what)))
	}
	return call.Arguments[idx].String()
}

// throwOnErr converts a Go error into a JS exception.
func (e *Engine) throwOnErr(err error) {
	if err != nil {
		panic(e.runtime.ToValue(err.Error()))
	}
}

// Eval evaluates a JavaScript expression and returns the result.
func (e *Engine) Eval(script string) (interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	result, err := e.runtime.RunString(script)
	if err != nil {
		return nil, fmt.Errorf("JS eval error: %w", err)
	}

	return result.Export(), nil
}

// RunScript runs a JavaScript script for its side effects.
func (e *Engine) RunScript(script string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.runtime.RunString(script)
	if err != nil {
		return fmt.Errorf("JS runtime error: %w", err)
	}

	return nil
}
