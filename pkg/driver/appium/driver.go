package appium

import (
	"fmt"
	"strings"

	"github.com/devicelab-dev/appium-gestures/pkg/core"
	"github.com/devicelab-dev/appium-gestures/pkg/gesture"
)

// Compile-time check that Client satisfies the full driver surface.
var _ gesture.Driver = (*Client)(nil)

// Platform returns the platform (ios/android).
func (c *Client) Platform() string {
	return c.platform
}

// WindowSize returns the current window dimensions in points.
func (c *Client) WindowSize() (int, int, error) {
	resp, err := c.get(c.sessionPath() + "/window/rect")
	if err != nil {
		return 0, 0, err
	}
	value, ok := resp["value"].(map[string]interface{})
	if !ok {
		return 0, 0, core.ErrViewportUnavailable.WithMessage("invalid window rect response")
	}
	w, _ := value["width"].(float64)
	h, _ := value["height"].(float64)
	return int(w), int(h), nil
}

// Locate resolves a selector against the platform of the active session and
// returns the element's bounding box.
func (c *Client) Locate(sel gesture.Selector) (core.Bounds, error) {
	query := sel.Android
	if c.platform == gesture.PlatformIOS {
		query = sel.IOS
	}
	if query == nil {
		return core.Bounds{}, core.ErrInvalidArgument.
			WithMessage(fmt.Sprintf("selector has no query for platform %q", c.platform))
	}

	elementID, err := c.findElement(query.Strategy, query.Value)
	if err != nil {
		return core.Bounds{}, err
	}
	return c.elementRect(elementID)
}

func (c *Client) findElement(strategy, value string) (string, error) {
	body := map[string]interface{}{
		"using": strategy,
		"value": value,
	}

	resp, err := c.post(c.sessionPath()+"/element", body)
	if err != nil {
		if strings.Contains(err.Error(), "no such element") {
			return "", core.ErrElementNotFound.
				WithMessage(fmt.Sprintf("no element matching %s=%q", strategy, value)).
				WithCause(err)
		}
		return "", err
	}

	elemValue, ok := resp["value"].(map[string]interface{})
	if !ok {
		return "", core.ErrElementNotFound.
			WithMessage(fmt.Sprintf("no element matching %s=%q", strategy, value))
	}
	id := extractElementID(elemValue)
	if id == "" {
		return "", core.ErrElementNotFound.
			WithMessage(fmt.Sprintf("no element matching %s=%q", strategy, value))
	}
	return id, nil
}

func (c *Client) elementRect(elementID string) (core.Bounds, error) {
	resp, err := c.get(c.elementPath(elementID) + "/rect")
	if err != nil {
		return core.Bounds{}, err
	}
	value, ok := resp["value"].(map[string]interface{})
	if !ok {
		return core.Bounds{}, fmt.Errorf("invalid rect response")
	}

	x, _ := value["x"].(float64)
	y, _ := value["y"].(float64)
	w, _ := value["width"].(float64)
	h, _ := value["height"].(float64)
	return core.Bounds{X: int(x), Y: int(y), Width: int(w), Height: int(h)}, nil
}

// PerformPointer dispatches one atomic W3C pointer action sequence on a
// single touch input source.
func (c *Client) PerformPointer(actions []gesture.PointerAction) error {
	wire := make([]map[string]interface{}, 0, len(actions))
	for _, a := range actions {
		switch a.Type {
		case gesture.ActionPointerMove:
			wire = append(wire, map[string]interface{}{
				"type":     "pointerMove",
				"duration": a.DurationMs,
				"x":        a.X,
				"y":        a.Y,
				"origin":   "viewport",
			})
		case gesture.ActionPointerDown:
			wire = append(wire, map[string]interface{}{"type": "pointerDown", "button": 0})
		case gesture.ActionPointerUp:
			wire = append(wire, map[string]interface{}{"type": "pointerUp", "button": 0})
		case gesture.ActionPause:
			wire = append(wire, map[string]interface{}{"type": "pause", "duration": a.DurationMs})
		default:
			return core.ErrInvalidArgument.
				WithMessage(fmt.Sprintf("unknown pointer action type %q", string(a.Type)))
		}
	}

	payload := []map[string]interface{}{
		{
			"type":       "pointer",
			"id":         "finger1",
			"parameters": map[string]interface{}{"pointerType": "touch"},
			"actions":    wire,
		},
	}
	_, err := c.post(c.sessionPath()+"/actions", map[string]interface{}{"actions": payload})
	return err
}

// ExecuteScript runs a mobile: script with a single argument map.
func (c *Client) ExecuteScript(script string, args map[string]interface{}) (interface{}, error) {
	resp, err := c.post(c.sessionPath()+"/execute/sync", map[string]interface{}{
		"script": script,
		"args":   []interface{}{args},
	})
	if err != nil {
		return nil, err
	}
	return resp["value"], nil
}

// SetSettings updates driver settings for the session.
// For Android UiAutomator2: waitForIdleTimeout, waitForSelectorTimeout.
// For iOS XCUITest: snapshotMaxDepth, animationCoolOffTimeout.
func (c *Client) SetSettings(settings map[string]interface{}) error {
	_, err := c.post(c.sessionPath()+"/appium/settings", map[string]interface{}{
		"settings": settings,
	})
	return err
}

// DisplayDensity returns the device display density in dpi. Android only;
// iOS scripted gestures take velocities directly.
func (c *Client) DisplayDensity() (int, error) {
	resp, err := c.get(c.sessionPath() + "/appium/device/display_density")
	if err != nil {
		return 0, err
	}
	density, ok := resp["value"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid display density response")
	}
	return int(density), nil
}
