package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/appium-gestures/pkg/gesture"
	"github.com/devicelab-dev/appium-gestures/pkg/script"
)

// selectorFlags returns the four flags naming an element for both platforms.
// prefix distinguishes multi-element commands (drag source/target).
func selectorFlags(prefix string) []cli.Flag {
	name := func(s string) string {
		if prefix == "" {
			return s
		}
		return prefix + "-" + s
	}
	return []cli.Flag{
		&cli.StringFlag{
			Name:  name("android-strategy"),
			Usage: "Android locator strategy",
			Value: "accessibility id",
		},
		&cli.StringFlag{
			Name:  name("android-value"),
			Usage: "Android locator value",
		},
		&cli.StringFlag{
			Name:  name("ios-strategy"),
			Usage: "iOS locator strategy",
			Value: "accessibility id",
		},
		&cli.StringFlag{
			Name:  name("ios-value"),
			Usage: "iOS locator value",
		},
	}
}

func selectorFromFlags(c *cli.Context, prefix string) (gesture.Selector, error) {
	name := func(s string) string {
		if prefix == "" {
			return s
		}
		return prefix + "-" + s
	}
	var sel gesture.Selector
	if v := c.String(name("android-value")); v != "" {
		sel.Android = &gesture.Query{Strategy: c.String(name("android-strategy")), Value: v}
	}
	if v := c.String(name("ios-value")); v != "" {
		sel.IOS = &gesture.Query{Strategy: c.String(name("ios-strategy")), Value: v}
	}
	if sel.Empty() {
		return sel, fmt.Errorf("no element given: set --%s or --%s",
			name("android-value"), name("ios-value"))
	}
	return sel, nil
}

// dumpTraffic prints recorded pointer sequences in dry-run mode.
func dumpTraffic(s *session) {
	if s.Mock == nil {
		return
	}
	for i, seq := range s.Mock.PointerSequences {
		fmt.Printf("sequence %d:\n", i+1)
		for _, a := range seq {
			switch a.Type {
			case gesture.ActionPointerMove:
				fmt.Printf("  move to %d,%d over %dms\n", a.X, a.Y, a.DurationMs)
			case gesture.ActionPause:
				fmt.Printf("  pause %dms\n", a.DurationMs)
			default:
				fmt.Printf("  %s\n", a.Type)
			}
		}
	}
	for _, call := range s.Mock.ScriptCalls {
		fmt.Printf("script: %s %v\n", call.Script, call.Args)
	}
}

var swipeCommand = &cli.Command{
	Name:      "swipe",
	Usage:     "Perform full-region swipes",
	ArgsUsage: "<up|down|left|right|next|previous>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "times",
			Usage: "Repeat the swipe",
			Value: 1,
		},
	},
	Action: func(c *cli.Context) error {
		dir := c.Args().First()
		if dir == "" {
			return fmt.Errorf("swipe direction required")
		}
		s, err := setup(c)
		if err != nil {
			return err
		}
		defer s.Close()

		var fn func() error
		switch dir {
		case "up":
			fn = s.Actions.SwipeUp
		case "down":
			fn = s.Actions.SwipeDown
		case "left":
			fn = s.Actions.SwipeLeft
		case "right":
			fn = s.Actions.SwipeRight
		case "next":
			fn = s.Actions.SwipeNext
		case "previous":
			fn = s.Actions.SwipePrevious
		default:
			return fmt.Errorf("unknown swipe direction %q", dir)
		}
		for i := 0; i < c.Int("times"); i++ {
			if err := fn(); err != nil {
				return err
			}
		}
		dumpTraffic(s)
		return nil
	},
}

var scrollToCommand = &cli.Command{
	Name:  "scroll-to",
	Usage: "Scroll until an element is inside the scrollable region",
	Flags: append(selectorFlags(""),
		&cli.StringFlag{
			Name:  "direction",
			Usage: "Probe direction (up, down, left, right)",
			Value: "down",
		},
	),
	Action: func(c *cli.Context) error {
		sel, err := selectorFromFlags(c, "")
		if err != nil {
			return err
		}
		s, err := setup(c)
		if err != nil {
			return err
		}
		defer s.Close()

		bounds, err := s.Actions.SwipeIntoView(sel, gesture.SeekDirection(c.String("direction")))
		if err != nil {
			return err
		}
		fmt.Printf("element at x=%d y=%d w=%d h=%d\n", bounds.X, bounds.Y, bounds.Width, bounds.Height)
		dumpTraffic(s)
		return nil
	},
}

var tapCommand = &cli.Command{
	Name:  "tap",
	Usage: "Tap, multi-tap or long-press an element",
	Flags: append(selectorFlags(""),
		&cli.IntFlag{
			Name:  "taps",
			Usage: "Number of taps (1-3)",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "hold",
			Usage: "Long-press hold in ms (overrides --taps)",
		},
	),
	Action: func(c *cli.Context) error {
		sel, err := selectorFromFlags(c, "")
		if err != nil {
			return err
		}
		s, err := setup(c)
		if err != nil {
			return err
		}
		defer s.Close()

		if hold := c.Int("hold"); hold > 0 {
			err = s.Actions.LongPress(sel, hold)
		} else {
			switch c.Int("taps") {
			case 1:
				err = s.Actions.Tap(sel)
			case 2:
				err = s.Actions.DoubleTap(sel)
			case 3:
				err = s.Actions.TripleTap(sel)
			default:
				return fmt.Errorf("--taps must be 1, 2 or 3")
			}
		}
		if err != nil {
			return err
		}
		dumpTraffic(s)
		return nil
	},
}

var dragCommand = &cli.Command{
	Name:  "drag",
	Usage: "Drag one element onto another",
	Flags: append(append(selectorFlags("from"), selectorFlags("to")...),
		&cli.Float64Flag{
			Name:  "speed",
			Usage: "Velocity factor (0-10)",
			Value: 1.0,
		},
	),
	Action: func(c *cli.Context) error {
		src, err := selectorFromFlags(c, "from")
		if err != nil {
			return err
		}
		dst, err := selectorFromFlags(c, "to")
		if err != nil {
			return err
		}
		s, err := setup(c)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Actions.DragAndDrop(src, dst, c.Float64("speed")); err != nil {
			return err
		}
		dumpTraffic(s)
		return nil
	},
}

var pinchCommand = &cli.Command{
	Name:      "pinch",
	Usage:     "Pinch open (zoom in) or close (zoom out) on an element",
	ArgsUsage: "<open|close>",
	Flags: append(selectorFlags(""),
		&cli.Float64Flag{
			Name:  "percent",
			Usage: "Pinch travel across the element (0-1)",
			Value: gesture.DefaultPinchPercent,
		},
		&cli.Float64Flag{
			Name:  "speed",
			Usage: "Velocity factor",
			Value: gesture.DefaultPinchSpeed,
		},
	),
	Action: func(c *cli.Context) error {
		mode := c.Args().First()
		if mode != "open" && mode != "close" {
			return fmt.Errorf("pinch mode must be open or close")
		}
		sel, err := selectorFromFlags(c, "")
		if err != nil {
			return err
		}
		s, err := setup(c)
		if err != nil {
			return err
		}
		defer s.Close()

		if mode == "open" {
			err = s.Actions.PinchOpen(sel, c.Float64("percent"), c.Float64("speed"))
		} else {
			err = s.Actions.PinchClose(sel, c.Float64("percent"), c.Float64("speed"))
		}
		if err != nil {
			return err
		}
		dumpTraffic(s)
		return nil
	},
}

var scriptCommand = &cli.Command{
	Name:      "script",
	Usage:     "Run a JavaScript gesture script",
	ArgsUsage: "<script.js>",
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return fmt.Errorf("script file required")
		}
		src, err := os.ReadFile(path) //#nosec G304 -- user-provided script file
		if err != nil {
			return err
		}
		s, err := setup(c)
		if err != nil {
			return err
		}
		defer s.Close()

		engine := script.New(s.Actions)
		if err := engine.RunScript(string(src)); err != nil {
			return err
		}
		dumpTraffic(s)
		return nil
	},
}
