// Package cli provides the command-line interface for appium-gestures.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/appium-gestures/pkg/config"
	"github.com/devicelab-dev/appium-gestures/pkg/core"
	appiumdriver "github.com/devicelab-dev/appium-gestures/pkg/driver/appium"
	"github.com/devicelab-dev/appium-gestures/pkg/driver/mock"
	"github.com/devicelab-dev/appium-gestures/pkg/gesture"
	"github.com/devicelab-dev/appium-gestures/pkg/logger"
	"github.com/devicelab-dev/appium-gestures/pkg/viewport"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "server",
		Aliases: []string{"s"},
		Usage:   "Appium server URL",
		Value:   "http://127.0.0.1:4723",
		EnvVars: []string{"APPIUM_URL"},
	},
	&cli.StringFlag{
		Name:    "platform",
		Aliases: []string{"p"},
		Usage:   "Platform to target (android, ios)",
		EnvVars: []string{"GESTURES_PLATFORM"},
	},
	&cli.StringFlag{
		Name:  "caps",
		Usage: "Path to JSON capabilities file for session creation",
	},
	&cli.StringFlag{
		Name:  "config",
		Usage: "Path to gestures.yaml",
	},
	&cli.StringFlag{
		Name:  "log-file",
		Usage: "Write logs to this file",
	},
	&cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Use an in-memory driver and print the pointer traffic instead of touching a device",
	},
	&cli.Float64Flag{
		Name:  "crop-upper",
		Usage: "Upper crop factor override",
	},
	&cli.Float64Flag{
		Name:  "crop-lower",
		Usage: "Lower crop factor override",
	},
	&cli.Float64Flag{
		Name:  "crop-left",
		Usage: "Left crop factor override",
	},
	&cli.Float64Flag{
		Name:  "crop-right",
		Usage: "Right crop factor override",
	},
	&cli.IntFlag{
		Name:  "probe-attempts",
		Usage: "Probe budget for scroll-to",
	},
}

// Execute runs the CLI.
func Execute() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "appium-gestures",
		Usage:   "Gesture automation against an Appium session",
		Version: Version,
		Description: `Drives swipes, scroll-into-view, taps, drags and pinches over the
W3C WebDriver actions protocol.

Examples:
  appium-gestures swipe up
  appium-gestures scroll-to --android-value "Settings" --direction down
  appium-gestures tap --android-strategy "accessibility id" --android-value "Save"
  appium-gestures script gestures.js`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			swipeCommand,
			scrollToCommand,
			tapCommand,
			dragCommand,
			pinchCommand,
			scriptCommand,
		},
	}
}

// session holds what a command needs to run gestures and tear down after.
type session struct {
	Actions *gesture.Actions
	Driver  gesture.Driver
	Mock    *mock.Driver // non-nil in dry-run mode
	cleanup func()
}

// Close releases the session.
func (s *session) Close() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

// setup loads config, initializes logging and connects the driver.
func setup(c *cli.Context) (*session, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	logPath := c.String("log-file")
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath != "" {
		if err := logger.Init(logPath); err != nil {
			return nil, err
		}
	} else {
		logger.InitWriter(os.Stderr)
	}

	if c.Bool("dry-run") {
		md := mock.New(mock.Config{
			Platform: platformOf(c, cfg),
			Element: &mock.Element{
				Bounds: core.Bounds{X: 400, Y: 2000, Width: 280, Height: 120},
				ShiftY: -800,
			},
		})
		actions, err := gesture.New(md, gestureConfig(c, cfg))
		if err != nil {
			return nil, err
		}
		return &session{Actions: actions, Driver: md, Mock: md, cleanup: logger.Close}, nil
	}

	server := c.String("server")
	if !c.IsSet("server") && cfg.Server != "" {
		server = cfg.Server
	}
	client := appiumdriver.NewClient(server)

	caps, err := capabilities(c, cfg)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(caps); err != nil {
		return nil, err
	}

	actions, err := gesture.New(client, gestureConfig(c, cfg))
	if err != nil {
		client.Disconnect()
		return nil, err
	}

	return &session{
		Actions: actions,
		Driver:  client,
		cleanup: func() {
			client.Disconnect()
			logger.Close()
		},
	}, nil
}

// gestureConfig merges flag overrides over the file config.
func gestureConfig(c *cli.Context, cfg *config.Config) gesture.Config {
	gc := cfg.GestureConfig()
	if c.IsSet("probe-attempts") {
		gc.ProbeAttempts = c.Int("probe-attempts")
	}
	cropFlags := []string{"crop-upper", "crop-lower", "crop-left", "crop-right"}
	anySet := false
	for _, f := range cropFlags {
		if c.IsSet(f) {
			anySet = true
		}
	}
	if anySet {
		if gc.CropFactors == (viewport.CropFactors{}) {
			gc.CropFactors = viewport.DefaultCropFactors()
		}
		if c.IsSet("crop-upper") {
			gc.CropFactors.Upper = c.Float64("crop-upper")
		}
		if c.IsSet("crop-lower") {
			gc.CropFactors.Lower = c.Float64("crop-lower")
		}
		if c.IsSet("crop-left") {
			gc.CropFactors.Left = c.Float64("crop-left")
		}
		if c.IsSet("crop-right") {
			gc.CropFactors.Right = c.Float64("crop-right")
		}
	}
	return gc
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadFromDir(".")
}

func platformOf(c *cli.Context, cfg *config.Config) string {
	if p := c.String("platform"); p != "" {
		return p
	}
	return cfg.Platform
}

func capabilities(c *cli.Context, cfg *config.Config) (map[string]interface{}, error) {
	caps := map[string]interface{}{}
	for k, v := range cfg.Capabilities {
		caps[k] = v
	}
	if path := c.String("caps"); path != "" {
		data, err := os.ReadFile(path) //#nosec G304 -- user-provided caps file
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &caps); err != nil {
			return nil, fmt.Errorf("invalid capabilities file: %w", err)
		}
	}
	if p := platformOf(c, cfg); p != "" {
		caps["platformName"] = p
	}
	if _, ok := caps["platformName"]; !ok {
		return nil, fmt.Errorf("platform not set: use --platform, config, or a caps file")
	}
	return caps, nil
}
