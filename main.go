package main

import "github.com/devicelab-dev/appium-gestures/pkg/cli"

func main() {
	cli.Execute()
}
