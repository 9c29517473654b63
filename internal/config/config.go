// Package config defines the CLI structure and configuration for knobpad.
package config

import (
	"github.com/Alia5/knobpad/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"KNOBPAD_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"KNOBPAD_LOG_FILE"`
	RawFile string `help:"Raw HID report log file path (default: none)" env:"KNOBPAD_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Config string `help:"Config file (JSON, YAML or TOML)" type:"path" env:"KNOBPAD_CONFIG"`
	Log    `embed:"" prefix:"log."`

	Run        cmd.Run        `cmd:"" help:"Poll the controller and report to the host joystick"`
	Check      cmd.Check      `cmd:"" help:"Validate a layout file without touching hardware"`
	Descriptor cmd.Descriptor `cmd:"" help:"Print the HID report descriptor"`
	Install    cmd.Install    `cmd:"" help:"Install a systemd service that runs the controller at boot"`
	Uninstall  cmd.Uninstall  `cmd:"" help:"Remove the systemd service"`
}
