// Package layout describes how a controller is wired: which physical controls
// exist, which pins they read and which joystick buttons and axes they drive.
//
// A layout is loaded from YAML or TOML and built against a pin.Board and a
// host into the components the polling loop drives.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Control types.
const (
	TypePushButton = "pushbutton"
	TypeSwitch2    = "switch2"
	TypeSwitch3    = "switch3"
	TypeThreshold  = "threshold"
	TypeCircular   = "circular"
	TypeQuadrature = "quadrature"
)

var (
	ErrUnknownType   = errors.New("unknown control type")
	ErrInvalid       = errors.New("invalid control")
	ErrUnknownFormat = errors.New("unknown layout format")
)

// Layout is the root of a layout file.
type Layout struct {
	Muxes    []Mux     `yaml:"muxes" toml:"muxes"`
	Controls []Control `yaml:"controls" toml:"controls"`
}

// Mux declares a 74LS151 multiplexer. Its lines are referenced from control
// inputs as "name:N".
type Mux struct {
	Name    string   `yaml:"name" toml:"name"`
	Address []string `yaml:"address" toml:"address"`
	Data    string   `yaml:"data" toml:"data"`
}

// Control declares one physical control. Which fields apply depends on Type.
//
//	pushbutton  inputs: [in]        buttons: [button]
//	switch2     inputs: [in]        buttons: [up, down]
//	switch3     inputs: [up, down]  buttons: [up, middle, down]
//	threshold   analog              buttons: [on, off]  axis, threshold
//	circular    analog              buttons: [up, down] divisions
//	quadrature  inputs: [a, b]      buttons: [forward, backward] queue_limit
//
// Hold, when positive, makes every button of the control momentary: it is
// released automatically Hold ticks after being pressed.
type Control struct {
	Name       string   `yaml:"name" toml:"name"`
	Type       string   `yaml:"type" toml:"type"`
	Inputs     []string `yaml:"inputs" toml:"inputs"`
	Analog     string   `yaml:"analog" toml:"analog"`
	Axis       string   `yaml:"axis" toml:"axis"`
	Buttons    []int    `yaml:"buttons" toml:"buttons"`
	Hold       int      `yaml:"hold" toml:"hold"`
	Threshold  float64  `yaml:"threshold" toml:"threshold"`
	Divisions  int      `yaml:"divisions" toml:"divisions"`
	QueueLimit int      `yaml:"queue_limit" toml:"queue_limit"`
}

// Label names the control in errors and logs.
func (c Control) Label(i int) string {
	if c.Name != "" {
		return fmt.Sprintf("%s %q", c.Type, c.Name)
	}
	return fmt.Sprintf("%s #%d", c.Type, i)
}

// Load reads a layout file. The format follows the extension: .yaml, .yml or
// .toml.
func Load(path string) (*Layout, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := Parse(b, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a layout in the format named by ext (".yaml", ".yml" or
// ".toml").
func Parse(b []byte, ext string) (*Layout, error) {
	var l Layout
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &l); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &l); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return &l, nil
}
