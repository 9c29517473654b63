package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Install sets up knobpad to run automatically.
type Install struct {
	Layout string   `help:"Layout file the service runs with" type:"existingfile" required:""`
	Args   []string `arg:"" optional:"" help:"Extra flags passed to the run command"`
}

// Uninstall removes the knobpad startup configuration.
type Uninstall struct{}

func (c *Install) Run(logger *slog.Logger) error {
	exe, err := currentExecutable()
	if err != nil {
		return err
	}

	if strings.Contains(exe, "go-build") {
		return errors.New("cannot install from 'go run'")
	}

	layout, err := filepath.Abs(c.Layout)
	if err != nil {
		return err
	}
	return install(logger, exe, layout, c.Args)
}

func (c *Uninstall) Run(logger *slog.Logger) error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}

	if strings.Contains(exe, "go-build") {
		return errors.New("cannot uninstall from 'go run'")
	}

	return uninstall(logger)
}

func currentExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.Abs(exe)
}
