//go:build linux

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const serviceName = "knobpad.service"

var unitDir = filepath.Join(string(os.PathSeparator), "etc", "systemd", "system")

func serviceUnit(exe, layout string, args []string) string {
	cmdline := []string{strconv.Quote(exe), "run", "--layout", strconv.Quote(layout)}
	for _, a := range args {
		cmdline = append(cmdline, strconv.Quote(a))
	}
	return fmt.Sprintf(`[Unit]
Description=knobpad game controller
After=sys-kernel-config.mount

[Service]
ExecStart=%s
Restart=on-failure
RestartSec=2

[Install]
WantedBy=multi-user.target
`, strings.Join(cmdline, " "))
}

func install(logger *slog.Logger, exe, layout string, args []string) error {
	path := filepath.Join(unitDir, serviceName)
	if err := os.WriteFile(path, []byte(serviceUnit(exe, layout, args)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := systemctl("daemon-reload"); err != nil {
		return err
	}
	if err := systemctl("enable", "--now", serviceName); err != nil {
		return err
	}
	logger.Info("knobpad install completed for systemd", "unit", path, "exe", exe, "layout", layout)
	return nil
}

func uninstall(logger *slog.Logger) error {
	path := filepath.Join(unitDir, serviceName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("knobpad service not installed", "unit", path)
		return nil
	}
	if err := systemctl("disable", "--now", serviceName); err != nil {
		logger.Warn("failed to stop service", "error", err)
	}
	if err := os.Remove(path); err != nil {
		return err
	}
	if err := systemctl("daemon-reload"); err != nil {
		return err
	}
	logger.Info("knobpad uninstall completed", "unit", path)
	return nil
}

func systemctl(args ...string) error {
	out, err := exec.Command("systemctl", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}
