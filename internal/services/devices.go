package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"stylus-area/internal/logger"
)

var ErrNoDevices = errors.New("no tablet devices found")

// DeviceService talks to xsetwacom.
type DeviceService struct {
	runner  CommandRunner
	command string
	timeout time.Duration
	logger  logger.Logger
}

func NewDeviceService(runner CommandRunner, command string, timeout time.Duration, log logger.Logger) *DeviceService {
	return &DeviceService{
		runner:  runner,
		command: command,
		timeout: timeout,
		logger:  log,
	}
}

// ListDevices returns the device display names in the order xsetwacom
// reports them. An empty list is ErrNoDevices.
func (s *DeviceService) ListDevices(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.runner.Run(ctx, s.command, "--list", "devices")
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	devices := ParseDeviceList(string(result.Stdout))
	s.logger.Info("DeviceService", "devices enumerated", map[string]interface{}{
		"count":       len(devices),
		"devices":     devices,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if len(devices) == 0 {
		return nil, ErrNoDevices
	}
	return devices, nil
}

// ParseDeviceList reads `xsetwacom --list devices` output: one device per
// line, name in the first tab-separated field. The final line is always
// dropped since the output ends with a newline.
func ParseDeviceList(out string) []string {
	lines := strings.Split(out, "\n")
	lines = lines[:len(lines)-1]

	devices := make([]string, 0, len(lines))
	for _, line := range lines {
		name, _, _ := strings.Cut(line, "\t")
		name = strings.TrimRightFunc(name, unicode.IsSpace)
		if name == "" {
			continue
		}
		devices = append(devices, name)
	}
	return devices
}

// MapToOutput binds the device's active area to the screen rectangle
// described by geometry.
func (s *DeviceService) MapToOutput(ctx context.Context, device, geometry string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.runner.Run(ctx, s.command, "--set", device, "MapToOutput", geometry)
	if err != nil {
		return fmt.Errorf("map %q to %s: %w", device, geometry, err)
	}

	fields := map[string]interface{}{
		"device":      device,
		"geometry":    geometry,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if msg := strings.TrimSpace(string(result.Stderr)); msg != "" {
		fields["stderr"] = msg
		s.logger.Warning("DeviceService", "mapping reported diagnostics", fields)
		return nil
	}
	s.logger.Info("DeviceService", "device mapped", fields)
	return nil
}
