package wm

import (
	"fmt"
	"os"
	"strings"

	"fix-layout/pkg/core"
)

const (
	BackendAuto     = "auto"
	BackendX11      = "x11"
	BackendHyprland = "hyprland"
)

// SelectBackend resolves a configured backend name to a concrete one. For
// "auto" (or empty) the session is detected from the environment.
func SelectBackend(name string, getenv func(string) string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendAuto:
	case BackendX11:
		return BackendX11, nil
	case BackendHyprland:
		return BackendHyprland, nil
	default:
		return "", fmt.Errorf("unknown backend %q (want auto, x11 or hyprland)", name)
	}

	if getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
		return BackendHyprland, nil
	}

	sessionType := getenv("XDG_SESSION_TYPE")
	if sessionType == "x11" || getenv("DISPLAY") != "" {
		return BackendX11, nil
	}
	if sessionType == "wayland" {
		return "", fmt.Errorf("unsupported Wayland compositor: only Hyprland is supported")
	}
	return "", fmt.Errorf("unsupported session type: %q", sessionType)
}

// NewBackend creates the backend for the session.
func NewBackend(name string, log core.Logger) (Backend, error) {
	selected, err := SelectBackend(name, os.Getenv)
	if err != nil {
		return nil, &InitError{Backend: name, Err: err}
	}
	log.Info("Session backend selected",
		"requested", name,
		"backend", selected,
		"session", os.Getenv("XDG_SESSION_TYPE"))

	var b Backend
	switch selected {
	case BackendHyprland:
		b, err = NewHyprland(log)
	default:
		b, err = NewX11(log)
	}
	if err != nil {
		return nil, err
	}

	log.Info("Window system backend initialized", "name", b.Name())
	return b, nil
}
