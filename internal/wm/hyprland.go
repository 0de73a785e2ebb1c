package wm

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/thiagokokada/hyprland-go"
	"github.com/thiagokokada/hyprland-go/event"

	"fix-layout/pkg/core"
)

// Hyprland listens for activewindow events on the compositor's event socket
// and reads attributes through the request socket.
type Hyprland struct {
	log    core.Logger
	events io.Closer
	focus  chan struct{}
	done   chan struct{}
	active func() (hyprland.Window, error)
}

// focusHandler turns activewindow callbacks into pending focus changes.
// Notifications arriving while one is already pending are coalesced.
type focusHandler struct {
	event.DefaultEventHandler
	focus chan<- struct{}
}

func (f *focusHandler) ActiveWindow(event.ActiveWindow) {
	select {
	case f.focus <- struct{}{}:
	default:
	}
}

// NewHyprland connects the event and request clients of the running
// Hyprland instance.
func NewHyprland(log core.Logger) (*Hyprland, error) {
	socket, err := hyprlandEventSocket(os.Getenv)
	if err != nil {
		return nil, &InitError{Backend: "Hyprland", Err: err}
	}

	var (
		events    io.Closer
		subscribe func(event.EventHandler)
		active    func() (hyprland.Window, error)
	)
	err = recoverClient(func() {
		ec := event.MustClient()
		events = ec
		subscribe = func(h event.EventHandler) {
			ec.Subscribe(context.Background(), h, event.EventActiveWindow)
		}
		active = hyprland.MustClient().ActiveWindow
	})
	if err != nil {
		return nil, &InitError{Backend: "Hyprland", Err: fmt.Errorf("failed to connect to %s: %w", socket, err)}
	}
	log.Debug("Connected to Hyprland event socket", "socket", socket)

	return newHyprland(log, events, subscribe, active), nil
}

// recoverClient runs connect and reports a panic from the Must* constructors
// as an error.
func recoverClient(connect func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	connect()
	return nil
}

func newHyprland(log core.Logger, events io.Closer, subscribe func(event.EventHandler), active func() (hyprland.Window, error)) *Hyprland {
	h := &Hyprland{
		log:    log,
		events: events,
		focus:  make(chan struct{}, 1),
		done:   make(chan struct{}),
		active: active,
	}
	go func() {
		defer close(h.done)
		subscribe(&focusHandler{focus: h.focus})
	}()
	return h
}

// hyprlandEventSocket locates .socket2.sock, preferring $XDG_RUNTIME_DIR/hypr
// and falling back to the older /tmp/hypr location.
func hyprlandEventSocket(getenv func(string) string) (string, error) {
	sig := getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if sig == "" {
		return "", fmt.Errorf("HYPRLAND_INSTANCE_SIGNATURE is not set")
	}

	var candidates []string
	if dir := getenv("XDG_RUNTIME_DIR"); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "hypr", sig, ".socket2.sock"))
	}
	candidates = append(candidates, filepath.Join("/tmp", "hypr", sig, ".socket2.sock"))

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", fmt.Errorf("hyprland event socket not found, tried %s", strings.Join(candidates, ", "))
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

func (h *Hyprland) Close() error {
	return h.events.Close()
}

// WaitForFocusChange blocks until an activewindow event arrives. A pending
// event is delivered before the end of the stream is reported.
func (h *Hyprland) WaitForFocusChange() error {
	select {
	case <-h.focus:
		return nil
	case <-h.done:
	}
	select {
	case <-h.focus:
		return nil
	default:
		return ErrConnectionClosed
	}
}

func (h *Hyprland) Attribute(kind AttributeKind) (AttributeValue, bool) {
	w, err := h.active()
	if err != nil {
		h.log.Debug("Failed to query active window", "error", err.Error())
		return AttributeValue{}, false
	}
	if w.Address == "" {
		return AttributeValue{}, false
	}

	switch kind {
	case Name:
		return NewAttributeValue(Name, []byte(w.Title)), true
	case Class:
		// Same instance\0class\0 shape as WM_CLASS on X11.
		return NewAttributeValue(Class, []byte(w.InitialClass+"\x00"+w.Class+"\x00")), true
	}
	return AttributeValue{}, false
}
