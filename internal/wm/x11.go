package wm

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"

	"fix-layout/pkg/core"
)

// maxPropertyLength is the property read length in 32-bit units.
const maxPropertyLength = 1024

// X11 watches _NET_ACTIVE_WINDOW on the root window.
type X11 struct {
	log  core.Logger
	xu   *xgbutil.XUtil
	root xproto.Window

	activeWindowAtom xproto.Atom
	windowNameAtom   xproto.Atom
	windowClassAtom  xproto.Atom
}

// NewX11 connects to $DISPLAY, selects property change events on the root
// window and interns the atoms later queries need.
func NewX11(log core.Logger) (*X11, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, &InitError{Backend: "X11", Err: err}
	}

	x := &X11{
		log:  log,
		xu:   xu,
		root: xu.RootWin(),
	}
	if err := x.subscribe(); err != nil {
		xu.Conn().Close()
		return nil, &InitError{Backend: "X11", Err: err}
	}

	log.Debug("Connected to X server",
		"root", x.root,
		"active_window_atom", x.activeWindowAtom,
		"wm_name_atom", x.windowNameAtom,
		"wm_class_atom", x.windowClassAtom)

	return x, nil
}

func (x *X11) subscribe() error {
	err := xproto.ChangeWindowAttributesChecked(
		x.xu.Conn(),
		x.root,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange},
	).Check()
	if err != nil {
		return fmt.Errorf("failed to select property events on root window: %w", err)
	}

	for _, a := range []struct {
		name string
		dst  *xproto.Atom
	}{
		{"_NET_ACTIVE_WINDOW", &x.activeWindowAtom},
		{"WM_NAME", &x.windowNameAtom},
		{"WM_CLASS", &x.windowClassAtom},
	} {
		atom, err := xprop.Atm(x.xu, a.name)
		if err != nil {
			return fmt.Errorf("failed to intern %s: %w", a.name, err)
		}
		*a.dst = atom
	}
	return nil
}

func (x *X11) Name() string {
	return "X11"
}

func (x *X11) Close() error {
	x.xu.Conn().Close()
	return nil
}

func (x *X11) WaitForFocusChange() error {
	for {
		ev, xerr := x.xu.Conn().WaitForEvent()
		if ev == nil && xerr == nil {
			return ErrConnectionClosed
		}
		if xerr != nil {
			x.log.Debug("Ignoring X error while waiting", "error", xerr.Error())
			continue
		}
		if isFocusChange(ev, x.activeWindowAtom) {
			return nil
		}
	}
}

// isFocusChange reports whether ev is a property notification for atom.
func isFocusChange(ev xgb.Event, atom xproto.Atom) bool {
	pn, ok := ev.(xproto.PropertyNotifyEvent)
	return ok && pn.Atom == atom
}

func (x *X11) Attribute(kind AttributeKind) (AttributeValue, bool) {
	win, ok := x.focusedWindow()
	if !ok {
		return AttributeValue{}, false
	}

	switch kind {
	case Name:
		return x.windowName(win)
	case Class:
		return x.windowClass(win)
	}
	return AttributeValue{}, false
}

func (x *X11) focusedWindow() (xproto.Window, bool) {
	reply, err := xproto.GetProperty(x.xu.Conn(), false, x.root,
		x.activeWindowAtom, xproto.AtomWindow, 0, 1).Reply()
	if err != nil {
		x.log.Debug("Failed to read active window", "error", err.Error())
		return 0, false
	}
	return activeWindowFromReply(reply)
}

// activeWindowFromReply decodes a _NET_ACTIVE_WINDOW reply. Window 0 means
// nothing has focus.
func activeWindowFromReply(reply *xproto.GetPropertyReply) (xproto.Window, bool) {
	if reply == nil || reply.Format != 32 || len(reply.Value) < 4 {
		return 0, false
	}
	win := xproto.Window(xgb.Get32(reply.Value))
	if win == 0 {
		return 0, false
	}
	return win, true
}

func (x *X11) windowName(win xproto.Window) (AttributeValue, bool) {
	title, err := ewmh.WmNameGet(x.xu, win)
	if err == nil && strings.TrimSpace(title) != "" {
		return NewAttributeValue(Name, []byte(title)), true
	}
	raw, ok := x.rawProperty(win, x.windowNameAtom, Name)
	return pickName(title, err == nil, raw, ok)
}

// pickName prefers a non-blank UTF-8 _NET_WM_NAME, then the raw WM_NAME
// bytes. A blank _NET_WM_NAME still counts as a present empty title when
// WM_NAME is missing.
func pickName(netName string, netOK bool, wmName AttributeValue, wmOK bool) (AttributeValue, bool) {
	switch {
	case netOK && strings.TrimSpace(netName) != "":
		return NewAttributeValue(Name, []byte(netName)), true
	case wmOK:
		return wmName, true
	case netOK:
		return NewAttributeValue(Name, []byte(netName)), true
	}
	return AttributeValue{}, false
}

// windowClass reads WM_CLASS without decoding it so both the instance and
// class part stay available for matching.
func (x *X11) windowClass(win xproto.Window) (AttributeValue, bool) {
	return x.rawProperty(win, x.windowClassAtom, Class)
}

func (x *X11) rawProperty(win xproto.Window, atom xproto.Atom, kind AttributeKind) (AttributeValue, bool) {
	reply, err := xproto.GetProperty(x.xu.Conn(), false, win,
		atom, xproto.GetPropertyTypeAny, 0, maxPropertyLength).Reply()
	if err != nil {
		x.log.Debug("Failed to read window property",
			"window", win, "attribute", kind.String(), "error", err.Error())
		return AttributeValue{}, false
	}
	return propertyFromReply(reply, kind)
}

// propertyFromReply keeps 8-bit property data as is. A property that does
// not exist comes back with type None.
func propertyFromReply(reply *xproto.GetPropertyReply, kind AttributeKind) (AttributeValue, bool) {
	if reply == nil || reply.Type == xproto.AtomNone || reply.Format != 8 {
		return AttributeValue{}, false
	}
	return NewAttributeValue(kind, reply.Value), true
}
