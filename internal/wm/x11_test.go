package wm

import (
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFocusChange(t *testing.T) {
	const active xproto.Atom = 330

	assert.True(t, isFocusChange(xproto.PropertyNotifyEvent{Atom: active}, active))
	assert.False(t, isFocusChange(xproto.PropertyNotifyEvent{Atom: 39}, active))
	assert.False(t, isFocusChange(xproto.FocusInEvent{}, active))
	assert.False(t, isFocusChange(xproto.ConfigureNotifyEvent{}, active))
}

func windowReply(win uint32) *xproto.GetPropertyReply {
	value := make([]byte, 4)
	xgb.Put32(value, win)
	return &xproto.GetPropertyReply{Format: 32, Type: xproto.AtomWindow, ValueLen: 1, Value: value}
}

func TestActiveWindowFromReply(t *testing.T) {
	tests := map[string]struct {
		reply *xproto.GetPropertyReply
		want  xproto.Window
		ok    bool
	}{
		"nil reply":       {reply: nil},
		"short value":     {reply: &xproto.GetPropertyReply{Format: 32, Value: []byte{1, 2}}},
		"wrong format":    {reply: &xproto.GetPropertyReply{Format: 8, Value: []byte{1, 2, 3, 4}}},
		"no focus":        {reply: windowReply(0)},
		"focused window":  {reply: windowReply(0x3a00007), want: 0x3a00007, ok: true},
		"property absent": {reply: &xproto.GetPropertyReply{Type: xproto.AtomNone}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			win, ok := activeWindowFromReply(tt.reply)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, win)
		})
	}
}

func TestPropertyFromReply(t *testing.T) {
	class := &xproto.GetPropertyReply{Format: 8, Type: xproto.AtomString, Value: []byte("code\x00Code\x00")}
	v, ok := propertyFromReply(class, Class)
	require.True(t, ok)
	assert.Equal(t, Class, v.Kind)
	assert.Equal(t, []string{"code", "Code"}, v.Segments())

	empty := &xproto.GetPropertyReply{Format: 8, Type: xproto.AtomString}
	v, ok = propertyFromReply(empty, Name)
	require.True(t, ok)
	assert.Equal(t, "", v.Raw)

	for name, reply := range map[string]*xproto.GetPropertyReply{
		"nil reply":   nil,
		"type none":   {Type: xproto.AtomNone},
		"32-bit data": {Format: 32, Type: xproto.AtomCardinal, Value: []byte{1, 0, 0, 0}},
		"16-bit data": {Format: 16, Type: xproto.AtomString, Value: []byte{1, 0}},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := propertyFromReply(reply, Class)
			assert.False(t, ok)
		})
	}
}

func TestPickName(t *testing.T) {
	wmName := NewAttributeValue(Name, []byte("xterm"))

	tests := map[string]struct {
		netName string
		netOK   bool
		wmOK    bool
		want    string
		ok      bool
	}{
		"net name wins":             {netName: "vim - main.go", netOK: true, wmOK: true, want: "vim - main.go", ok: true},
		"blank net name falls back": {netName: "  ", netOK: true, wmOK: true, want: "xterm", ok: true},
		"net name missing":          {wmOK: true, want: "xterm", ok: true},
		"blank net name only":       {netName: "", netOK: true, want: "", ok: true},
		"neither present":           {},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, ok := pickName(tt.netName, tt.netOK, wmName, tt.wmOK)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, v.Raw)
		})
	}
}
