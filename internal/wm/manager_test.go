package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestSelectBackend(t *testing.T) {
	tests := []struct {
		name    string
		request string
		env     map[string]string
		want    string
		wantErr bool
	}{
		{"forced x11", "x11", nil, BackendX11, false},
		{"forced hyprland", "Hyprland", nil, BackendHyprland, false},
		{"auto hyprland", "auto", map[string]string{"HYPRLAND_INSTANCE_SIGNATURE": "abc", "XDG_SESSION_TYPE": "wayland"}, BackendHyprland, false},
		{"auto x11 session", "", map[string]string{"XDG_SESSION_TYPE": "x11"}, BackendX11, false},
		{"auto display only", "auto", map[string]string{"DISPLAY": ":0"}, BackendX11, false},
		{"wayland without hyprland", "auto", map[string]string{"XDG_SESSION_TYPE": "wayland"}, "", true},
		{"nothing", "auto", nil, "", true},
		{"unknown", "sway", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectBackend(tt.request, env(tt.env))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
