package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitClass(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"firefox\x00Firefox\x00", []string{"firefox", "Firefox"}},
		{"code\x00Code\x00", []string{"code", "Code"}},
		{"\x00\x00solo\x00\x00", []string{"solo"}},
		{"", []string{}},
		{"noterminator", []string{"noterminator"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitClass(tt.raw))
		})
	}
}

func TestSegmentsNameIsSingleField(t *testing.T) {
	v := NewAttributeValue(Name, []byte("a\x00b"))
	assert.Equal(t, []string{"a\x00b"}, v.Segments())

	empty := NewAttributeValue(Name, nil)
	assert.Equal(t, []string{""}, empty.Segments())
}

func TestSegmentsClass(t *testing.T) {
	v := NewAttributeValue(Class, []byte("firefox\x00Firefox\x00"))
	assert.Equal(t, []string{"firefox", "Firefox"}, v.Segments())
}

func TestNewAttributeValueInvalidUTF8(t *testing.T) {
	v := NewAttributeValue(Name, []byte{'o', 'k', 0xff})
	assert.Equal(t, "ok\uFFFD", v.Raw)
}

func TestParseAttributeKind(t *testing.T) {
	for in, want := range map[string]AttributeKind{
		"name":    Name,
		"Name":    Name,
		"title":   Name,
		"class":   Class,
		" CLASS ": Class,
	} {
		got, err := ParseAttributeKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAttributeKind("pid")
	assert.Error(t, err)
}

func TestAttributeKindText(t *testing.T) {
	var k AttributeKind
	require.NoError(t, k.UnmarshalText([]byte("class")))
	assert.Equal(t, Class, k)

	text, err := k.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "class", string(text))

	assert.Error(t, k.UnmarshalText([]byte("bogus")))
	assert.Equal(t, Class, k)
	assert.Equal(t, "AttributeKind(7)", AttributeKind(7).String())
}
