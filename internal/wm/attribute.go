package wm

import (
	"fmt"
	"strings"
)

// AttributeKind selects which textual property of a window is matched.
type AttributeKind int

const (
	// Name is the window title.
	Name AttributeKind = iota
	// Class is the application class, an instance/class pair.
	Class
)

func (k AttributeKind) String() string {
	switch k {
	case Name:
		return "name"
	case Class:
		return "class"
	}
	return fmt.Sprintf("AttributeKind(%d)", int(k))
}

// ParseAttributeKind accepts "name" (or "title") and "class", in any case.
func ParseAttributeKind(s string) (AttributeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "title":
		return Name, nil
	case "class":
		return Class, nil
	}
	return 0, fmt.Errorf("unknown window attribute %q (want name or class)", s)
}

func (k AttributeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AttributeKind) UnmarshalText(text []byte) error {
	parsed, err := ParseAttributeKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// AttributeValue is the decoded value of a window attribute.
type AttributeValue struct {
	Kind AttributeKind
	Raw  string
}

// NewAttributeValue decodes raw property bytes. Invalid UTF-8 is replaced
// rather than rejected.
func NewAttributeValue(kind AttributeKind, data []byte) AttributeValue {
	return AttributeValue{
		Kind: kind,
		Raw:  strings.ToValidUTF8(string(data), "\uFFFD"),
	}
}

// Segments returns the strings a pattern is matched against. A name is a
// single field and is returned as is, even when empty. A class holds
// NUL-separated parts and only its non-empty parts are returned.
func (v AttributeValue) Segments() []string {
	if v.Kind == Class {
		return SplitClass(v.Raw)
	}
	return []string{v.Raw}
}

// SplitClass splits a WM_CLASS style "instance\x00class\x00" value.
func SplitClass(raw string) []string {
	parts := strings.Split(raw, "\x00")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
