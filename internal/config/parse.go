package config

import (
	"strconv"
	"strings"
)

// Labels of the editable settings, in menu order.
const (
	FieldWidth          = "Width"
	FieldHeight         = "Height"
	FieldFallTime       = "Fall Time"
	FieldDropProjection = "Enable Drop Projection"
)

// Field is one editable key/value line of the settings menu.
type Field struct {
	Key   string
	Value string
}

// String formats the field as "Key: Value".
func (f Field) String() string {
	return f.Key + ": " + f.Value
}

// Fields returns the settings as menu fields.
func Fields(s Settings) []Field {
	return []Field{
		{Key: FieldWidth, Value: strconv.Itoa(s.Width)},
		{Key: FieldHeight, Value: strconv.Itoa(s.Height)},
		{Key: FieldFallTime, Value: strconv.Itoa(s.FallTime)},
		{Key: FieldDropProjection, Value: formatBool(s.DropProjection)},
	}
}

// ParseSettings applies raw menu fields on top of current.
// A value that does not parse, or is out of range, leaves that setting unchanged.
func ParseSettings(current Settings, fields []Field) Settings {
	for _, f := range fields {
		switch f.Key {
		case FieldWidth:
			if v, ok := ParseInt(f.Value); ok && v >= MinWidth {
				current.Width = v
			}
		case FieldHeight:
			if v, ok := ParseInt(f.Value); ok && v > 0 {
				current.Height = v
			}
		case FieldFallTime:
			if v, ok := ParseInt(f.Value); ok && v > 0 {
				current.FallTime = v
			}
		case FieldDropProjection:
			current.DropProjection = ParseBool(f.Value)
		}
	}
	return current
}

// ParseInt parses an unsigned integer leniently: surrounding whitespace and
// thousands separators are accepted ("  1,000 " is 1000). Signs are not.
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != ',' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseBool treats any text containing t, T, y or Y as true, so "True", "yes"
// and "y" enable a setting while "False" and "no" disable it.
func ParseBool(s string) bool {
	return strings.ContainsAny(s, "tTyY")
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
