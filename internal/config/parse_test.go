package config

import "testing"

func TestParseInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"10", 10, true},
		{"  42  ", 42, true},
		{"1,000", 1000, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{",5", 0, false},
		{"5.5", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseInt(tc.input)
		if ok != tc.ok || got != tc.expected {
			t.Errorf("ParseInt(%q) = (%d, %v), expected (%d, %v)", tc.input, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"True", "true", "yes", "Y", "t"} {
		if !ParseBool(s) {
			t.Errorf("ParseBool(%q) should be true", s)
		}
	}
	for _, s := range []string{"False", "no", "0", ""} {
		if ParseBool(s) {
			t.Errorf("ParseBool(%q) should be false", s)
		}
	}
}

func TestParseSettingsKeepsPriorOnFailure(t *testing.T) {
	current := DefaultSettings()
	fields := []Field{
		{Key: FieldWidth, Value: "wide"},
		{Key: FieldHeight, Value: "0"},
		{Key: FieldFallTime, Value: " 1,200 "},
		{Key: FieldDropProjection, Value: "no"},
	}

	got := ParseSettings(current, fields)

	expected := Settings{Width: 10, Height: 20, FallTime: 1200, DropProjection: false}
	if got != expected {
		t.Errorf("ParseSettings = %+v, expected %+v", got, expected)
	}
}

func TestParseSettingsRejectsNarrowBoard(t *testing.T) {
	got := ParseSettings(DefaultSettings(), []Field{{Key: FieldWidth, Value: "3"}})
	if got.Width != 10 {
		t.Errorf("Width = %d, expected narrow board to be rejected", got.Width)
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	s := Settings{Width: 12, Height: 18, FallTime: 400, DropProjection: true}

	fields := Fields(s)
	if len(fields) != 4 {
		t.Fatalf("Fields() length = %d, expected 4", len(fields))
	}
	if fields[0].String() != "Width: 12" {
		t.Errorf("fields[0] = %q, expected %q", fields[0].String(), "Width: 12")
	}

	if got := ParseSettings(DefaultSettings(), fields); got != s {
		t.Errorf("ParseSettings(Fields(s)) = %+v, expected %+v", got, s)
	}
}
