package cmd

import (
	"testing"
	"time"
)

func TestDateFlag_Set(t *testing.T) {
	var d dateFlag
	if d.String() != "" {
		t.Errorf("unset flag String() = %q, want empty", d.String())
	}
	if err := d.Set("2026-03-15"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if d.String() != "2026-03-15" {
		t.Errorf("String() = %q, want 2026-03-15", d.String())
	}
	if d.Type() != "date" {
		t.Errorf("Type() = %q", d.Type())
	}
}

func TestDateFlag_SetInvalid(t *testing.T) {
	var d dateFlag
	for _, in := range []string{"", "15/03/2026", "2026-13-01", "yesterday"} {
		if err := d.Set(in); err == nil {
			t.Errorf("Set(%q) should fail", in)
		}
	}
}

func TestDateFlag_Apply(t *testing.T) {
	in := time.Date(2026, 10, 18, 21, 30, 5, 0, time.Local)

	var unset dateFlag
	if got := unset.Apply(in); !got.Equal(in) {
		t.Errorf("unset Apply changed time: %v", got)
	}

	var d dateFlag
	if err := d.Set("2026-01-02"); err != nil {
		t.Fatal(err)
	}
	got := d.Apply(in)
	want := time.Date(2026, 1, 2, 21, 30, 5, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}
