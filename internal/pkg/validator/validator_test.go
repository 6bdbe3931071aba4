package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-05", "2024-02-29", "2025-12-31"}
	invalid := []string{"2025-13-05", "05-01-2025", "2025/01/05", "2025-01-5", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"09:00", "09:00:00", "23:59", "00:00:59"}
	invalid := []string{"9:00", "09:0", "09-00", "09:00:00:00", "", "0900"}
	for _, c := range valid {
		if !IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = true, want false", c)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"work", "day_off"}
	if !IsInSlice("work", slice) {
		t.Error("IsInSlice(work) = false, want true")
	}
	if IsInSlice("holiday", slice) {
		t.Error("IsInSlice(holiday) = true, want false")
	}
}
