package numerator

import (
	"testing"
	"time"
)

func TestFiscalYear(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), "24-25"},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), "24-25"},
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "24-25"},
		{time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), "24-25"},
		{time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), "25-26"},
		{time.Date(2099, time.June, 1, 0, 0, 0, 0, time.UTC), "99-00"},
		{time.Date(2100, time.February, 1, 0, 0, 0, 0, time.UTC), "99-00"},
	}

	for _, tc := range cases {
		if got := FiscalYear(tc.date); got != tc.want {
			t.Errorf("FiscalYear(%s) = %s, want %s", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestNextNumber(t *testing.T) {
	cfg := DefaultConfig("EXP/HEM")

	existing := []string{"EXP/HEM/001/24-25", "EXP/HEM/003/24-25"}
	if got := NextNumber(cfg, existing, "24-25"); got != "EXP/HEM/004/24-25" {
		t.Errorf("expected EXP/HEM/004/24-25, got %s", got)
	}

	// Empty history starts at 001.
	if got := NextNumber(cfg, nil, "25-26"); got != "EXP/HEM/001/25-26" {
		t.Errorf("expected EXP/HEM/001/25-26, got %s", got)
	}

	// Numbers from other fiscal years are ignored.
	existing = []string{"EXP/HEM/009/23-24", "EXP/HEM/002/24-25"}
	if got := NextNumber(cfg, existing, "24-25"); got != "EXP/HEM/003/24-25" {
		t.Errorf("expected EXP/HEM/003/24-25, got %s", got)
	}

	// Foreign shapes are ignored, not mis-parsed.
	existing = []string{"PI/005/24-25", "EXP/HEM/abc/24-25", "EXP/HEM/7/24-25"}
	if got := NextNumber(cfg, existing, "24-25"); got != "EXP/HEM/008/24-25" {
		t.Errorf("expected EXP/HEM/008/24-25, got %s", got)
	}
}

func TestParse(t *testing.T) {
	cfg := DefaultConfig("EXP/HEM")

	n, ok := Parse(cfg, "EXP/HEM/042/24-25", "24-25")
	if !ok || n != 42 {
		t.Errorf("expected (42, true), got (%d, %v)", n, ok)
	}

	for _, bad := range []string{
		"EXP/HEM/042/23-24", // wrong fiscal year
		"EXP/XYZ/042/24-25", // wrong prefix
		"EXP/HEM//24-25",    // empty numeric part
		"EXP/HEM/1/2/24-25", // extra segment
		"",
	} {
		if _, ok := Parse(cfg, bad, "24-25"); ok {
			t.Errorf("Parse(%q) should fail", bad)
		}
	}
}

func TestFormatPadding(t *testing.T) {
	cfg := DefaultConfig("EXP/HEM")

	if got := Format(cfg, 7, "24-25"); got != "EXP/HEM/007/24-25" {
		t.Errorf("expected EXP/HEM/007/24-25, got %s", got)
	}
	if got := Format(cfg, 1234, "24-25"); got != "EXP/HEM/1234/24-25" {
		t.Errorf("expected EXP/HEM/1234/24-25, got %s", got)
	}
}
