// Package numerator provides export invoice auto-numbering.
// Numbers follow the pattern PREFIX/<n>/<FY> (e.g. EXP/HEM/004/24-25),
// sequenced per Indian fiscal year (April–March). The next number is
// derived by scanning the existing document numbers, so numbering is
// gap-tolerant: deleted or renumbered documents leave gaps. Collisions
// are not re-checked at save time (single-writer assumption).
package numerator

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g. "EXP/HEM")
	Prefix string

	// PadWidth is the minimum number width (default 3)
	PadWidth int
}

// DefaultConfig returns the standard export invoice configuration.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:   prefix,
		PadWidth: 3,
	}
}

// FiscalYear returns the Indian fiscal year label for a date,
// in "YY-YY" form: April 2024 … March 2025 → "24-25".
func FiscalYear(t time.Time) string {
	year := t.Year() % 100
	if t.Month() >= time.April {
		return fmt.Sprintf("%02d-%02d", year, (year+1)%100)
	}
	return fmt.Sprintf("%02d-%02d", (year+99)%100, year)
}

// Format builds the full invoice number for a sequence value.
func Format(cfg Config, num int, fiscalYear string) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 3
	}
	return fmt.Sprintf("%s/%0*d/%s", cfg.Prefix, padWidth, num, fiscalYear)
}

// Parse extracts the numeric component from a formatted number, provided
// its prefix and fiscal year match. Returns false for any other shape.
func Parse(cfg Config, number, fiscalYear string) (int, bool) {
	prefix := cfg.Prefix + "/"
	suffix := "/" + fiscalYear
	if !strings.HasPrefix(number, prefix) || !strings.HasSuffix(number, suffix) {
		return 0, false
	}
	mid := number[len(prefix) : len(number)-len(suffix)]
	if mid == "" || strings.Contains(mid, "/") {
		return 0, false
	}
	n, err := strconv.Atoi(mid)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// NextNumber returns the next invoice number for a fiscal year given the
// numbers already in use. Numbers from other fiscal years or with foreign
// shapes are ignored. The result is strictly greater than every matching
// existing number.
func NextNumber(cfg Config, existing []string, fiscalYear string) string {
	max := 0
	for _, number := range existing {
		if n, ok := Parse(cfg, number, fiscalYear); ok && n > max {
			max = n
		}
	}
	return Format(cfg, max+1, fiscalYear)
}
