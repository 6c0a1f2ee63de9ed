package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatLocation - склейка частей адреса и заглушка
func TestFormatLocation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		area, district string
		want           string
	}{
		{"Mirpur", "Dhaka", "Mirpur, Dhaka"},
		{"Mirpur", "", "Mirpur"},
		{"", "Dhaka", "Dhaka"},
		{"", "", "Not specified"},
		{"  ", "  ", "Not specified"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, formatLocation(c.area, c.district), "area=%q district=%q", c.area, c.district)
	}
}

// TestParseBudget - разбор суммы из свободной строки
func TestParseBudget(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want *int
	}{
		{"5000", intPtr(5000)},
		{"5000/day", intPtr(5000)},
		{" 1200 taka ", intPtr(1200)},
		{"negotiable", nil},
		{"", nil},
		{"tk 500", nil}, // цифры не в начале строки не считаются
	}

	for _, c := range cases {
		got := parseBudget(c.raw)
		if c.want == nil {
			assert.Nil(t, got, "raw=%q", c.raw)
			continue
		}
		if assert.NotNil(t, got, "raw=%q", c.raw) {
			assert.Equal(t, *c.want, *got, "raw=%q", c.raw)
		}
	}
}

func intPtr(n int) *int { return &n }
