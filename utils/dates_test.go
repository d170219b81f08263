package utils

import (
	"testing"
	"time"
)

func TestNights(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse(DateLayout, s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return d
	}

	cases := []struct {
		in, out string
		want    int
	}{
		{"2025-12-24", "2025-12-26", 2},
		{"2025-12-24", "2025-12-25", 1},
		{"2025-12-24", "2025-12-24", 1}, // cùng ngày vẫn tính 1 đêm
		{"2025-12-26", "2025-12-24", 1}, // đảo ngày cũng không âm
	}
	for _, c := range cases {
		if got := Nights(day(c.in), day(c.out)); got != c.want {
			t.Errorf("Nights(%s, %s) = %d, want %d", c.in, c.out, got, c.want)
		}
	}
}
