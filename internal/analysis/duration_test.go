package analysis

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"zero", "PT0S", 0},
		{"seconds only", "PT45S", 45},
		{"minutes and seconds", "PT1M30S", 90},
		{"hours minutes seconds", "PT1H2M3S", 3723},
		{"day and time", "P1DT2H", 93600},
		{"week", "P1W", 604800},
		{"month approximation", "P1M", 2592000},
		{"year approximation", "P1Y", 31536000},
		{"all components", "P1Y2M3DT4H5M6S", 31536000 + 2*2592000 + 3*86400 + 4*3600 + 5*60 + 6},
		{"fractional seconds floored", "PT2.5S", 2},
		{"fraction sums before floor", "PT1M0.9S", 60},
		{"garbage", "not a duration", 0},
		{"missing prefix", "T1H", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration(tt.in); got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
