package analysis

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	got := ParseTimestamp("2024-03-01T12:30:00Z")
	if got == nil {
		t.Fatal("expected a timestamp, got nil")
	}
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseTimestamp = %v, want %v", got, want)
	}

	// Zone offsets normalize to UTC.
	offset := ParseTimestamp("2024-03-01T12:30:00+05:30")
	if offset == nil {
		t.Fatal("offset timestamp should parse")
	}
	if offset.Location() != time.UTC {
		t.Errorf("timestamp not normalized to UTC: %v", offset)
	}
	if offset.Hour() != 7 {
		t.Errorf("offset not applied: hour = %d, want 7", offset.Hour())
	}

	for _, bad := range []string{"", "yesterday", "2024-03-01", "2024-13-45T00:00:00Z"} {
		if got := ParseTimestamp(bad); got != nil {
			t.Errorf("ParseTimestamp(%q) = %v, want nil", bad, got)
		}
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"12345", 12345},
		{"0", 0},
		{" 42 ", 42},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"12.5", 0},
	}
	for _, tt := range tests {
		if got := ParseCount(tt.in); got != tt.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestExtractChannelIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"channel url", "https://www.youtube.com/channel/UCabcdefghijklmnopqrstuv", "UCabcdefghijklmnopqrstuv"},
		{"channel url no scheme", "youtube.com/channel/UCabcdefghijklmnopqrstuv", "UCabcdefghijklmnopqrstuv"},
		{"custom url", "https://www.youtube.com/c/SomeChannel", "SomeChannel"},
		{"legacy user url", "https://youtube.com/user/olduser", "olduser"},
		{"handle url", "https://www.youtube.com/@cooking.daily", "@cooking.daily"},
		{"bare handle", "@cookingdaily", "@cookingdaily"},
		{"bare channel id", "UCabcdefghijklmnopqrstuv", "UCabcdefghijklmnopqrstuv"},
		{"free text passthrough", "cooking daily", "cooking daily"},
		{"whitespace trimmed", "  @cookingdaily  ", "@cookingdaily"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractChannelIdentifier(tt.in); got != tt.want {
				t.Errorf("ExtractChannelIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
