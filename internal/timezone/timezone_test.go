package timezone

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		tz      string
		wantErr bool
	}{
		{
			name:    "UTC",
			tz:      "UTC",
			wantErr: false,
		},
		{
			name:    "empty string defaults to UTC",
			tz:      "",
			wantErr: false,
		},
		{
			name:    "America/New_York",
			tz:      "America/New_York",
			wantErr: false,
		},
		{
			name:    "Asia/Tokyo",
			tz:      "Asia/Tokyo",
			wantErr: false,
		},
		{
			name:    "invalid zone",
			tz:      "Night/City",
			wantErr: true,
		},
		{
			name:    "garbage",
			tz:      "not a zone",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Parse(tt.tz)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.tz, err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("Parse(%q) returned nil location without error", tt.tz)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("Europe/London") {
		t.Error("IsValid(Europe/London) = false, want true")
	}
	if IsValid("Invalid/Timezone") {
		t.Error("IsValid(Invalid/Timezone) = true, want false")
	}
}

func TestLocalHour(t *testing.T) {
	// 2026-03-10 is after the US DST switch, so New York is UTC-4.
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	ny := MustParse("America/New_York")
	if got := LocalHour(ny, now); got != 11 {
		t.Errorf("LocalHour(New_York) = %d, want 11", got)
	}
	if got := LocalHour(nil, now); got != 15 {
		t.Errorf("LocalHour(nil) = %d, want 15 (UTC fallback)", got)
	}
}

func TestDay(t *testing.T) {
	// Late evening in Tokyo is still the same UTC day key.
	now := time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC)
	if got := Day(now); got != "2026-01-05" {
		t.Errorf("Day() = %q, want 2026-01-05", got)
	}
	if got := DaysAgo(now, 7); got != "2025-12-29" {
		t.Errorf("DaysAgo(7) = %q, want 2025-12-29", got)
	}
}
