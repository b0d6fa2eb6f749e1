package clock

import (
	"testing"
	"time"

	_ "time/tzdata"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name       string
		h, m, s    int
		hour       float64
		minute     float64
		second     float64
		pm         bool
	}{
		{name: "three o'clock sharp", h: 3, hour: 90, minute: 0, second: 0},
		{name: "half past midnight", h: 0, m: 30, hour: 15, minute: 180},
		{name: "noon", h: 12, hour: 0, minute: 0, pm: true},
		{name: "quarter to ten pm", h: 21, m: 45, hour: 292.5, minute: 270, pm: true},
		{name: "seconds creep the minute hand", h: 6, m: 0, s: 30, hour: 180, minute: 3, second: 180, pm: false},
		{name: "last second of the day", h: 23, m: 59, s: 59, hour: float64(11)/12*360 + float64(59)/60*30, minute: float64(59)/60*360 + float64(59)/60*6, second: float64(59) / 60 * 360, pm: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.h, tt.m, tt.s)
			if got.Hour != tt.hour {
				t.Errorf("hour angle = %v, want %v", got.Hour, tt.hour)
			}
			if got.Minute != tt.minute {
				t.Errorf("minute angle = %v, want %v", got.Minute, tt.minute)
			}
			if got.Second != tt.second {
				t.Errorf("second angle = %v, want %v", got.Second, tt.second)
			}
			if got.PM != tt.pm {
				t.Errorf("PM = %v, want %v", got.PM, tt.pm)
			}
		})
	}
}

func TestMeridiem(t *testing.T) {
	if got := Meridiem(13); got != "PM" {
		t.Errorf("Meridiem(13) = %q, want PM", got)
	}
	if got := Meridiem(0); got != "AM" {
		t.Errorf("Meridiem(0) = %q, want AM", got)
	}
	if got := Meridiem(12); got != "PM" {
		t.Errorf("Meridiem(12) = %q, want PM", got)
	}
}

// fixedSource pins the clock for zone conversion tests.
type fixedSource struct {
	t time.Time
}

func (f fixedSource) Now() time.Time { return f.t }

func TestInZone(t *testing.T) {
	// 2026-01-15 12:00:00 UTC; winter, so no DST surprises.
	src := fixedSource{t: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}

	tests := []struct {
		tz      string
		h, m, s int
	}{
		{tz: "UTC", h: 12},
		{tz: "Asia/Tokyo", h: 21},
		{tz: "America/New_York", h: 7},
		{tz: "Asia/Kolkata", h: 17, m: 30},
		{tz: "Not/AZone", h: 12}, // unknown zones fall back to UTC
	}

	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			h, m, s := InZone(src, tt.tz)
			if h != tt.h || m != tt.m || s != tt.s {
				t.Errorf("InZone(%s) = %02d:%02d:%02d, want %02d:%02d:%02d",
					tt.tz, h, m, s, tt.h, tt.m, tt.s)
			}
		})
	}
}
