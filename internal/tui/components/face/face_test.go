package face

import (
	"strings"
	"testing"

	"github.com/hama/hamaclock/internal/config"
)

func TestRadiusClamps(t *testing.T) {
	tests := []struct {
		name      string
		clockSize int
		height    int
		want      int
	}{
		{"default size", 200, 0, 10},
		{"tiny size clamps up", 40, 0, 5},
		{"huge size clamps down", 1000, 0, 11},
		{"short terminal shrinks dial", 200, 20, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			cfg := config.Default()
			cfg.ClockSize = tt.clockSize
			f.SetConfig(cfg)
			f.Height = tt.height

			if got := f.radius(); got != tt.want {
				t.Errorf("radius() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadoutUsesTwelveHourTime(t *testing.T) {
	f := New()
	f.SetConfig(config.Default())

	tests := []struct {
		h, m, s int
		want    string
	}{
		{0, 5, 9, "12:05:09 AM"},
		{12, 0, 0, "12:00:00 PM"},
		{21, 45, 30, "09:45:30 PM"},
		{9, 0, 1, "09:00:01 AM"},
	}

	for _, tt := range tests {
		f.SetTime(tt.h, tt.m, tt.s)
		view := f.View()
		if !strings.Contains(view, tt.want) {
			t.Errorf("view for %02d:%02d:%02d missing %q", tt.h, tt.m, tt.s, tt.want)
		}
	}
}

func TestReadoutNamesActiveCity(t *testing.T) {
	f := New()
	f.SetConfig(config.Default()) // active slot is TYO

	view := f.View()
	if !strings.Contains(view, "Tokyo, Japan") {
		t.Error("view missing active city label")
	}
	if !strings.Contains(view, "Asia/Tokyo") {
		t.Error("view missing active zone name")
	}
}
