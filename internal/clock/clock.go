// Package clock projects wall-clock time in a timezone onto analog
// hand angles. It owns no state beyond a location cache.
package clock

import (
	"sync"
	"time"
)

// Source is the capability interface for anything that needs the
// current time. Components depend on it so tests can pin the clock.
type Source interface {
	Now() time.Time
}

// SystemSource reads the real system clock.
type SystemSource struct{}

func (SystemSource) Now() time.Time { return time.Now() }

var (
	locMu sync.Mutex
	locs  = map[string]*time.Location{}
)

// location resolves an IANA zone name, caching the result. An unknown
// zone falls back to UTC so the face always has something to show.
func location(tz string) *time.Location {
	locMu.Lock()
	defer locMu.Unlock()
	if loc, ok := locs[tz]; ok {
		return loc
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	locs[tz] = loc
	return loc
}

// InZone returns the current 24-hour wall-clock components in tz.
func InZone(src Source, tz string) (h, m, s int) {
	t := src.Now().In(location(tz))
	return t.Hour(), t.Minute(), t.Second()
}

// Hands holds the three hand angles in degrees, clockwise from 12.
type Hands struct {
	Hour   float64
	Minute float64
	Second float64
	PM     bool
}

// Project computes hand angles for a wall-clock reading. The minute
// hand creeps with the seconds and the hour hand with the minutes, the
// way a real movement does.
func Project(h, m, s int) Hands {
	return Hands{
		Second: float64(s) / 60 * 360,
		Minute: float64(m)/60*360 + float64(s)/60*6,
		Hour:   float64(h%12)/12*360 + float64(m)/60*30,
		PM:     h >= 12,
	}
}

// Meridiem returns the "AM"/"PM" readout label for an hour.
func Meridiem(h int) string {
	if h >= 12 {
		return "PM"
	}
	return "AM"
}
