package config

import "encoding/json"

// Slot is one city assignment on the clock. Identity is positional:
// two slots may carry the same timezone.
type Slot struct {
	Code string `json:"code"`
	TZ   string `json:"tz"`
}

// Config is the persisted clock configuration.
type Config struct {
	// ClockSize and FontSize are kept in pixels, the unit the config
	// file has always used. The renderer maps them to cell budgets.
	ClockSize int `json:"clockSize"`
	FontSize  int `json:"fontSize"`

	Slots      []Slot `json:"slots"`
	ActiveSlot int    `json:"activeSlot"`
}

// Default returns the built-in configuration used when no file exists
// or the file cannot be read.
func Default() Config {
	return Config{
		ClockSize: 200,
		FontSize:  14,
		Slots: []Slot{
			{Code: "TYO", TZ: "Asia/Tokyo"},
			{Code: "LON", TZ: "Europe/London"},
			{Code: "NYC", TZ: "America/New_York"},
		},
		ActiveSlot: 0,
	}
}

// Clone returns a copy that shares no slot storage with the receiver.
func (c Config) Clone() Config {
	out := c
	out.Slots = make([]Slot, len(c.Slots))
	copy(out.Slots, c.Slots)
	return out
}

// overlay mirrors Config with pointer fields so merge can tell "absent
// from the file" apart from a zero value.
type overlay struct {
	ClockSize  *int    `json:"clockSize"`
	FontSize   *int    `json:"fontSize"`
	Slots      *[]Slot `json:"slots"`
	ActiveSlot *int    `json:"activeSlot"`
}

// merge shallow-merges the JSON document in data over base. A field
// present in the document replaces the base value wholesale; a present
// slots array replaces the base array rather than merging per element.
func merge(base Config, data []byte) (Config, error) {
	var o overlay
	if err := json.Unmarshal(data, &o); err != nil {
		return base, err
	}
	if o.ClockSize != nil {
		base.ClockSize = *o.ClockSize
	}
	if o.FontSize != nil {
		base.FontSize = *o.FontSize
	}
	if o.Slots != nil {
		base.Slots = *o.Slots
	}
	if o.ActiveSlot != nil {
		base.ActiveSlot = *o.ActiveSlot
	}
	return base, nil
}

// normalize makes a merged config safe for every downstream consumer:
// slots are never empty and ActiveSlot always indexes into them. This
// runs once after load so use sites need no fallback expressions.
func (c *Config) normalize() {
	if len(c.Slots) == 0 {
		c.Slots = Default().Slots
	}
	if c.ActiveSlot < 0 || c.ActiveSlot >= len(c.Slots) {
		c.ActiveSlot = 0
	}
}

// Active returns the slot the clock face is currently showing.
func (c Config) Active() Slot {
	if c.ActiveSlot < 0 || c.ActiveSlot >= len(c.Slots) {
		return Default().Slots[0]
	}
	return c.Slots[c.ActiveSlot]
}
