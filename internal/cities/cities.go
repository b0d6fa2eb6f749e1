// Package cities holds the static, read-only city directory the picker
// offers. It is a lookup table, not persisted state: slots in the
// configuration reference cities by code.
package cities

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// City is one directory entry.
type City struct {
	Code    string `yaml:"code"`
	TZ      string `yaml:"tz"`
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
}

var (
	catalog []City
	byCode  map[string]City
)

func init() {
	if err := yaml.Unmarshal(rawCatalog, &catalog); err != nil {
		// The catalog is compiled in; failing to parse it is a build defect.
		panic(fmt.Sprintf("cities: embedded catalog is invalid: %v", err))
	}
	byCode = make(map[string]City, len(catalog))
	for _, c := range catalog {
		byCode[c.Code] = c
	}
}

// All returns the catalog in display order.
func All() []City {
	out := make([]City, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a city by its code.
func Lookup(code string) (City, bool) {
	c, ok := byCode[code]
	return c, ok
}

// Label returns the human-readable form used in lists and readouts.
func (c City) Label() string {
	return fmt.Sprintf("%s, %s", c.Name, c.Country)
}
