package cities

import (
	"testing"
	"time"

	_ "time/tzdata"
)

func TestCatalogShape(t *testing.T) {
	all := All()
	if len(all) != 25 {
		t.Fatalf("catalog has %d cities, want 25", len(all))
	}

	seen := map[string]bool{}
	zones := map[string]int{}
	for _, c := range all {
		if c.Code == "" || c.TZ == "" || c.Name == "" || c.Country == "" {
			t.Errorf("incomplete entry: %+v", c)
		}
		if seen[c.Code] {
			t.Errorf("duplicate code %q", c.Code)
		}
		seen[c.Code] = true
		zones[c.TZ]++

		if _, err := time.LoadLocation(c.TZ); err != nil {
			t.Errorf("zone %q for %s does not load: %v", c.TZ, c.Code, err)
		}
	}

	// Rio and Sao Paulo intentionally share a zone; no other zone repeats.
	shared := 0
	for tz, n := range zones {
		switch {
		case n == 2 && tz == "America/Sao_Paulo":
			shared++
		case n > 1:
			t.Errorf("zone %q unexpectedly shared by %d cities", tz, n)
		}
	}
	if shared != 1 {
		t.Errorf("expected exactly one shared zone (America/Sao_Paulo), got %d", shared)
	}
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("PAR")
	if !ok {
		t.Fatal("PAR should be in the catalog")
	}
	if c.TZ != "Europe/Paris" {
		t.Errorf("PAR zone = %q, want Europe/Paris", c.TZ)
	}
	if got := c.Label(); got != "Paris, France" {
		t.Errorf("Label() = %q", got)
	}

	if _, ok := Lookup("???"); ok {
		t.Error("unknown code should not resolve")
	}
}
