package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	home := t.TempDir()
	s := NewStore(home)

	s.Load()

	data, err := os.ReadFile(filepath.Join(home, "hama", "hama_clock", "config.json"))
	require.NoError(t, err, "load on an empty home should create the config file")

	var onDisk Config
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, Default(), onDisk, "initial file should hold the defaults")
	assert.Equal(t, Default(), s.Current())
	assert.False(t, s.Loaded(), "freshly created config counts as defaulted, not loaded")
}

func TestLoadMergesPartialFileOverDefaults(t *testing.T) {
	home := t.TempDir()
	s := NewStore(home)
	writeFile(t, s.Path(), `{"fontSize": 20}`)

	s.Load()

	got := s.Current()
	want := Default()
	want.FontSize = 20
	assert.Equal(t, want, got, "present fields override, absent fields keep defaults")
	assert.True(t, s.Loaded())
}

func TestLoadSlotsReplaceDefaultsWholesale(t *testing.T) {
	home := t.TempDir()
	s := NewStore(home)
	writeFile(t, s.Path(), `{"slots": [{"code": "PAR", "tz": "Europe/Paris"}]}`)

	s.Load()

	got := s.Current()
	require.Len(t, got.Slots, 1, "a slots array from disk replaces the default array")
	assert.Equal(t, Slot{Code: "PAR", TZ: "Europe/Paris"}, got.Slots[0])
}

func TestLoadInvalidJSONFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	s := NewStore(home)
	writeFile(t, s.Path(), `{not json at all`)

	s.Load()

	assert.Equal(t, Default(), s.Current())
	assert.False(t, s.Loaded())
}

func TestLoadNormalizesActiveSlot(t *testing.T) {
	tests := []struct {
		name string
		file string
		want int
	}{
		{
			name: "out of range after slots shrank",
			file: `{"activeSlot": 5, "slots": [{"code": "PAR", "tz": "Europe/Paris"}, {"code": "TYO", "tz": "Asia/Tokyo"}]}`,
			want: 0,
		},
		{
			name: "negative index",
			file: `{"activeSlot": -1}`,
			want: 0,
		},
		{
			name: "in range survives",
			file: `{"activeSlot": 2}`,
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(t.TempDir())
			writeFile(t, s.Path(), tt.file)
			s.Load()
			assert.Equal(t, tt.want, s.Current().ActiveSlot)
		})
	}
}

func TestLoadEmptySlotsRestoresDefaults(t *testing.T) {
	s := NewStore(t.TempDir())
	writeFile(t, s.Path(), `{"slots": [], "fontSize": 18}`)

	s.Load()

	got := s.Current()
	assert.Equal(t, Default().Slots, got.Slots, "empty slots normalize back to the default list")
	assert.Equal(t, 18, got.FontSize)
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	s := NewStore(home)
	s.Load()

	cfg := s.Current()
	cfg.ClockSize = 320
	cfg.ActiveSlot = 1
	cfg.Slots[1] = Slot{Code: "PAR", TZ: "Europe/Paris"}
	s.Save(cfg)

	assert.Equal(t, cfg, s.Current(), "in-memory state follows a successful save")

	reread := NewStore(home)
	reread.Load()
	assert.Equal(t, cfg, reread.Current(), "save then load round-trips")
}

func TestSaveRecreatesDeletedDirectory(t *testing.T) {
	home := t.TempDir()
	s := NewStore(home)
	s.Load()

	// Simulate the config directory being removed behind our back.
	require.NoError(t, os.RemoveAll(filepath.Dir(s.Path())))

	cfg := s.Current()
	cfg.FontSize = 22
	s.Save(cfg)

	assert.FileExists(t, s.Path(), "save should recreate the directory and retry")
	assert.Equal(t, cfg, s.Current())
}

func TestSaveRetryFailureKeepsStaleState(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission-based failure does not apply to root")
	}

	home := t.TempDir()
	s := NewStore(home)
	s.Load()
	before := s.Current()

	// Make the parent unwritable so both the write and the mkdir retry fail.
	parent := filepath.Dir(filepath.Dir(s.Path()))
	require.NoError(t, os.RemoveAll(filepath.Dir(s.Path())))
	require.NoError(t, os.Chmod(parent, 0o555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	cfg := before
	cfg.FontSize = 99
	s.Save(cfg)

	assert.Equal(t, before, s.Current(), "a fully failed save must not touch in-memory state")
}

func TestCurrentReturnsSnapshot(t *testing.T) {
	s := NewStore(t.TempDir())
	s.Load()

	got := s.Current()
	got.Slots[0] = Slot{Code: "XXX", TZ: "Nowhere/Nope"}

	assert.Equal(t, Default().Slots[0], s.Current().Slots[0], "mutating a snapshot must not reach the store")
}

func TestActiveFallsBackToFirstDefaultSlot(t *testing.T) {
	c := Config{Slots: []Slot{{Code: "PAR", TZ: "Europe/Paris"}}, ActiveSlot: 7}
	assert.Equal(t, Default().Slots[0], c.Active())

	c.ActiveSlot = 0
	assert.Equal(t, Slot{Code: "PAR", TZ: "Europe/Paris"}, c.Active())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
