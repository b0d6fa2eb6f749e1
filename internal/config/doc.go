// Package config is the single source of truth for the persisted clock
// configuration.
//
// The configuration is one JSON document at a fixed path under the
// user's home directory:
//
//	~/hama/hama_clock/config.json
//
// with a flat schema:
//
//	{
//	  "clockSize": 200,
//	  "fontSize": 14,
//	  "slots": [{"code": "TYO", "tz": "Asia/Tokyo"}, ...],
//	  "activeSlot": 0
//	}
//
// Reading is forgiving by design: a missing file is created from the
// built-in defaults, a partial file is shallow-merged over the defaults
// (a field present in the file wholly replaces the default value, so a
// slots array from disk is never element-merged), and an unreadable or
// unparseable file falls back to the defaults. No read error ever
// escapes the store; the clock must always have a usable configuration
// to render from.
//
// Writing is best-effort: a failed write gets exactly one retry after
// recreating the config directory, and a failed retry is logged and
// abandoned, leaving the in-memory state stale. Callers are never
// handed a config error to display.
//
// Example usage:
//
//	store := config.NewStore(homeDir)
//	store.Load()
//
//	cfg := store.Current()
//	cfg.ActiveSlot = 2
//	store.Save(cfg)
package config
