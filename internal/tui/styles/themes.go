package styles

// NewHamaTheme creates the default theme: midnight blue with brass
// accents, the palette of an old station clock.
func NewHamaTheme() *Theme {
	return &Theme{
		Name:   "hama",
		IsDark: true,

		Primary:   ParseHex("#B08D57"), // Brass
		Secondary: ParseHex("#D4AF37"), // Old gold
		Accent:    ParseHex("#E8C872"), // Pale brass

		BgBase:      ParseHex("#101828"), // Midnight
		BgSubtle:    ParseHex("#1D2939"),
		BgHighlight: ParseHex("#344054"),

		FgBase:     ParseHex("#F2F4F7"),
		FgMuted:    ParseHex("#98A2B3"),
		FgSubtle:   ParseHex("#667085"),
		FgInverted: ParseHex("#101828"),

		Border:      ParseHex("#344054"),
		BorderFocus: ParseHex("#D4AF37"),

		Success: ParseHex("#12B76A"),
		Error:   ParseHex("#F04438"),
		Warning: ParseHex("#F79009"),
		Info:    ParseHex("#2E90FA"),
	}
}

// NewLightTheme creates a light alternative for pale terminals.
func NewLightTheme() *Theme {
	return &Theme{
		Name:   "light",
		IsDark: false,

		Primary:   ParseHex("#8A6D3B"),
		Secondary: ParseHex("#A67C00"),
		Accent:    ParseHex("#B8860B"),

		BgBase:      ParseHex("#FCFCFD"),
		BgSubtle:    ParseHex("#F2F4F7"),
		BgHighlight: ParseHex("#E4E7EC"),

		FgBase:     ParseHex("#101828"),
		FgMuted:    ParseHex("#475467"),
		FgSubtle:   ParseHex("#667085"),
		FgInverted: ParseHex("#FCFCFD"),

		Border:      ParseHex("#D0D5DD"),
		BorderFocus: ParseHex("#A67C00"),

		Success: ParseHex("#027A48"),
		Error:   ParseHex("#B42318"),
		Warning: ParseHex("#B54708"),
		Info:    ParseHex("#175CD3"),
	}
}
