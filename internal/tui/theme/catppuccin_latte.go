package theme

// NewCatppuccinLatte creates the light Catppuccin Latte theme.
func NewCatppuccinLatte() *Theme {
	return &Theme{
		Name:   Light,
		IsDark: false,

		Primary:   "#8839ef", // Mauve
		Secondary: "#7287fd", // Lavender
		Tertiary:  "#1e66f5", // Blue

		BgBase:     "#eff1f5",
		BgMantle:   "#e6e9ef",
		BgSurface0: "#ccd0da",
		BgSurface1: "#bcc0cc",
		BgOverlay:  "#9ca0b0",

		FgMuted:  "#6c6f85", // Subtext0
		FgSubtle: "#5c5f77", // Subtext1
		FgBase:   "#4c4f69", // Text

		Success: "#40a02b",
		Warning: "#df8e1d",
		Error:   "#d20f39",
		Info:    "#04a5e5",
	}
}
