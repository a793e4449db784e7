package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		BucketBorder:   "#808080",
		CardBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		GrabbedBorder:  "#FFFFFF",
		OverLimit:      "#FFFFFF",

		Bar:          "#A8A8A8",
		CriticalBar:  "#FFFFFF",
		ConflictMark: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#444444",
		ErrorFg:   "#000000",
		ErrorBg:   "#FFFFFF",
	}
}
