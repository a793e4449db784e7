package colors

// Default returns the default color scheme (purple accent on dark terminals)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		// Board
		BucketBorder:   "#5F87D7",
		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		GrabbedBorder:  "#FFD700",
		OverLimit:      "#FF5F5F",

		// Timeline
		Bar:          "#5F87D7",
		CriticalBar:  "#FF5F5F",
		ConflictMark: "#FFD700",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
