package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (titles, selection, today marker)
	Accent string `yaml:"accent"`

	// Board elements
	BucketBorder   string `yaml:"bucket_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	GrabbedBorder  string `yaml:"grabbed_border"`
	OverLimit      string `yaml:"over_limit"` // WIP limit exceeded

	// Timeline bars
	Bar          string `yaml:"bar"`
	CriticalBar  string `yaml:"critical_bar"`
	ConflictMark string `yaml:"conflict_mark"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // weekends, out-of-month days, hints
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name, falling back to Default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.BucketBorder, preset.BucketBorder)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.GrabbedBorder, preset.GrabbedBorder)
	fill(&c.OverLimit, preset.OverLimit)
	fill(&c.Bar, preset.Bar)
	fill(&c.CriticalBar, preset.CriticalBar)
	fill(&c.ConflictMark, preset.ConflictMark)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom overrides the fields that other sets
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.BucketBorder, other.BucketBorder)
	merge(&c.CardBorder, other.CardBorder)
	merge(&c.SelectedBorder, other.SelectedBorder)
	merge(&c.GrabbedBorder, other.GrabbedBorder)
	merge(&c.OverLimit, other.OverLimit)
	merge(&c.Bar, other.Bar)
	merge(&c.CriticalBar, other.CriticalBar)
	merge(&c.ConflictMark, other.ConflictMark)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.WarningFg, other.WarningFg)
	merge(&c.WarningBg, other.WarningBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
}
