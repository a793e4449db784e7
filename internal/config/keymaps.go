package config

// KeyMappings defines all configurable key bindings of the interactive board
type KeyMappings struct {
	// Drag and drop
	Grab   string `yaml:"grab"` // grabs the selected card, or drops the grabbed one
	Cancel string `yaml:"cancel"`

	// Navigation
	PrevBucket string `yaml:"prev_bucket"`
	NextBucket string `yaml:"next_bucket"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`
	PrevLane   string `yaml:"prev_lane"`
	NextLane   string `yaml:"next_lane"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Grab:   " ",
		Cancel: "esc",

		PrevBucket: "h",
		NextBucket: "l",
		PrevItem:   "k",
		NextItem:   "j",
		PrevLane:   "K",
		NextLane:   "J",

		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Grab == "" {
		k.Grab = defaults.Grab
	}
	if k.Cancel == "" {
		k.Cancel = defaults.Cancel
	}
	if k.PrevBucket == "" {
		k.PrevBucket = defaults.PrevBucket
	}
	if k.NextBucket == "" {
		k.NextBucket = defaults.NextBucket
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.PrevLane == "" {
		k.PrevLane = defaults.PrevLane
	}
	if k.NextLane == "" {
		k.NextLane = defaults.NextLane
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
