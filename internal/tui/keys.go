package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/boardview/internal/config"
)

// KeyMap holds the bindings of the board
type KeyMap struct {
	Grab       key.Binding
	Cancel     key.Binding
	PrevBucket key.Binding
	NextBucket key.Binding
	PrevItem   key.Binding
	NextItem   key.Binding
	PrevLane   key.Binding
	NextLane   key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// NewKeyMap builds bindings from the configured keys. Arrow keys always
// work alongside them.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Grab:       key.NewBinding(key.WithKeys(km.Grab, "enter"), key.WithHelp(displayKey(km.Grab), "grab/drop")),
		Cancel:     key.NewBinding(key.WithKeys(km.Cancel), key.WithHelp(km.Cancel, "cancel drag")),
		PrevBucket: key.NewBinding(key.WithKeys(km.PrevBucket, "left"), key.WithHelp("←/"+km.PrevBucket, "prev bucket")),
		NextBucket: key.NewBinding(key.WithKeys(km.NextBucket, "right"), key.WithHelp("→/"+km.NextBucket, "next bucket")),
		PrevItem:   key.NewBinding(key.WithKeys(km.PrevItem, "up"), key.WithHelp("↑/"+km.PrevItem, "prev item")),
		NextItem:   key.NewBinding(key.WithKeys(km.NextItem, "down"), key.WithHelp("↓/"+km.NextItem, "next item")),
		PrevLane:   key.NewBinding(key.WithKeys(km.PrevLane), key.WithHelp(km.PrevLane, "prev lane")),
		NextLane:   key.NewBinding(key.WithKeys(km.NextLane), key.WithHelp(km.NextLane, "next lane")),
		Refresh:    key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		Help:       key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:       key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Cancel, k.NextBucket, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Grab, k.Cancel},
		{k.PrevBucket, k.NextBucket, k.PrevItem, k.NextItem},
		{k.PrevLane, k.NextLane},
		{k.Refresh, k.Help, k.Quit},
	}
}
