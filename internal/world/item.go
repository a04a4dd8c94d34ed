package world

import (
	"fmt"
	"strings"
)

// Item is a game object that can be referred to by its display name or any
// of its aliases. Alias matching is case-insensitive.
type Item struct {
	name    string
	aliases []string
}

// NewItem creates an item with a display name and optional extra aliases.
// The display name itself is always an alias.
func NewItem(name string, aliases ...string) *Item {
	all := make([]string, 0, len(aliases)+1)
	all = append(all, strings.ToLower(name))
	for _, a := range aliases {
		all = append(all, strings.ToLower(a))
	}
	return &Item{name: name, aliases: all}
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Aliases returns the lowercased names the item answers to.
func (i *Item) Aliases() []string {
	out := make([]string, len(i.aliases))
	copy(out, i.aliases)
	return out
}

// Matches reports whether name refers to this item, ignoring case.
func (i *Item) Matches(name string) bool {
	name = strings.ToLower(name)
	for _, a := range i.aliases {
		if a == name {
			return true
		}
	}
	return false
}

// String returns the display name.
func (i *Item) String() string {
	return i.name
}

// GoString returns a debug representation listing all aliases.
func (i *Item) GoString() string {
	return fmt.Sprintf("Item(%s)", strings.Join(i.aliases, ", "))
}
