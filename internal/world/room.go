// Package world provides the game-object collaborators handlers work with:
// rooms connected by declared directions, items with alias names, and bags
// that hold items. The matcher never inspects these types; they only appear
// as values game code passes around.
package world

import (
	"fmt"
	"sort"
	"strings"

	"fableshell/pkg/fabletypes"
)

// Directions is a registry of movement directions declared in
// forward/reverse pairs. Rooms may only be linked along declared directions.
type Directions struct {
	reverse map[string]string
}

// NewDirections returns a direction registry pre-declared with the
// conventional north/south and east/west pairs.
func NewDirections() *Directions {
	d := &Directions{reverse: make(map[string]string)}
	// Pre-declared pairs; errors impossible for these names.
	_ = d.Add("north", "south")
	_ = d.Add("east", "west")
	return d
}

// Add declares a new direction pair. Both names must be all lowercase and
// not already declared.
func (d *Directions) Add(forward, reverse string) error {
	for _, dir := range []string{forward, reverse} {
		if dir != strings.ToLower(dir) || dir == "" {
			return fmt.Errorf("%w: %q: directions must be all lowercase", fabletypes.ErrMalformedDirection, dir)
		}
		if _, exists := d.reverse[dir]; exists {
			return fmt.Errorf("%w: %q is already a direction", fabletypes.ErrDuplicateDirection, dir)
		}
	}
	d.reverse[forward] = reverse
	d.reverse[reverse] = forward
	return nil
}

// Reverse returns the opposite of a declared direction.
func (d *Directions) Reverse(dir string) (string, bool) {
	rev, ok := d.reverse[dir]
	return rev, ok
}

// Declared reports whether dir has been declared.
func (d *Directions) Declared(dir string) bool {
	_, ok := d.reverse[dir]
	return ok
}

// All returns the declared directions in sorted order.
func (d *Directions) All() []string {
	out := make([]string, 0, len(d.reverse))
	for dir := range d.reverse {
		out = append(out, dir)
	}
	sort.Strings(out)
	return out
}

// DefaultDirections is the direction registry rooms use unless constructed
// with an explicit one.
var DefaultDirections = NewDirections()

// Room is a location in the game world with a description and exits along
// declared directions.
type Room struct {
	description string
	directions  *Directions
	exits       map[string]*Room
	contents    *Bag
}

// NewRoom creates a room with the given description, using
// DefaultDirections for its exits.
func NewRoom(description string) *Room {
	return NewRoomWithDirections(description, DefaultDirections)
}

// NewRoomWithDirections creates a room bound to an explicit direction
// registry, useful for worlds with custom movement (up/down, in/out).
func NewRoomWithDirections(description string, dirs *Directions) *Room {
	return &Room{
		description: strings.TrimSpace(description),
		directions:  dirs,
		exits:       make(map[string]*Room),
		contents:    NewBag(),
	}
}

// Contents returns the bag of items lying in the room.
func (r *Room) Contents() *Bag {
	return r.contents
}

// Description returns the room's description text.
func (r *Room) Description() string {
	return r.description
}

// SetExit links to as the room in the given direction and links the reverse
// exit from to back to this room. The direction must be declared.
func (r *Room) SetExit(direction string, to *Room) error {
	rev, ok := r.directions.Reverse(direction)
	if !ok {
		return fmt.Errorf("%w: %q is not a direction you have declared", fabletypes.ErrUnknownDirection, direction)
	}
	r.exits[direction] = to
	to.exits[rev] = r
	return nil
}

// Exit returns the room in the given direction, or nil when the room has no
// exit that way. Asking about an undeclared direction is an error.
func (r *Room) Exit(direction string) (*Room, error) {
	if !r.directions.Declared(direction) {
		return nil, fmt.Errorf("%w: %q is not a direction", fabletypes.ErrUnknownDirection, direction)
	}
	return r.exits[direction], nil
}

// Exits returns the sorted list of directions with a linked room.
func (r *Room) Exits() []string {
	out := make([]string, 0, len(r.exits))
	for dir, to := range r.exits {
		if to != nil {
			out = append(out, dir)
		}
	}
	sort.Strings(out)
	return out
}

// String returns the room description.
func (r *Room) String() string {
	return r.description
}
