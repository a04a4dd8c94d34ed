package world

import (
	"math/rand/v2"
	"sort"
)

// Bag is an unordered collection of Items, such as an inventory or the
// contents of a room. Lookups by name go through Item.Matches, so any alias
// finds the item.
type Bag struct {
	items map[*Item]struct{}
}

// NewBag creates a bag holding the given items.
func NewBag(items ...*Item) *Bag {
	b := &Bag{items: make(map[*Item]struct{}, len(items))}
	for _, it := range items {
		b.items[it] = struct{}{}
	}
	return b
}

// Add puts an item in the bag.
func (b *Bag) Add(item *Item) {
	b.items[item] = struct{}{}
}

// Remove takes a specific item out of the bag, reporting whether it was
// present.
func (b *Bag) Remove(item *Item) bool {
	if _, ok := b.items[item]; !ok {
		return false
	}
	delete(b.items, item)
	return true
}

// Len returns the number of items in the bag.
func (b *Bag) Len() int {
	return len(b.items)
}

// Contains reports whether the specific item is in the bag.
func (b *Bag) Contains(item *Item) bool {
	_, ok := b.items[item]
	return ok
}

// ContainsName reports whether any item in the bag answers to name.
func (b *Bag) ContainsName(name string) bool {
	return b.Find(name) != nil
}

// Find returns an item in the bag matching name without removing it, or nil
// when nothing matches. If several items match, one of them is returned.
func (b *Bag) Find(name string) *Item {
	for it := range b.items {
		if it.Matches(name) {
			return it
		}
	}
	return nil
}

// Take removes and returns an item matching name, or nil when nothing
// matches.
func (b *Bag) Take(name string) *Item {
	it := b.Find(name)
	if it != nil {
		delete(b.items, it)
	}
	return it
}

// Random returns a uniformly chosen item without removing it, or nil when
// the bag is empty.
func (b *Bag) Random() *Item {
	if len(b.items) == 0 {
		return nil
	}
	which := rand.IntN(len(b.items))
	for it := range b.items {
		if which == 0 {
			return it
		}
		which--
	}
	return nil
}

// TakeRandom removes and returns a uniformly chosen item, or nil when the
// bag is empty.
func (b *Bag) TakeRandom() *Item {
	it := b.Random()
	if it != nil {
		delete(b.items, it)
	}
	return it
}

// Items returns a snapshot of the bag's contents, sorted by display name
// for stable iteration.
func (b *Bag) Items() []*Item {
	out := make([]*Item, 0, len(b.items))
	for it := range b.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
