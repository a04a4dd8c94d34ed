package main

import (
	"fmt"
	"strings"

	"fableshell/internal/game"
	"fableshell/internal/world"
	"fableshell/pkg/fabletypes"
)

// demoAdventure is the state of the bundled sample game: a meadow, a cave
// and a small shop that demonstrates context scoping.
type demoAdventure struct {
	g         *game.Game
	current   *world.Room
	inventory *world.Bag
	shop      *world.Room
}

// buildDemoAdventure wires the sample world and its commands into g.
func buildDemoAdventure(g *game.Game) error {
	meadow := world.NewRoom(`
		You stand in a sunlit meadow. Wildflowers nod in the breeze and a
		worn path leads north toward the dark mouth of a cave. To the east
		you can see a tiny shop.
	`)
	cave := world.NewRoom(`
		The cave is cool and smells of wet stone. Something glitters on the
		floor.
	`)
	shop := world.NewRoom(`
		Shelves crowd every wall of the tiny shop. The shopkeeper eyes you
		expectantly.
	`)
	if err := meadow.SetExit("north", cave); err != nil {
		return err
	}
	if err := meadow.SetExit("east", shop); err != nil {
		return err
	}

	cave.Contents().Add(world.NewItem("a glittering gem", "gem"))
	meadow.Contents().Add(world.NewItem("a wildflower", "flower", "wildflower"))

	d := &demoAdventure{
		g:         g,
		current:   meadow,
		inventory: world.NewBag(),
		shop:      shop,
	}

	commands := []game.Command{
		{Template: "look", Handler: d.look},
		{Template: "go DIRECTION", Params: []string{"direction"}, Handler: d.move},
		{Template: "take ITEM", Params: []string{"item"}, Handler: d.take},
		{Template: "drop ITEM", Params: []string{"item"}, Handler: d.drop},
		{Template: "inventory", Handler: d.showInventory},
		{Template: "i", Handler: d.showInventory},

		// Only available inside the shop.
		{Template: "buy THING", Context: "shop", Params: []string{"thing"}, Handler: d.buy},
		{Template: "leave", Context: "shop", Handler: d.leave},

		// Fixed keywords supply arguments the input does not carry.
		{Template: "shout WORDS", Params: []string{"words", "volume"},
			Fixed: fabletypes.Args{"volume": "loudly"}, Handler: d.shout},
	}
	for _, cmd := range commands {
		if err := g.Register(cmd); err != nil {
			return err
		}
	}

	g.Say(`
		Welcome to the FableShell demo adventure. Type 'help' or '?' for a
		list of commands, and 'quit' to leave.
	`)
	d.look(nil)
	return nil
}

func (d *demoAdventure) look(fabletypes.Args) {
	d.g.Say(d.current.Description())
	for _, item := range d.current.Contents().Items() {
		d.g.Say(fmt.Sprintf("You see %s here.", item))
	}
	if exits := d.current.Exits(); len(exits) > 0 {
		d.g.Printer().Printf("Exits: %s\n", strings.Join(exits, ", "))
	}
}

func (d *demoAdventure) move(args fabletypes.Args) {
	dir := args.Get("direction")
	next, err := d.current.Exit(dir)
	if err != nil {
		d.g.Say(fmt.Sprintf("'%s' is not a direction here.", dir))
		return
	}
	if next == nil {
		d.g.Say("You can't go that way.")
		return
	}
	d.current = next
	if next == d.shop {
		d.g.SetContext("shop")
	} else {
		d.g.SetContext("")
	}
	d.look(nil)
}

func (d *demoAdventure) take(args fabletypes.Args) {
	name := args.Get("item")
	item := d.current.Contents().Take(name)
	if item == nil {
		d.g.Say(fmt.Sprintf("There is no %s here.", name))
		return
	}
	d.inventory.Add(item)
	d.g.Say(fmt.Sprintf("You take %s.", item))
}

func (d *demoAdventure) drop(args fabletypes.Args) {
	name := args.Get("item")
	item := d.inventory.Take(name)
	if item == nil {
		d.g.Say(fmt.Sprintf("You don't have %s.", name))
		return
	}
	d.current.Contents().Add(item)
	d.g.Say(fmt.Sprintf("You drop %s.", item))
}

func (d *demoAdventure) showInventory(fabletypes.Args) {
	if d.inventory.Len() == 0 {
		d.g.Say("You are carrying nothing.")
		return
	}
	d.g.Say("You are carrying:")
	for _, item := range d.inventory.Items() {
		d.g.Printer().Println("  " + item.Name())
	}
}

func (d *demoAdventure) buy(args fabletypes.Args) {
	thing := args.Get("thing")
	d.g.Say(fmt.Sprintf("The shopkeeper wraps up %s and waves you goodbye.", thing))
	d.inventory.Add(world.NewItem(thing))
}

func (d *demoAdventure) leave(fabletypes.Args) {
	d.move(fabletypes.Args{"direction": "west"})
}

func (d *demoAdventure) shout(args fabletypes.Args) {
	d.g.Say(fmt.Sprintf("You shout '%s' %s. The echo dies away.",
		args.Get("words"), args.Get("volume")))
}
