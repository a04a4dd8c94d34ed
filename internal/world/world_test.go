package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fableshell/pkg/fabletypes"
)

func TestDirections_Add(t *testing.T) {
	dirs := NewDirections()

	require.NoError(t, dirs.Add("up", "down"))
	assert.True(t, dirs.Declared("up"))
	rev, ok := dirs.Reverse("down")
	require.True(t, ok)
	assert.Equal(t, "up", rev)

	err := dirs.Add("Up", "down")
	assert.ErrorIs(t, err, fabletypes.ErrMalformedDirection)

	err = dirs.Add("north", "somewhere")
	assert.ErrorIs(t, err, fabletypes.ErrDuplicateDirection)
}

func TestRoom_Exits(t *testing.T) {
	dirs := NewDirections()
	hall := NewRoomWithDirections("A dusty hall.", dirs)
	cellar := NewRoomWithDirections("A dark cellar.", dirs)

	require.NoError(t, dirs.Add("down", "up"))
	require.NoError(t, hall.SetExit("down", cellar))

	got, err := hall.Exit("down")
	require.NoError(t, err)
	assert.Same(t, cellar, got)

	// The reverse link is created automatically.
	back, err := cellar.Exit("up")
	require.NoError(t, err)
	assert.Same(t, hall, back)

	none, err := hall.Exit("north")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = hall.Exit("sideways")
	assert.ErrorIs(t, err, fabletypes.ErrUnknownDirection)

	err = hall.SetExit("sideways", cellar)
	assert.ErrorIs(t, err, fabletypes.ErrUnknownDirection)

	assert.Equal(t, []string{"down"}, hall.Exits())
	assert.Equal(t, []string{"up"}, cellar.Exits())
}

func TestRoom_Contents(t *testing.T) {
	r := NewRoom("A pantry.")
	jar := NewItem("a jar of pickles", "jar", "pickles")

	r.Contents().Add(jar)
	assert.Same(t, jar, r.Contents().Find("pickles"))
}

func TestRoom_DescriptionTrimmed(t *testing.T) {
	r := NewRoom("\n  A quiet meadow.\n")
	assert.Equal(t, "A quiet meadow.", r.Description())
	assert.Equal(t, "A quiet meadow.", r.String())
}

func TestItem_Matches(t *testing.T) {
	sword := NewItem("Rusty Sword", "sword", "blade")

	assert.Equal(t, "Rusty Sword", sword.Name())
	assert.True(t, sword.Matches("rusty sword"))
	assert.True(t, sword.Matches("SWORD"))
	assert.True(t, sword.Matches("blade"))
	assert.False(t, sword.Matches("dagger"))
}

func TestBag_FindAndTake(t *testing.T) {
	apple := NewItem("apple")
	sword := NewItem("Rusty Sword", "sword")
	bag := NewBag(apple, sword)

	assert.Equal(t, 2, bag.Len())
	assert.True(t, bag.Contains(apple))
	assert.True(t, bag.ContainsName("sword"))
	assert.False(t, bag.ContainsName("dagger"))

	assert.Same(t, sword, bag.Find("sword"))
	assert.Equal(t, 2, bag.Len(), "Find must not remove")

	assert.Same(t, sword, bag.Take("rusty sword"))
	assert.Equal(t, 1, bag.Len())
	assert.Nil(t, bag.Take("rusty sword"))

	assert.Equal(t, []*Item{apple}, bag.Items())
}

func TestBag_Random(t *testing.T) {
	empty := NewBag()
	assert.Nil(t, empty.Random())
	assert.Nil(t, empty.TakeRandom())

	only := NewItem("coin")
	bag := NewBag(only)
	assert.Same(t, only, bag.Random())
	assert.Equal(t, 1, bag.Len())
	assert.Same(t, only, bag.TakeRandom())
	assert.Equal(t, 0, bag.Len())
}

func TestBag_AddRemove(t *testing.T) {
	coin := NewItem("coin")
	bag := NewBag()

	bag.Add(coin)
	assert.True(t, bag.Contains(coin))
	assert.True(t, bag.Remove(coin))
	assert.False(t, bag.Remove(coin))
}
