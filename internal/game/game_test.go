package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fableshell/internal/output"
	"fableshell/pkg/fabletypes"
)

// newTestGame builds a game writing to buf, without the help built-ins
// unless asked for.
func newTestGame(buf *bytes.Buffer, opts ...Option) *Game {
	base := []Option{
		WithPrinter(output.NewPrinter(output.WithWriter(buf), output.WithWidth(80))),
		WithHelp(false),
	}
	return New(append(base, opts...)...)
}

func TestRegister_SignatureMismatch(t *testing.T) {
	g := newTestGame(&bytes.Buffer{})

	err := g.Register(Command{
		Template: "take ITEM",
		Params:   []string{"weapon"},
		Handler:  func(fabletypes.Args) {},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, fabletypes.ErrSignatureMismatch)
	assert.Contains(t, err.Error(), "take ITEM")
	assert.Contains(t, err.Error(), "(item)")
}

func TestRegister_FixedKeywordsCountTowardSignature(t *testing.T) {
	g := newTestGame(&bytes.Buffer{})

	err := g.Register(Command{
		Template: "eat ITEM",
		Params:   []string{"item", "verb"},
		Fixed:    fabletypes.Args{"verb": "eat"},
		Handler:  func(fabletypes.Args) {},
	})
	assert.NoError(t, err)

	err = g.Register(Command{
		Template: "eat ITEM",
		Params:   []string{"item"},
		Fixed:    fabletypes.Args{"verb": "eat"},
		Handler:  func(fabletypes.Args) {},
	})
	assert.ErrorIs(t, err, fabletypes.ErrSignatureMismatch)
}

func TestRegister_MalformedTemplate(t *testing.T) {
	g := newTestGame(&bytes.Buffer{})

	err := g.Register(Command{
		Template: "take Item",
		Params:   []string{"item"},
		Handler:  func(fabletypes.Args) {},
	})
	assert.ErrorIs(t, err, fabletypes.ErrMalformedPattern)
}

func TestRegister_NilHandler(t *testing.T) {
	g := newTestGame(&bytes.Buffer{})

	err := g.Register(Command{Template: "wave", Params: nil})
	assert.Error(t, err)
}

func TestDispatch_CapturesAndFixedMerge(t *testing.T) {
	g := newTestGame(&bytes.Buffer{})

	var got fabletypes.Args
	require.NoError(t, g.Register(Command{
		Template: "put ITEM in CONTAINER",
		Params:   []string{"item", "container", "mode"},
		Fixed:    fabletypes.Args{"mode": "gently"},
		Handler:  func(args fabletypes.Args) { got = args },
	}))

	require.NoError(t, g.Dispatch("Put the Rusty Key in the Old Chest"))
	assert.Equal(t, fabletypes.Args{
		"item":      "the rusty key",
		"container": "the old chest",
		"mode":      "gently",
	}, got)
}

func TestDispatch_FirstMatchWins(t *testing.T) {
	g := newTestGame(&bytes.Buffer{})

	var order []string
	for _, name := range []string{"first", "second"} {
		name := name
		require.NoError(t, g.Register(Command{
			Template: "sing",
			Handler:  func(fabletypes.Args) { order = append(order, name) },
		}))
	}

	require.NoError(t, g.Dispatch("sing"))
	assert.Equal(t, []string{"first"}, order)
}

func TestDispatch_UnmatchedCalledOnce(t *testing.T) {
	var calls []string
	g := newTestGame(&bytes.Buffer{}, WithUnmatched(func(raw string) {
		calls = append(calls, raw)
	}))

	require.NoError(t, g.Dispatch("dance Wildly"))
	assert.Equal(t, []string{"dance Wildly"}, calls, "raw line is preserved, not lowercased")
}

func TestDispatch_EmptyLineDoesNothing(t *testing.T) {
	called := false
	g := newTestGame(&bytes.Buffer{}, WithUnmatched(func(string) { called = true }))

	require.NoError(t, g.Dispatch(""))
	require.NoError(t, g.Dispatch("   "))
	assert.False(t, called)
}

func TestDispatch_DefaultUnmatchedMessage(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGame(&buf)

	require.NoError(t, g.Dispatch("fly"))
	assert.Equal(t, "I don't understand 'fly'.\n", buf.String())
}

func TestContextScoping(t *testing.T) {
	g := newTestGame(&bytes.Buffer{})

	var bought string
	require.NoError(t, g.Register(Command{
		Template: "buy THING",
		Context:  "shop",
		Params:   []string{"thing"},
		Handler:  func(args fabletypes.Args) { bought = args.Get("thing") },
	}))

	unmatchedCount := 0
	g.unmatched = func(string) { unmatchedCount++ }

	require.NoError(t, g.Dispatch("buy hat"))
	assert.Equal(t, 1, unmatchedCount, "shop command inactive at root")

	g.SetContext("shop")
	assert.Equal(t, "default.shop", g.Context())
	require.NoError(t, g.Dispatch("buy hat"))
	assert.Equal(t, "hat", bought)

	g.SetContext("shop.register")
	require.NoError(t, g.Dispatch("buy scarf"))
	assert.Equal(t, "scarf", bought)

	g.SetContext("")
	assert.Equal(t, "default", g.Context())
}

func TestRun_QuitStopsLoop(t *testing.T) {
	var buf bytes.Buffer
	input := strings.NewReader("sing\nquit\nsing\n")

	sung := 0
	g := newTestGame(&buf, WithInput(input))
	require.NoError(t, g.Register(Command{
		Template: "sing",
		Handler:  func(fabletypes.Args) { sung++ },
	}))

	require.NoError(t, g.Run())
	assert.Equal(t, 1, sung, "nothing dispatches after quit")
}

func TestRun_FreezesRegistry(t *testing.T) {
	g := newTestGame(&bytes.Buffer{}, WithInput(strings.NewReader("")))
	require.NoError(t, g.Run())

	err := g.Register(Command{
		Template: "sing",
		Handler:  func(fabletypes.Args) {},
	})
	assert.ErrorIs(t, err, fabletypes.ErrRegistryFrozen)
}

func TestRun_EmptyLinesSkipped(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	g := newTestGame(&buf,
		WithInput(strings.NewReader("\n   \n\n")),
		WithUnmatched(func(string) { calls++ }))

	require.NoError(t, g.Run())
	assert.Equal(t, 0, calls)
	assert.Equal(t, "", buf.String(), "no separator lines for empty input")
}

func TestRun_SeparatorAfterEachCommand(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGame(&buf, WithInput(strings.NewReader("sing\n")))
	require.NoError(t, g.Register(Command{
		Template: "sing",
		Handler:  func(fabletypes.Args) { g.Say("La la la.") },
	}))

	require.NoError(t, g.Run())
	assert.Equal(t, "La la la.\n\n", buf.String())
}

func TestHelp_ListsActivePatternsSorted(t *testing.T) {
	var buf bytes.Buffer
	g := New(
		WithPrinter(output.NewPrinter(output.WithWriter(&buf), output.WithWidth(80))),
		WithInput(strings.NewReader("help\n")),
	)
	require.NoError(t, g.Register(Command{
		Template: "take ITEM",
		Params:   []string{"item"},
		Handler:  func(fabletypes.Args) {},
	}))
	require.NoError(t, g.Register(Command{
		Template: "buy THING",
		Context:  "shop",
		Params:   []string{"thing"},
		Handler:  func(fabletypes.Args) {},
	}))

	require.NoError(t, g.Run())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Here is a list of the commands you can give:",
		"?",
		"help",
		"quit",
		"take ITEM",
	}, lines, "shop command is inactive at root and excluded")
}

func TestHelp_QuestionMarkShortcut(t *testing.T) {
	var buf bytes.Buffer
	g := New(
		WithPrinter(output.NewPrinter(output.WithWriter(&buf), output.WithWidth(80))),
		WithInput(strings.NewReader("?\n")),
	)

	require.NoError(t, g.Run())
	assert.Contains(t, buf.String(), "Here is a list of the commands you can give:")
}

func TestHelp_OutranksUserCommands(t *testing.T) {
	var buf bytes.Buffer
	shadowed := false
	g := New(
		WithPrinter(output.NewPrinter(output.WithWriter(&buf), output.WithWidth(80))),
		WithInput(strings.NewReader("help\n")),
	)
	require.NoError(t, g.Register(Command{
		Template: "help",
		Handler:  func(fabletypes.Args) { shadowed = true },
	}))

	require.NoError(t, g.Run())
	assert.False(t, shadowed, "built-in help dispatches ahead of user commands")
}

func TestHelp_DisabledLeavesWordUnbound(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	g := newTestGame(&buf,
		WithInput(strings.NewReader("help\n")),
		WithUnmatched(func(string) { calls++ }))

	require.NoError(t, g.Run())
	assert.Equal(t, 1, calls)
}

func TestMustRegister_Panics(t *testing.T) {
	g := newTestGame(&bytes.Buffer{})

	assert.Panics(t, func() {
		g.MustRegister(Command{Template: "Bad Words"})
	})
}
