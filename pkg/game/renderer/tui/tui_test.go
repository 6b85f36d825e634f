package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/config"
	"roomcrawl/pkg/game/renderer"
	"roomcrawl/pkg/game/state"
)

func newGame(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame(state.NewRunState(config.Default().Progress))
	g.Grid = world.NewGrid()
	if _, err := g.Grid.Place(world.Lattice(0, 0), world.Placement{StartRoom: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Grid.Place(world.Lattice(1, 0), world.Placement{BossRoom: true}); err != nil {
		t.Fatal(err)
	}
	g.Seed = 7
	g.AddMessage("hello")
	return g
}

func TestRenderFrame_PlainOutput(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()

	var out bytes.Buffer
	r := &TUIRenderer{Out: &out}
	r.Init()
	renderer.SetRenderer(r)
	renderer.RenderFrame(newGame(t))

	got := out.String()
	for _, want := range []string{"Level 1 - seed 7", "S-B", "hello"} {
		if !strings.Contains(got, want) {
			t.Errorf("frame missing %q:\n%s", want, got)
		}
	}
}

func TestStyleText_Normal(t *testing.T) {
	r := New()
	r.Init()
	if got := r.StyleText("abc", renderer.StyleNormal); got != "abc" {
		t.Errorf("StyleText(normal) = %q, want unchanged", got)
	}
}
