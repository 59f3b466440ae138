package main

import (
	"strings"
	"testing"

	"github.com/marben/mandelview"
)

func testGame() *Game {
	return newGame(mandelview.NewEngine(100, 100, 50), 0)
}

func TestHandleCommandIter(t *testing.T) {
	g := testGame()
	if !handleCommand(g, strings.Fields("iter 300")) {
		t.Fatal("iter should report a parameter change")
	}
	if got := g.engine.MaxIter(); got != 300 {
		t.Errorf("cap = %d, want 300", got)
	}
	if handleCommand(g, strings.Fields("iter many")) {
		t.Error("malformed iter should not report a change")
	}
}

func TestHandleCommandColor(t *testing.T) {
	g := testGame()
	if !handleCommand(g, strings.Fields("color gray")) {
		t.Fatal("color gray should report a change")
	}
	if g.engine.ColorMode() != mandelview.ModeGrayscale {
		t.Errorf("mode = %s, want grayscale", g.engine.ColorMode())
	}
	if handleCommand(g, strings.Fields("color plaid")) {
		t.Error("unknown color mode should not report a change")
	}
}

func TestHandleCommandZoom(t *testing.T) {
	g := testGame()
	if !handleCommand(g, strings.Fields("zoom -0.5 0 0.1")) {
		t.Fatal("zoom should report a change")
	}
	vp := g.engine.Viewport()
	if cx, _ := vp.Center(); cx > -0.49 || cx < -0.51 {
		t.Errorf("center x = %v, want -0.5", cx)
	}
	if handleCommand(g, strings.Fields("zoom a b c")) {
		t.Error("malformed zoom should not report a change")
	}
}

func TestHandleCommandGoto(t *testing.T) {
	g := testGame()
	if !handleCommand(g, strings.Fields("goto seahorse")) {
		t.Fatal("goto seahorse should report a change")
	}
	if g.engine.Viewport() != mandelview.SeahorseValley {
		t.Errorf("viewport = %+v, want seahorse valley", g.engine.Viewport())
	}
	if handleCommand(g, strings.Fields("goto atlantis")) {
		t.Error("unknown region should not report a change")
	}
}

func TestHandleCommandQuit(t *testing.T) {
	g := testGame()
	handleCommand(g, []string{"quit"})
	if !g.quit.Load() {
		t.Error("quit command did not request shutdown")
	}
}
