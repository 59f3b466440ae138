package main

import (
	"math"
	"testing"

	"github.com/marben/mandelview"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		cmd  command
		ok   bool
	}{
		{"zoom", command{Op: "zoom", X: 50, Y: 50, Factor: 0.5}, true},
		{"reset", command{Op: "reset"}, true},
		{"iter", command{Op: "iter", N: 200}, true},
		{"mode gray", command{Op: "mode", Mode: "gray"}, true},
		{"mode smooth", command{Op: "mode", Mode: "smooth"}, true},
		{"bad mode", command{Op: "mode", Mode: "sepia"}, false},
		{"region", command{Op: "region", Name: "seahorse"}, true},
		{"bad region", command{Op: "region", Name: "atlantis"}, false},
		{"bad op", command{Op: "teleport"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mandelview.NewEngine(100, 100, 50)
			err := apply(e, tt.cmd)
			if tt.ok && err != nil {
				t.Errorf("apply(%+v) = %v, want success", tt.cmd, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("apply(%+v) succeeded, want error", tt.cmd)
			}
		})
	}
}

// A zoom without an explicit factor uses the default click factor.
func TestApplyDefaultZoomFactor(t *testing.T) {
	e := mandelview.NewEngine(100, 100, 50)
	before := e.Viewport().Width()
	if err := apply(e, command{Op: "zoom", X: 50, Y: 50}); err != nil {
		t.Fatal(err)
	}
	if got, want := e.Viewport().Width(), before*0.2; math.Abs(got-want) > 1e-9 {
		t.Errorf("width after default zoom = %v, want %v", got, want)
	}
}

func TestApplyRejectedZoomKeepsViewport(t *testing.T) {
	e := mandelview.NewEngine(100, 100, 50)
	for i := 0; i < 50; i++ {
		if err := apply(e, command{Op: "zoom", X: 50, Y: 50, Factor: 0.1}); err != nil {
			break
		}
	}
	before := e.Viewport()
	if err := apply(e, command{Op: "zoom", X: 50, Y: 50, Factor: 0.1}); err == nil {
		t.Fatal("zoom at the precision floor should be rejected")
	}
	if e.Viewport() != before {
		t.Error("rejected zoom changed the viewport")
	}
}
