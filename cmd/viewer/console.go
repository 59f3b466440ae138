package main

import (
	"bufio"
	"fmt"
	"image/png"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/marben/mandelview"
)

const consoleHelp = `commands:
  iter N            set the iteration cap
  color gray|smooth set the color mode
  zoom X Y F        zoom to plane point (X,Y) with factor F
  goto NAME         jump to a named region (goto ? lists them)
  pos               print the current viewport and parameters
  reset             restore the default viewport
  save FILE.png     render and save the current view
  quit              exit the viewer`

// runConsole reads commands from stdin beside the window. Malformed input
// is reported and skipped; the loop only ends on EOF or quit.
func runConsole(g *Game) {
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if handleCommand(g, fields) {
			g.markDirty()
		}
	}
}

// handleCommand executes one command and reports whether it changed the
// render parameters.
func handleCommand(g *Game, fields []string) bool {
	e := g.engine
	switch cmd, args := fields[0], fields[1:]; cmd {
	case "help":
		fmt.Println(consoleHelp)

	case "iter":
		if len(args) != 1 {
			fmt.Println("usage: iter N")
			return false
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("iter: %v\n", err)
			return false
		}
		fmt.Printf("iteration cap set to %d\n", e.SetMaxIter(n))
		return true

	case "color":
		if len(args) != 1 {
			fmt.Println("usage: color gray|smooth")
			return false
		}
		switch args[0] {
		case "gray":
			e.SetColorMode(mandelview.ModeGrayscale)
		case "smooth":
			e.SetColorMode(mandelview.ModeContinuous)
		default:
			fmt.Println("usage: color gray|smooth")
			return false
		}
		return true

	case "zoom":
		if len(args) != 3 {
			fmt.Println("usage: zoom X Y F")
			return false
		}
		var vals [3]float64
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				fmt.Printf("zoom: %v\n", err)
				return false
			}
			vals[i] = v
		}
		if !e.ZoomTo(vals[0], vals[1], vals[2]) {
			fmt.Println("zoom rejected: viewport would drop below the precision floor")
			return false
		}
		return true

	case "goto":
		if len(args) != 1 || !e.GoTo(args[0]) {
			names := make([]string, 0, len(mandelview.Regions))
			for name := range mandelview.Regions {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Printf("usage: goto %s\n", strings.Join(names, "|"))
			return false
		}
		return true

	case "pos":
		vp := e.Viewport()
		cx, cy := vp.Center()
		fmt.Printf("center (%v, %v) width %v height %v iter %d mode %s\n",
			cx, cy, vp.Width(), vp.Height(), e.MaxIter(), e.ColorMode())

	case "reset":
		e.Reset()
		return true

	case "save":
		if len(args) != 1 {
			fmt.Println("usage: save FILE.png")
			return false
		}
		if err := saveFrame(e, args[0]); err != nil {
			fmt.Printf("save: %v\n", err)
		} else {
			fmt.Printf("saved %s\n", args[0])
		}

	case "quit":
		g.requestQuit()

	default:
		fmt.Printf("unknown command %q (try help)\n", cmd)
	}
	return false
}

func saveFrame(fp mandelview.FrameProvider, filename string) error {
	img, err := fp.RenderFrame()
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
