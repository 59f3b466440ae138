package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/marben/mandelview"
)

// command is one request from the browser. Op selects the action; the
// other fields are only read for the ops that need them.
type command struct {
	Op     string  `json:"op"`               // "zoom", "reset", "iter", "mode", "region"
	X      int     `json:"x,omitempty"`      // zoom: pixel coordinates of the click
	Y      int     `json:"y,omitempty"`
	Factor float64 `json:"factor,omitempty"` // zoom factor, <1 zooms in
	N      int     `json:"n,omitempty"`      // iter: new cap
	Mode   string  `json:"mode,omitempty"`   // mode: "gray" or "smooth"
	Name   string  `json:"name,omitempty"`   // region: landmark name
}

// status answers every command before the frame is sent, so the page can
// report rejected zooms and bad input.
type status struct {
	OK    bool    `json:"ok"`
	Error string  `json:"error,omitempty"`
	Iter  int     `json:"iter"`
	Mode  string  `json:"mode"`
	Width float64 `json:"width"`
}

// websocketHandler runs one command/frame loop per connection.
func websocketHandler(engine *mandelview.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		ctx := r.Context()
		log.Printf("viewer connected")

		// Initial frame so the page has something to show before the
		// first click.
		if err := respond(ctx, c, engine, nil); err != nil {
			log.Printf("initial frame: %v", err)
			return
		}

		for {
			var cmd command
			if err := wsjson.Read(ctx, c, &cmd); err != nil {
				log.Printf("viewer disconnected: %v", err)
				return
			}
			cmdErr := apply(engine, cmd)
			if err := respond(ctx, c, engine, cmdErr); err != nil {
				log.Printf("send frame: %v", err)
				return
			}
		}
	}
}

// apply mutates the engine according to cmd. A rejected or malformed
// command returns an error for the status message; the engine is left
// unchanged in that case.
func apply(engine *mandelview.Engine, cmd command) error {
	switch cmd.Op {
	case "zoom":
		factor := cmd.Factor
		if factor <= 0 {
			factor = 0.2
		}
		if !engine.ZoomAtPixel(cmd.X, cmd.Y, factor) {
			return fmt.Errorf("zoom rejected: viewport at precision floor")
		}
	case "reset":
		engine.Reset()
	case "iter":
		engine.SetMaxIter(cmd.N)
	case "mode":
		switch cmd.Mode {
		case "gray":
			engine.SetColorMode(mandelview.ModeGrayscale)
		case "smooth":
			engine.SetColorMode(mandelview.ModeContinuous)
		default:
			return fmt.Errorf("unknown mode %q", cmd.Mode)
		}
	case "region":
		if !engine.GoTo(cmd.Name) {
			return fmt.Errorf("unknown region %q", cmd.Name)
		}
	default:
		return fmt.Errorf("unknown op %q", cmd.Op)
	}
	return nil
}

// respond sends the status message followed by a freshly rendered PNG
// frame as one binary message.
func respond(ctx context.Context, c *websocket.Conn, engine *mandelview.Engine, cmdErr error) error {
	st := status{
		OK:    cmdErr == nil,
		Iter:  engine.MaxIter(),
		Mode:  engine.ColorMode().String(),
		Width: engine.Viewport().Width(),
	}
	if cmdErr != nil {
		st.Error = cmdErr.Error()
	}
	if err := wsjson.Write(ctx, c, st); err != nil {
		return err
	}
	return sendFrame(ctx, c, engine)
}

func sendFrame(ctx context.Context, c *websocket.Conn, fp mandelview.FrameProvider) error {
	img, err := fp.RenderFrame()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return c.Write(ctx, websocket.MessageBinary, buf.Bytes())
}
