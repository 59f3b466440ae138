// webviewer serves the Mandelbrot viewer as a web page. The browser shows
// the rendered frame on a canvas and sends zoom/parameter commands back
// over a websocket; each command triggers a render and a fresh PNG frame.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/marben/mandelview"
)

//go:embed index.html
var indexHTML []byte

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	width := flag.Int("width", 800, "frame width in pixels")
	height := flag.Int("height", 800, "frame height in pixels")
	iter := flag.Int("iter", 1000, "initial iteration cap")
	flag.Parse()

	engine := mandelview.NewEngine(*width, *height, *iter)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.HandleFunc("/ws", websocketHandler(engine))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
