// Visualizer — the stock pinchpad demo.
//
// Drag with one pointer to pan, pinch with two fingers to zoom and rotate,
// scroll to zoom around the cursor, and press R to reset the view. The
// reference mark at the origin shows the current transform; every tracked
// pointer draws its position history, drag trail, and id label.
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/stwind/pinchpad"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	posture := flag.String("posture", "", "override pointer posture: desktop or touch")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg := pinchpad.DefaultConfig()
	if *configPath != "" {
		loaded, err := pinchpad.LoadConfig(*configPath)
		if err != nil {
			log.Fatal("bad config", "err", err)
		}
		cfg = loaded
	}
	if *posture != "" {
		cfg.Posture = *posture
	}
	if *verbose {
		cfg.Verbose = true
	}

	if err := pinchpad.Run(cfg); err != nil {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
