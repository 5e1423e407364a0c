// Command fabview opens a window showing a floating action button.
//
// Click the button to tap it. V shows or hides it, S cycles the snack
// offset and Q or Escape quits.
//
// Usage:
//
//	go run ./cmd/fabview --options fab.yaml --env sim.env
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/go-drift/fab/pkg/fab"
	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/platform"
)

var (
	optionsPath = flag.String("options", "", "button options YAML file")
	envPath     = flag.String("env", ".env", "environment file with FAB_PLATFORM_* overrides")
	zoom        = flag.Float64("zoom", 1, "window zoom factor")
)

// screenSize is the logical screen, a small phone in portrait.
var screenSize = graphics.Size{Width: 360, Height: 640}

func main() {
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load %s: %v", *envPath, err)
	}
	id, err := platform.FromEnv(os.LookupEnv)
	if err != nil {
		log.Fatal(err)
	}
	if id.OS != "" {
		platform.SetCurrent(id)
	}

	var opts fab.Options
	if *optionsPath != "" {
		if opts, err = fab.LoadOptions(*optionsPath); err != nil {
			log.Fatal(err)
		}
	}

	game := NewGame(opts.Widget(func() { log.Println("fab tapped") }), screenSize)
	defer game.Close()

	ebiten.SetWindowSize(int(screenSize.Width**zoom), int(screenSize.Height**zoom))
	ebiten.SetWindowTitle("fabview - " + platform.Current().String())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
