package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Vixeliz/boid-test/internal/simulation"
	"github.com/Vixeliz/boid-test/pkg/flock"
)

func main() {
	configFile := flag.String("config", "", "path to a JSON settings file (defaults used when empty)")
	schemaFile := flag.String("schema", "boids.schema.json", "path to the JSON schema validating the settings file")
	flag.Parse()

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		loaded, err := flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	engine := flock.New(cfg.Params(), nil)
	game := simulation.NewGame(engine)

	ebiten.SetWindowSize(simulation.ScreenWidth, simulation.ScreenHeight)
	ebiten.SetWindowTitle("Boids")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
