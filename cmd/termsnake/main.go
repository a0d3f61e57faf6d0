// Command termsnake plays the touch snake in a terminal. A mouse drag stands in
// for a touch gesture; arrow keys and WASD also steer.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	g, err := newGame()
	if err != nil {
		log.Fatal().Err(err).Msg("Init terminal")
	}

	// The screen owns the terminal while running; only errors get through.
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	g.run()
	g.screen.Fini()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	log.Info().
		Int("score", g.best).
		Int("games", g.games).
		Msg("Bye")
}
