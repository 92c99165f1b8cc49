package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"astrovoid/internal/audio"
	"astrovoid/internal/config"
	"astrovoid/internal/game"
	"astrovoid/internal/loop"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	opts := loop.Options{
		Mode: game.ParseMode(config.GetEnv("GAME_MODE", "classic")),
	}

	if config.GetEnvBool("GAME_AUDIO", true) {
		engine, audioErr := audio.NewEngine()
		if audioErr == nil {
			opts.Sounds = engine
		}
		// A missing audio device is not fatal; the game runs silent.
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
