package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/servant/replay"
)

var CLI struct {
	Debug bool `help:"Enable debug logging and the debug overlay."`

	Play struct {
		Monitor bool   `help:"Open on the first monitor instead of the primary one." short:"m"`
		Record  string `help:"Write a replay of the player's ticks to this file on exit." type:"path"`
		Prefabs string `help:"Directory of prefab overrides to load and watch for changes." default:"prefabs" type:"path"`
	} `cmd:"" help:"Run the game."`

	Replay struct {
		File string `arg:"" name:"file" help:"Recording written by play --record." type:"existingfile"`
	} `cmd:"" help:"Replay a recording headlessly and print a summary."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if len(os.Args) == 1 {
		if err := playCommand(GameOptions{PrefabDir: "prefabs"}, false); err != nil {
			writeError(err)
		}
		return
	}

	ctx := kong.Parse(&CLI,
		kong.Name("servant"),
		kong.Description("third-person character locomotion sandbox"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	switch ctx.Command() {
	case "play":
		opts := GameOptions{
			Debug:      CLI.Debug,
			PrefabDir:  CLI.Play.Prefabs,
			RecordPath: CLI.Play.Record,
		}
		if err := playCommand(opts, CLI.Play.Monitor); err != nil {
			writeError(err)
		}
	case "replay <file>":
		if err := replayCommand(CLI.Replay.File); err != nil {
			writeError(err)
		}
	}
}

func playCommand(opts GameOptions, firstMonitor bool) error {
	if firstMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("servant")

	game, err := NewGame(opts)
	if err != nil {
		return err
	}
	defer game.Close()

	return ebiten.RunGame(game)
}

func replayCommand(path string) error {
	rec, err := replay.Load(path)
	if err != nil {
		return err
	}
	res, err := replay.Run(rec)
	if err != nil {
		return err
	}

	final := res.Final
	log.Info().
		Int("frames", len(rec.Frames)).
		Float64("seconds", res.Elapsed).
		Int("jumps", res.Jumps).
		Float64("travel", res.Travel).
		Float64("speed", final.CurrentSpeed).
		Stringer("phase", final.Phase).
		Msg("replay: done")

	if last := res.Outputs[len(res.Outputs)-1]; last.CompanionTracked {
		p := last.CompanionPosition
		log.Info().Floats64("companion", p[:]).Msg("replay: final companion position")
	}
	return nil
}
