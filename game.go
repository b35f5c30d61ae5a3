package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/servant/assets"
	"github.com/milk9111/servant/ecs"
	"github.com/milk9111/servant/ecs/component"
	"github.com/milk9111/servant/ecs/entity"
	"github.com/milk9111/servant/ecs/system"
	"github.com/milk9111/servant/keybind"
	"github.com/milk9111/servant/locomotion"
	"github.com/milk9111/servant/prefabs"
	"github.com/milk9111/servant/replay"
	"github.com/milk9111/servant/settings"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type GameOptions struct {
	Debug      bool
	PrefabDir  string
	RecordPath string
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	player    ecs.Entity

	locomotion *system.LocomotionSystem
	animation  *system.AnimationSystem
	render     *system.RenderSystem

	watcher    *prefabs.Watcher
	recorder   *replay.Recorder
	recordPath string
}

func NewGame(opts GameOptions) (*Game, error) {
	if opts.PrefabDir != "" {
		prefabs.SetDir(opts.PrefabDir)
	}

	prefs, err := settings.Load(prefabs.Load, prefabs.SettingsFile)
	if err != nil {
		return nil, err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	companionSpec, err := prefabs.LoadCompanionSpec()
	if err != nil {
		return nil, err
	}
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:      ecs.NewWorld(),
		locomotion: system.NewLocomotionSystem(),
		animation:  system.NewAnimationSystem(),
		render:     system.NewRenderSystem(worldSpec, companionSpec.Color),
		recordPath: opts.RecordPath,
	}
	g.render.Debug = opts.Debug

	if playerSpec.Animation.Script != "" {
		if err := g.loadAnimationScript(playerSpec.Animation.Script); err != nil {
			log.Warn().Err(err).Msg("game: animation script unavailable, using built-in rule")
		}
	}

	audioCtx := audio.NewContext(assets.SampleRate)
	var clips []component.ClipPlayer
	for _, p := range assets.NewFootstepPlayers(audioCtx, playerSpec.Footsteps.Clips) {
		clips = append(clips, p)
	}

	g.player, err = entity.NewPlayer(g.world, playerSpec, clips)
	if err != nil {
		return nil, err
	}
	if _, err := entity.NewCamera(g.world, cameraSpec, g.player); err != nil {
		return nil, err
	}
	if playerSpec.Locomotion.CompanionDistance > 0 {
		if _, err := entity.NewCompanion(g.world, companionSpec, g.player); err != nil {
			return nil, err
		}
	}

	if g.recordPath != "" {
		loco, _ := ecs.Get(g.world, g.player, component.LocomotionComponent.Kind())
		st := loco.Controller.State()
		g.recorder = replay.NewRecorder(playerSpec.Locomotion, locomotion.Spawn{Facing: st.Facing})
		g.locomotion.Observe = func(e ecs.Entity, in locomotion.TickInput, _ locomotion.TickOutput) {
			if e == g.player {
				g.recorder.Record(in)
			}
		}
	}

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(nil, prefs.Bindings),
		system.NewCursorSystem(nil),
		system.NewCameraSystem(prefs),
		g.locomotion,
		system.NewPhysicsSystem(worldSpec),
		system.NewCompanionSystem(),
		g.animation,
		system.NewFootstepSystem(prefs.FootstepVolume, time.Now().UnixNano()),
	)

	if opts.PrefabDir != "" {
		w, err := prefabs.NewWatcher(opts.PrefabDir)
		if err != nil {
			log.Warn().Err(err).Str("dir", opts.PrefabDir).Msg("game: hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	log.Info().
		Str("world", worldSpec.Name).
		Int("footstep_clips", len(clips)).
		Bool("recording", g.recorder != nil).
		Stringer("rebind_key", keybind.RebindKey).
		Msg("game: ready")
	return g, nil
}

func (g *Game) Update() error {
	g.reload()
	g.scheduler.Update(g.world, time.Second/time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// Close stops hot reload and writes the recording, if any.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.recorder == nil {
		return
	}
	if err := g.recorder.Save(g.recordPath); err != nil {
		log.Error().Err(err).Msg("game: save recording")
		return
	}
	log.Info().Str("path", g.recordPath).Int("frames", g.recorder.Len()).Msg("game: recording saved")
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Warn().Err(err).Msg("game: watcher")
	default:
	}

	for _, change := range g.watcher.Poll() {
		switch {
		case change.Script:
			if err := g.loadAnimationScript(change.Name); err != nil {
				log.Error().Err(err).Str("file", change.Name).Msg("game: reload script")
				continue
			}
			log.Info().Str("file", change.Name).Msg("game: script reloaded")
		case change.Name == prefabs.PlayerFile:
			if err := g.reloadPlayer(); err != nil {
				log.Error().Err(err).Msg("game: reload player, keeping previous tuning")
				continue
			}
			log.Info().Msg("game: player tuning reloaded")
		default:
			log.Info().Str("file", change.Name).Msg("game: changed, restart to apply")
		}
	}
}

func (g *Game) reloadPlayer() error {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	if err := g.locomotion.Reconfigure(g.world, spec.Locomotion); err != nil {
		return err
	}
	if g.recorder != nil {
		loco, _ := ecs.Get(g.world, g.player, component.LocomotionComponent.Kind())
		log.Warn().Int("frames", g.recorder.Len()).Msg("game: tuning changed, recording restarted")
		g.recorder.Reconfigure(spec.Locomotion, loco.Controller.State())
	}
	return nil
}

func (g *Game) loadAnimationScript(name string) error {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return fmt.Errorf("game: load script %s: %w", name, err)
	}
	return g.animation.LoadScript(src)
}
