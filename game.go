package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"

	"github.com/angel10x/Maple-Side-Scroller/common"
	"github.com/angel10x/Maple-Side-Scroller/obj"
	"github.com/angel10x/Maple-Side-Scroller/prefabs"
)

type Game struct {
	frames int
	debug  bool

	levelName string

	input   *obj.Input
	camera  *obj.Camera
	world   *obj.World
	player  *obj.Player
	enemies []*obj.Enemy

	paused  bool
	pauseUI *ebitenui.UI

	watcher        *prefabs.Watcher
	clipboardReady bool
}

func NewGame(levelName string, debug bool) (*Game, error) {
	g := &Game{
		debug:     debug,
		levelName: levelName,
		input:     obj.NewInput(),
		camera:    obj.NewCamera(common.BaseWidth),
	}
	if err := g.loadScene(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard disabled: %v", err)
		} else {
			g.clipboardReady = true
		}
	}
	return g, nil
}

// loadScene builds the world, player, and enemies from the prefab specs. It
// runs at startup and again whenever the watcher reports a prefab change.
func (g *Game) loadScene() error {
	tuningSpec, err := prefabs.LoadTuningSpec()
	if err != nil {
		return err
	}
	levelSpec, err := prefabs.LoadLevelSpec(g.levelName)
	if err != nil {
		return err
	}

	cfg := tuningFromSpec(tuningSpec)

	platforms := make([]obj.Platform, 0, len(levelSpec.Platforms))
	for _, p := range levelSpec.Platforms {
		platforms = append(platforms, obj.Platform{
			Rect: common.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height},
		})
	}
	world := obj.NewWorld(levelSpec.Width, levelSpec.Height, platforms)

	enemies := make([]*obj.Enemy, 0, len(levelSpec.Enemies))
	for _, spawn := range levelSpec.Enemies {
		enemy := obj.NewEnemy(spawn.X, spawn.Y, cfg, world)
		if spawn.Brain != "" {
			src, err := prefabs.LoadScript(spawn.Brain + ".tengo")
			if err != nil {
				return fmt.Errorf("enemy brain %s: %w", spawn.Brain, err)
			}
			brain, err := obj.NewScriptBrain(src)
			if err != nil {
				return fmt.Errorf("enemy brain %s: %w", spawn.Brain, err)
			}
			enemy.SetBrain(brain)
		}
		enemies = append(enemies, enemy)
	}

	g.world = world
	g.player = obj.NewPlayer(levelSpec.Spawn.X, levelSpec.Spawn.Y, cfg, g.input, world)
	g.enemies = enemies
	return nil
}

func tuningFromSpec(s *prefabs.TuningSpec) obj.Tuning {
	return obj.Tuning{
		Gravity:        s.Gravity,
		PlayerSpeed:    s.Player.MoveSpeed,
		JumpStrength:   s.Player.JumpStrength,
		PlayerWidth:    s.Player.Width,
		PlayerHeight:   s.Player.Height,
		GroundFriction: s.Player.GroundFriction,
		EnemySpeed:     s.Enemy.MoveSpeed,
		EnemyWidth:     s.Enemy.Width,
		EnemyHeight:    s.Enemy.Height,
		EdgeProbe:      s.Enemy.EdgeProbe,
	}
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainPrefabEvents()

	// Physics runs on Ebiten's fixed update step.
	dt := 1.0 / float64(ebiten.TPS())

	g.camera.Update(g.player.Pos.X)
	g.player.Update(dt)
	for _, enemy := range g.enemies {
		enemy.Update(dt)
	}

	if g.clipboardReady && g.input.CopyStatePressed {
		clipboard.Write(clipboard.FmtText, []byte(g.player.StateString()))
		log.Printf("copied player state to clipboard")
	}
	return nil
}

// drainPrefabEvents consumes pending watcher events without blocking and
// rebuilds the scene once if anything changed.
func (g *Game) drainPrefabEvents() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s", name)
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			if reload {
				if err := g.loadScene(); err != nil {
					log.Printf("reload scene: %v", err)
				}
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)

	camX := g.camera.OffsetX
	for _, p := range g.world.Platforms() {
		r := p.Rect
		vector.DrawFilledRect(screen, float32(r.X-camX), float32(r.Y), float32(r.Width), float32(r.Height), colornames.Green, false)
		vector.StrokeRect(screen, float32(r.X-camX), float32(r.Y), float32(r.Width), float32(r.Height), 2, colornames.Darkgreen, false)
	}

	g.player.Draw(screen, camX)
	for _, enemy := range g.enemies {
		enemy.Draw(screen, camX)
	}

	ebitenutil.DebugPrintAt(screen, "WASD / Arrow Keys to move, Space to jump", 10, 10)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  %s", ebiten.ActualFPS(), g.player.StateString()), 10, 30)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
