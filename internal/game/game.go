// Package game provides the main game loop and input handling.
package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wander/internal/entity"
	"github.com/samdwyer/wander/internal/gamedata"
	"github.com/samdwyer/wander/internal/session"
	"github.com/samdwyer/wander/internal/telemetry"
	"github.com/samdwyer/wander/internal/tilemap"
	"github.com/samdwyer/wander/internal/ui"
	"github.com/samdwyer/wander/internal/world"
)

// Game wires the screen, renderer and session together and runs the loop.
type Game struct {
	cfg      Config
	log      *logrus.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *session.Session
	running  bool
}

// New creates a new game instance.
func New(cfg Config, log *logrus.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	tileDefs, err := gamedata.LoadTiles()
	if err != nil {
		screen.Close()
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		log:      log,
		screen:   screen,
		renderer: ui.NewRenderer(screen, tileDefs),
		running:  true,
	}, nil
}

// Run builds the world and executes the main loop. Input and NPC ticks are
// both handled on this goroutine, so all state mutation stays sequential.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		initSpan.End()
		return err
	}

	factory := &world.Factory{
		Tileset:     tilemap.MustLoadTileset(),
		Items:       items,
		Rng:         rng,
		FarmMapFile: g.cfg.FarmMapFile,
	}
	w, err := factory.Create(ctx)
	if err != nil {
		initSpan.End()
		return err
	}

	hero := entity.NewHero("John")
	s, err := session.New(w, hero, g.renderer, g.log)
	if err != nil {
		initSpan.End()
		return err
	}
	g.session = s

	initSpan.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int64("game.tick_ms", g.cfg.TickInterval.Milliseconds()),
	)
	initSpan.End()

	g.log.WithFields(logrus.Fields{
		"seed": seed,
		"tick": g.cfg.TickInterval,
	}).Info("game started")

	g.session.Start()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	for g.running {
		select {
		case ev := <-events:
			g.handleEvent(ctx, ev)
		case <-ticker.C:
			g.session.Update(g.cfg.TickInterval)
		}
	}

	g.screen.Close()
	return nil
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent binds keys to session commands.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.session.MoveHero(ctx, 0, -1)
	case tcell.KeyDown:
		g.session.MoveHero(ctx, 0, 1)
	case tcell.KeyLeft:
		g.session.MoveHero(ctx, -1, 0)
	case tcell.KeyRight:
		g.session.MoveHero(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
