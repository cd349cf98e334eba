package api

import (
	"context"
	"math/rand"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/snakeduel/engine/config"
	"github.com/snakeduel/engine/rules"
	"github.com/snakeduel/engine/strategy"
)

// ErrGameNotFound is returned for lookups of unknown game ids.
var ErrGameNotFound = errors.New("api: game not found")

// Frame is one tick of a live game as seen by viewers. Viewers get board
// positions and scores only, never the collision internals.
type Frame struct {
	State  rules.GameState `json:"state"`
	Winner int             `json:"winner"`
	Done   bool            `json:"done"`
}

// GameRequest creates a live game.
type GameRequest struct {
	Strategy1 string `json:"strategy1"`
	Strategy2 string `json:"strategy2"`
	Seed      int64  `json:"seed"`
	MaxSteps  int64  `json:"max_steps"`
}

// liveGame plays one game in its own goroutine, paced by the playback
// limiter, and fans frames out to any number of viewers.
type liveGame struct {
	id string

	mu      sync.Mutex
	frames  []Frame
	viewers map[chan Frame]struct{}
	done    bool
}

func (g *liveGame) publish(f Frame) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.frames = append(g.frames, f)
	g.done = f.Done
	for ch := range g.viewers {
		select {
		case ch <- f:
		default:
			// Slow viewer; it catches up from the frame log on reconnect.
			delete(g.viewers, ch)
			close(ch)
		}
	}
	if f.Done {
		for ch := range g.viewers {
			delete(g.viewers, ch)
			close(ch)
		}
	}
}

// subscribe returns the frames so far plus a channel of frames to come.
// The channel is nil when the game is already over.
func (g *liveGame) subscribe() ([]Frame, chan Frame) {
	g.mu.Lock()
	defer g.mu.Unlock()
	backlog := append([]Frame(nil), g.frames...)
	if g.done {
		return backlog, nil
	}
	ch := make(chan Frame, config.FrameBacklog)
	g.viewers[ch] = struct{}{}
	return backlog, ch
}

func (g *liveGame) latest() (Frame, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.frames) == 0 {
		return Frame{}, false
	}
	return g.frames[len(g.frames)-1], true
}

// hub owns every live game started through the API.
type hub struct {
	mu    sync.RWMutex
	games map[string]*liveGame
}

func newHub() *hub {
	return &hub{games: map[string]*liveGame{}}
}

func (h *hub) get(id string) (*liveGame, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	g, ok := h.games[id]
	return g, ok
}

// start validates the request, sets up the game and begins playback.
func (h *hub) start(ctx context.Context, req GameRequest) (string, error) {
	rng := rand.New(rand.NewSource(req.Seed))
	s1, err := strategy.Build(req.Strategy1, rng)
	if err != nil {
		return "", err
	}
	s2, err := strategy.Build(req.Strategy2, rng)
	if err != nil {
		return "", err
	}

	game, err := rules.NewGame(rules.DefaultGameConfig(), rng)
	if err != nil {
		return "", errors.Wrap(err, "setting up game")
	}
	if req.MaxSteps <= 0 {
		req.MaxSteps = 1000
	}

	lg := &liveGame{id: game.ID, viewers: map[chan Frame]struct{}{}}
	h.mu.Lock()
	h.games[game.ID] = lg
	h.mu.Unlock()

	go h.play(ctx, lg, game, s1, s2, req.MaxSteps)
	return game.ID, nil
}

func (h *hub) play(ctx context.Context, lg *liveGame, game *rules.Game, s1, s2 strategy.Strategy, maxSteps int64) {
	limiter := rate.NewLimiter(config.TickRate, config.TickBurst)
	lg.publish(Frame{State: game.Snapshot()})

	for steps := int64(0); steps < maxSteps; steps++ {
		if err := limiter.Wait(ctx); err != nil {
			lg.publish(Frame{State: game.Snapshot(), Done: true})
			return
		}

		state := game.Snapshot()
		result, err := rules.AdvanceTick(game, s1.NextMove(state, 1), s2.NextMove(state, 2))
		if result.Winner != 0 || err != nil {
			if err != nil && errors.Cause(err) != rules.ErrGridExhausted {
				log.WithError(err).WithField("game", lg.id).Error("live game tick failed")
			}
			lg.publish(Frame{State: game.Snapshot(), Winner: result.Winner, Done: true})
			return
		}
		lg.publish(Frame{State: game.Snapshot()})
	}
	lg.publish(Frame{State: game.Snapshot(), Done: true})
}
