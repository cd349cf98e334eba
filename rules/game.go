package rules

import (
	"math/rand"

	uuid "github.com/satori/go.uuid"
)

// InitialLength is the canonical spawn body length.
const InitialLength = 2

// SnakeStart describes where and how a snake enters the grid.
type SnakeStart struct {
	Body   []Point
	Facing Direction
	Score  int64
}

// GameConfig carries everything needed to set up one game. The zero value
// is not usable; DefaultGameConfig fills in the canonical duel.
type GameConfig struct {
	Width   int32
	Height  int32
	Scoring Scoring
	Policy  CollisionPolicy
	Spawn   SpawnPolicy

	// Start1 and Start2 override the canonical spawns for scenario play.
	// Nil means the canonical edge spawn with the starting score.
	Start1 *SnakeStart
	Start2 *SnakeStart
	// InitialFood overrides the spawner for the first food cell.
	InitialFood *Point
}

// DefaultGameConfig returns the standard 51x25 duel setup.
func DefaultGameConfig() GameConfig {
	scoring := DefaultScoring()
	return GameConfig{
		Width:   51,
		Height:  25,
		Scoring: scoring,
		Policy:  DefaultCollisionPolicy(scoring),
		Spawn:   SpawnCenterFirst,
	}
}

// CanonicalStart returns the standard spawn for the given snake id: snake 1
// on the left edge facing right, snake 2 on the right edge facing left,
// both two segments long on the middle row.
func CanonicalStart(id int, width, height int32) ([]Point, Direction) {
	midY := height / 2
	if id == 1 {
		return []Point{{X: 2, Y: midY}, {X: 1, Y: midY}}, DirectionRight
	}
	return []Point{{X: width - 3, Y: midY}, {X: width - 2, Y: midY}}, DirectionLeft
}

// Game owns the live state of one episode: both agents, the food and the
// scores. It is advanced tick-by-tick and never shared across episodes.
type Game struct {
	ID     string
	Config GameConfig

	Snake1 *Snake
	Snake2 *Snake
	Food   Point
	Score1 int64
	Score2 int64
	Turn   int64

	spawner *FoodSpawner
}

// NewGame sets up a game from the config, spawning the snakes and the
// first food. All randomness is drawn from rng so that identical seeds
// produce identical games.
func NewGame(cfg GameConfig, rng *rand.Rand) (*Game, error) {
	g := &Game{
		ID:      uuid.NewV4().String(),
		Config:  cfg,
		Score1:  cfg.Scoring.StartingScore,
		Score2:  cfg.Scoring.StartingScore,
		spawner: NewFoodSpawner(cfg.Spawn, rng),
	}

	g.Snake1 = spawnSnake(1, cfg, cfg.Start1)
	g.Snake2 = spawnSnake(2, cfg, cfg.Start2)
	if cfg.Start1 != nil && cfg.Start1.Score != 0 {
		g.Score1 = cfg.Start1.Score
	}
	if cfg.Start2 != nil && cfg.Start2.Score != 0 {
		g.Score2 = cfg.Start2.Score
	}

	if cfg.InitialFood != nil {
		g.Food = *cfg.InitialFood
		g.spawner.spawned = true
	} else {
		food, err := g.spawner.Spawn(cfg.Width, cfg.Height, g.Snake1, g.Snake2)
		if err != nil {
			return nil, err
		}
		g.Food = food
	}

	return g, nil
}

func spawnSnake(id int, cfg GameConfig, start *SnakeStart) *Snake {
	if start != nil {
		return NewSnake(start.Body, start.Facing)
	}
	body, facing := CanonicalStart(id, cfg.Width, cfg.Height)
	return NewSnake(body, facing)
}

// ResetSnake puts the given agent back on its canonical two-segment spawn.
// Resets always use the canonical spawn, even in scenario games that
// started elsewhere.
func (g *Game) ResetSnake(id int) {
	body, facing := CanonicalStart(id, g.Config.Width, g.Config.Height)
	g.snake(id).Reset(body, facing)
}

func (g *Game) snake(id int) *Snake {
	if id == 1 {
		return g.Snake1
	}
	return g.Snake2
}

func (g *Game) score(id int) int64 {
	if id == 1 {
		return g.Score1
	}
	return g.Score2
}

func (g *Game) addScore(id int, points int64) {
	if id == 1 {
		g.Score1 += points
	} else {
		g.Score2 += points
	}
}

// Snapshot produces the read-only state handed to strategies and viewers.
// Bodies are copied so the caller cannot reach back into the game.
func (g *Game) Snapshot() GameState {
	return GameState{
		Snake1: append([]Point(nil), g.Snake1.Body...),
		Snake2: append([]Point(nil), g.Snake2.Body...),
		Food:   g.Food,
		Width:  g.Config.Width,
		Height: g.Config.Height,
		Score1: g.Score1,
		Score2: g.Score2,
		Turn:   g.Turn,
	}
}
