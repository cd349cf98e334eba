package rules

import (
	log "github.com/sirupsen/logrus"
)

// Capture records one food capture and its zero-sum transfer.
type Capture struct {
	SnakeID int
	Points  int64
}

// TickResult is what one call to AdvanceTick produced. Winner is 0 while
// the game is still running.
type TickResult struct {
	Resets   []ResetUpdate
	Captures []Capture
	Winner   int
}

// AdvanceTick runs the game one tick: apply both pending moves, resolve
// collisions in the fixed order, transfer capture points and respawn food.
// Wall-clock pacing is entirely the caller's concern; the batch runner
// calls this in a tight loop while a live viewer paces it.
func AdvanceTick(g *Game, move1, move2 Direction) (*TickResult, error) {
	g.Turn++
	result := &TickResult{}

	applyDirection(g, 1, move1)
	applyDirection(g, 2, move2)

	moved1 := g.Snake1.Move(g.Config.Width, g.Config.Height, g.Food)
	moved2 := g.Snake2.Move(g.Config.Width, g.Config.Height, g.Food)

	// Collision resolution sees the post-move bodies; resets and awards
	// are applied before captures so a reset snake cannot also capture
	// from its crash cell.
	result.Resets = ResolveCollisions(g.Snake1, g.Snake2, moved1, moved2, g.Config.Policy)
	for _, ru := range result.Resets {
		log.WithFields(log.Fields{
			"GameID":  g.ID,
			"Turn":    g.Turn,
			"SnakeID": ru.SnakeID,
			"Cause":   ru.Cause,
		}).Debug("snake reset")
		g.ResetSnake(ru.SnakeID)
		if ru.Award != 0 {
			g.addScore(opponentOf(ru.SnakeID), ru.Award)
		}
	}
	if winner := g.checkWin(); winner != 0 {
		result.Winner = winner
		return result, nil
	}

	for _, id := range []int{1, 2} {
		capture := g.checkCapture(id)
		if capture == nil {
			continue
		}
		result.Captures = append(result.Captures, *capture)
		if g.Config.Scoring.Won(g.score(id)) {
			// No food is placed after a winning capture.
			result.Winner = id
			return result, nil
		}
		food, err := g.spawner.Spawn(g.Config.Width, g.Config.Height, g.Snake1, g.Snake2)
		if err != nil {
			return result, err
		}
		g.Food = food
	}

	return result, nil
}

func applyDirection(g *Game, id int, d Direction) {
	if !d.Valid() {
		// A misbehaving strategy produced something outside the enum.
		// Treat it as a configuration fault: log it and keep the heading.
		log.WithFields(log.Fields{
			"GameID":    g.ID,
			"Turn":      g.Turn,
			"SnakeID":   id,
			"Direction": d,
		}).Warn("ignoring non-canonical direction")
		return
	}
	g.snake(id).SetDirection(d)
}

func (g *Game) checkCapture(id int) *Capture {
	snake := g.snake(id)
	if !snake.Head().Equal(g.Food) {
		return nil
	}
	points := g.Config.Scoring.Points(snake.Length())
	g.addScore(id, points)
	g.addScore(opponentOf(id), -points)
	log.WithFields(log.Fields{
		"GameID":  g.ID,
		"Turn":    g.Turn,
		"SnakeID": id,
		"Points":  points,
		"Length":  snake.Length(),
	}).Debug("snake ate")
	return &Capture{SnakeID: id, Points: points}
}

func (g *Game) checkWin() int {
	if g.Config.Scoring.Won(g.Score1) {
		return 1
	}
	if g.Config.Scoring.Won(g.Score2) {
		return 2
	}
	return 0
}

func opponentOf(id int) int {
	return 3 - id
}
