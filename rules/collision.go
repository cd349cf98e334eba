package rules

// Reset causes, in the order the resolver checks them.
const (
	// ResetCauseWallCollision is when a snake tries to run off the board.
	ResetCauseWallCollision = "wall-collision"
	// ResetCauseSelfCollision is when a snake's head lands on its own body.
	ResetCauseSelfCollision = "self-collision"
	// ResetCauseHeadToHead is when both heads occupy the identical cell.
	ResetCauseHeadToHead = "head-collision"
	// ResetCauseBodyCollision is when a head lands on the opponent's body.
	ResetCauseBodyCollision = "snake-collision"
)

// CollisionPolicy holds the configurable scoring variants for collisions.
// The canonical baseline resets with no transfer on wall and self
// collisions and awards the uninjured snake on a head-to-body collision.
// Historical rule sets disagreed here, hence the knobs.
type CollisionPolicy struct {
	// WallSelfAward is credited to the opponent when a snake is reset by a
	// wall or self collision. Zero in the canonical baseline.
	WallSelfAward int64
	// HeadToBodyAward is credited to the surviving snake when the other
	// snake runs into its body.
	HeadToBodyAward int64
}

// DefaultCollisionPolicy returns the canonical baseline with the award for
// a head-to-body collision set to one base capture unit.
func DefaultCollisionPolicy(scoring Scoring) CollisionPolicy {
	return CollisionPolicy{
		WallSelfAward:   0,
		HeadToBodyAward: scoring.BasePoints,
	}
}

// ResetUpdate describes one agent reset decided by the resolver. Award is
// the number of points credited to the opponent of the reset snake.
type ResetUpdate struct {
	SnakeID int
	Cause   string
	Award   int64
}

// ResolveCollisions inspects both agents after their moves and decides
// which must be reset. Rules run in a fixed order per agent so the outcome
// is deterministic when several conditions trigger at once: wall exit,
// self collision, head-to-head, head-to-body. The first matching rule wins
// and an agent is reset by at most one rule per tick.
func ResolveCollisions(s1, s2 *Snake, moved1, moved2 bool, policy CollisionPolicy) []ResetUpdate {
	updates := []ResetUpdate{}

	headToHead := s1.Head().Equal(s2.Head())

	for _, agent := range []struct {
		id    int
		snake *Snake
		other *Snake
		moved bool
	}{
		{1, s1, s2, moved1},
		{2, s2, s1, moved2},
	} {
		if !agent.moved {
			updates = append(updates, ResetUpdate{
				SnakeID: agent.id,
				Cause:   ResetCauseWallCollision,
				Award:   policy.WallSelfAward,
			})
			continue
		}
		if selfCollision(agent.snake) {
			updates = append(updates, ResetUpdate{
				SnakeID: agent.id,
				Cause:   ResetCauseSelfCollision,
				Award:   policy.WallSelfAward,
			})
			continue
		}
		if headToHead {
			updates = append(updates, ResetUpdate{
				SnakeID: agent.id,
				Cause:   ResetCauseHeadToHead,
			})
			continue
		}
		if bodyCollision(agent.snake, agent.other) {
			updates = append(updates, ResetUpdate{
				SnakeID: agent.id,
				Cause:   ResetCauseBodyCollision,
				Award:   policy.HeadToBodyAward,
			})
		}
	}

	return updates
}

func selfCollision(s *Snake) bool {
	head := s.Head()
	for _, b := range s.Body[1:] {
		if head.Equal(b) {
			return true
		}
	}
	return false
}

// bodyCollision checks the head against the opponent's body excluding the
// opponent's head, which the head-to-head rule already covers.
func bodyCollision(s, other *Snake) bool {
	head := s.Head()
	for _, b := range other.Body[1:] {
		if head.Equal(b) {
			return true
		}
	}
	return false
}
