package rules

// Scoring holds the point parameters for food captures. Captures are
// strictly zero-sum: whatever the capturer gains the opponent loses.
type Scoring struct {
	BasePoints    int64
	StartingScore int64
	WinningScore  int64
}

// DefaultScoring returns the standard duel parameters.
func DefaultScoring() Scoring {
	return Scoring{
		BasePoints:    2000,
		StartingScore: 50000,
		WinningScore:  100000,
	}
}

// Points returns the capture value for a snake of the given length:
// BasePoints * 2^(length-2). The length is the capturer's body length at
// capture time, after the move that landed on the food has grown it.
func (sc Scoring) Points(length int) int64 {
	exp := length - 2
	if exp < 0 {
		exp = 0
	}
	return sc.BasePoints << uint(exp)
}

// Won reports whether a score has reached the winning threshold.
func (sc Scoring) Won(score int64) bool {
	return score >= sc.WinningScore
}
