package session

const (
	pointsPerLevel = 100
	maxLevel       = 20

	completionBasePoints     = 30
	completionPointsPerLevel = 5
)

// Level derives a learner level from a cumulative score: one level per 100
// points, starting at 1 and capped at 20.
func Level(score int) int {
	return min(maxLevel, score/pointsPerLevel+1)
}

// CompletionPoints is the reward for finishing a topic at the given level.
func CompletionPoints(level int) int {
	return completionBasePoints + completionPointsPerLevel*level
}
