package standing

// Standing is one team's aggregated row in a group table.
type Standing struct {
	Team           string
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)
