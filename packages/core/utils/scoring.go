package utils

// PointsPerWin is the only way to earn points; there are no draws.
const PointsPerWin = 3

// StatDelta is the change applied to one player's counters by a single result.
type StatDelta struct {
	Played        int
	GoalsScored   int
	GoalsConceded int
	Won           int
	Points        int
}

type Outcome struct {
	HomeWins bool
	WinnerID uint
	LoserID  uint
	Home     StatDelta
	Away     StatDelta
}

// DecideOutcome scores one result. The home player wins only with strictly more
// goals; any other score, a tie included, goes to the away player.
func DecideOutcome(homeID, awayID uint, homeGoals, awayGoals int) Outcome {
	outcome := Outcome{
		HomeWins: homeGoals > awayGoals,
		Home:     StatDelta{Played: 1, GoalsScored: homeGoals, GoalsConceded: awayGoals},
		Away:     StatDelta{Played: 1, GoalsScored: awayGoals, GoalsConceded: homeGoals},
	}

	if outcome.HomeWins {
		outcome.WinnerID, outcome.LoserID = homeID, awayID
		outcome.Home.Won = 1
		outcome.Home.Points = PointsPerWin
	} else {
		outcome.WinnerID, outcome.LoserID = awayID, homeID
		outcome.Away.Won = 1
		outcome.Away.Points = PointsPerWin
	}

	return outcome
}
