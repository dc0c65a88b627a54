package scoring

import "fightpicks/internal/models"

// Point values per matched component. The three bonuses are independent and
// additive; hitting all three is the 900-point jackpot.
const (
	WinnerPoints = 100
	MethodPoints = 300
	RoundPoints  = 500

	// JackpotThreshold is the score at which clients fire the jackpot
	// celebration (winner + method + round all correct).
	JackpotThreshold = WinnerPoints + MethodPoints + RoundPoints
)

// Score computes the points a pick earns against a fight's official result.
// Each component only scores when both the result side and the pick side are
// set and equal; rounds are compared as integers. Unset fields never score and
// never error. Pure and deterministic: every caller that rescores a pick must
// go through this function.
func Score(pick *models.Pick, winner *models.Corner, method *models.Method, round *int) int {
	points := 0

	if winner != nil && pick.PickWinner != nil && *pick.PickWinner == *winner {
		points += WinnerPoints
	}

	if method != nil && pick.PickMethod != nil && *pick.PickMethod == *method {
		points += MethodPoints
	}

	if round != nil && pick.PickRound != nil && *pick.PickRound == *round {
		points += RoundPoints
	}

	return points
}
