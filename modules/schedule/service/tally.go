package service

import (
	"strconv"

	"team-scheduler/modules/schedule/entity"
)

// Borda points awarded to first/second/third choices
const (
	firstChoicePoints  = 3
	secondChoicePoints = 2
	thirdChoicePoints  = 1
)

// TallyVotes applies Borda-style scoring across all votes: 3 points to each
// first choice, 2 to each second, 1 to each third. The winner is the option
// with the strictly highest total scanning options 1..3, so the
// lower-numbered option wins ties. Returns nil when there are no votes -
// "tally not ready", not an error.
func TallyVotes(votes []entity.ScheduleVote) *entity.TallyResult {
	if len(votes) == 0 {
		return nil
	}

	scores := map[int]int{1: 0, 2: 0, 3: 0}
	for _, vote := range votes {
		addPoints(scores, vote.FirstChoice, firstChoicePoints)
		addPoints(scores, vote.SecondChoice, secondChoicePoints)
		addPoints(scores, vote.ThirdChoice, thirdChoicePoints)
	}

	winningOption := -1
	maxScore := -1
	for option := 1; option <= 3; option++ {
		if scores[option] > maxScore {
			maxScore = scores[option]
			winningOption = option
		}
	}

	final := make(entity.FinalScores, 3)
	for option, points := range scores {
		final[strconv.Itoa(option)] = points
	}

	return &entity.TallyResult{
		WinningOption: winningOption,
		Scores:        final,
	}
}

// addPoints ignores out-of-range choices so a malformed vote cannot skew
// the accumulators.
func addPoints(scores map[int]int, choice, points int) {
	if choice >= 1 && choice <= 3 {
		scores[choice] += points
	}
}
