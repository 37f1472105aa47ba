package service

import (
	"testing"

	"team-scheduler/modules/schedule/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vote(first, second, third int) entity.ScheduleVote {
	return entity.ScheduleVote{
		FirstChoice:  first,
		SecondChoice: second,
		ThirdChoice:  third,
	}
}

func TestTallyVotes_BordaScoring(t *testing.T) {
	votes := []entity.ScheduleVote{
		vote(1, 2, 3),
		vote(1, 3, 2),
		vote(2, 1, 3),
	}

	result := TallyVotes(votes)

	require.NotNil(t, result)
	assert.Equal(t, 1, result.WinningOption)
	assert.Equal(t, entity.FinalScores{"1": 8, "2": 6, "3": 4}, result.Scores)
}

func TestTallyVotes_TieGoesToLowerOption(t *testing.T) {
	// Options 1 and 2 both end on 5 points.
	votes := []entity.ScheduleVote{
		vote(1, 2, 3),
		vote(2, 1, 3),
	}

	result := TallyVotes(votes)

	require.NotNil(t, result)
	assert.Equal(t, 5, result.Scores["1"])
	assert.Equal(t, 5, result.Scores["2"])
	assert.Equal(t, 1, result.WinningOption)
}

func TestTallyVotes_NoVotes(t *testing.T) {
	assert.Nil(t, TallyVotes(nil))
	assert.Nil(t, TallyVotes([]entity.ScheduleVote{}))
}

func TestTallyVotes_SingleVote(t *testing.T) {
	result := TallyVotes([]entity.ScheduleVote{vote(3, 1, 2)})

	require.NotNil(t, result)
	assert.Equal(t, 3, result.WinningOption)
	assert.Equal(t, entity.FinalScores{"1": 2, "2": 1, "3": 3}, result.Scores)
}

func TestTallyVotes_OutOfRangeChoicesIgnored(t *testing.T) {
	result := TallyVotes([]entity.ScheduleVote{vote(1, 5, 0)})

	require.NotNil(t, result)
	assert.Equal(t, 1, result.WinningOption)
	assert.Equal(t, entity.FinalScores{"1": 3, "2": 0, "3": 0}, result.Scores)
}

func TestTallyVotes_Deterministic(t *testing.T) {
	votes := []entity.ScheduleVote{
		vote(2, 3, 1),
		vote(3, 2, 1),
		vote(2, 1, 3),
		vote(1, 2, 3),
	}

	first := TallyVotes(votes)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, TallyVotes(votes))
	}
}
