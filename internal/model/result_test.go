package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outcome Outcome
		want    string
		isError bool
	}{
		{OutcomeRanked, "ranked", false},
		{OutcomeNoMatches, "no_matches", false},
		{OutcomeUnknownCity, "unknown_city", true},
		{OutcomeDatasetError, "dataset_error", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, string(tt.outcome))
			assert.Equal(t, tt.isError, tt.outcome.IsError())
		})
	}
}

func TestResultSet_Empty(t *testing.T) {
	t.Parallel()

	var nilSet *ResultSet
	assert.True(t, nilSet.Empty())
	assert.Equal(t, 0, nilSet.Len())

	assert.True(t, (&ResultSet{Outcome: OutcomeNoMatches}).Empty())
	assert.True(t, (&ResultSet{Outcome: OutcomeRanked}).Empty())

	rs := &ResultSet{
		Outcome: OutcomeRanked,
		Places:  []ScoredPlace{{Place: Place{City: "Agra"}}},
	}
	assert.False(t, rs.Empty())
	assert.Equal(t, 1, rs.Len())
}
