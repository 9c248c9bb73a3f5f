package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi/placement-autofill/internal/types"
)

func TestMergeCandidatesByRoot(t *testing.T) {
	in := []types.Candidate{
		{
			Type:      types.ControlText,
			Label:     "Email Address",
			Key:       types.FieldEmail,
			Value:     "rishi@example.com",
			Score:     110,
			Selectors: []string{"#a"},
			RootID:    "q1",
		},
		{
			Type:         types.ControlText,
			Label:        "Email Address",
			Key:          "fallback",
			Value:        "rishi@example.com",
			Score:        50,
			Selectors:    []string{"#b"},
			RootSelector: "#q1",
			RootID:       "q1",
		},
	}

	out := mergeCandidates(in)
	require.Len(t, out, 1)
	assert.Equal(t, types.FieldEmail, out[0].Key)
	assert.Equal(t, 110, out[0].Score)
	assert.ElementsMatch(t, []string{"#a", "#b"}, out[0].Selectors)
	// the loser still contributes its root selector
	assert.Equal(t, "#q1", out[0].RootSelector)
}

func TestMergeCandidatesHigherScoreWinsRegardlessOfOrder(t *testing.T) {
	low := types.Candidate{Label: "Phone", Key: "fallback", Value: "x", Score: 50, RootID: "q1"}
	high := types.Candidate{Label: "Phone", Key: types.FieldPhone, Value: "9876543210", Score: 100, RootID: "q1"}

	out := mergeCandidates([]types.Candidate{low, high})
	require.Len(t, out, 1)
	assert.Equal(t, types.FieldPhone, out[0].Key)
	assert.Equal(t, "9876543210", out[0].Value)

	out = mergeCandidates([]types.Candidate{high, low})
	require.Len(t, out, 1)
	assert.Equal(t, types.FieldPhone, out[0].Key)
}

func TestMergeCandidatesByNormalizedLabel(t *testing.T) {
	in := []types.Candidate{
		{Label: "E-Mail Address", Key: types.FieldEmail, Score: 70},
		{Label: "e mail address", Key: "fallback", Score: 50},
	}

	out := mergeCandidates(in)
	require.Len(t, out, 1)
	assert.Equal(t, types.FieldEmail, out[0].Key)
}

func TestMergeCandidatesKeepsDistinctQuestions(t *testing.T) {
	in := []types.Candidate{
		{Label: "Email", Key: types.FieldEmail, Score: 70, RootID: "q1"},
		{Label: "Email", Key: types.FieldEmail, Score: 70, RootID: "q2"},
		{Label: "Phone", Key: types.FieldPhone, Score: 70},
	}

	out := mergeCandidates(in)
	assert.Len(t, out, 3)
}

func TestMergeCandidatesUnionsOptions(t *testing.T) {
	in := []types.Candidate{
		{
			Label:   "Branch",
			Key:     types.FieldBranch,
			Score:   80,
			Options: []types.Option{{Label: "CSE"}, {Label: "ECE"}},
			RootID:  "q1",
		},
		{
			Label:   "Branch",
			Key:     types.FieldBranch,
			Score:   50,
			Options: []types.Option{{Label: "ECE"}, {Label: "MECH"}},
			RootID:  "q1",
		},
	}

	out := mergeCandidates(in)
	require.Len(t, out, 1)
	require.Len(t, out[0].Options, 3)
	labels := make([]string, 0, 3)
	for _, o := range out[0].Options {
		labels = append(labels, o.Label)
	}
	assert.Equal(t, []string{"CSE", "ECE", "MECH"}, labels)
}

func TestProfileMatchCandidatesOrderAndFiltering(t *testing.T) {
	profile := types.Profile{
		types.FieldEmail:   "Rishi@Example.com",
		types.FieldBranch:  "  Computer Science  ",
		types.FieldCollege: "",
	}

	got := profileMatchCandidates(profile)
	require.Len(t, got, 2)
	assert.Equal(t, types.FieldBranch, got[0].Key)
	assert.Equal(t, "computer science", got[0].Value)
	assert.Equal(t, types.FieldEmail, got[1].Key)
	assert.Equal(t, "rishi@example.com", got[1].Value)
}
