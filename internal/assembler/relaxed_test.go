package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi/placement-autofill/internal/matching"
	"github.com/rishi/placement-autofill/internal/types"
)

func TestAssembleRelaxedEmptyInputs(t *testing.T) {
	assert.Nil(t, AssembleRelaxed(nil, testProfile))
	assert.Nil(t, AssembleRelaxed(&types.FormSnapshot{
		Controls: []types.Control{textControl("q1", "Your Name")},
	}, types.Profile{}))
}

func TestAssembleRelaxedText(t *testing.T) {
	snapshot := &types.FormSnapshot{Controls: []types.Control{
		textControl("q1", "Your Name"),
		textControl("q2", "Drop your resume here"),
		textControl("q3", "Favorite color"),
	}}
	profile := types.Profile{
		types.FieldFullName:   "Rishi Kumar",
		types.FieldResumeLink: "https://example.com/resume.pdf",
	}

	candidates := AssembleRelaxed(snapshot, profile)
	require.Len(t, candidates, 2)

	assert.Equal(t, types.FieldFullName, candidates[0].Key)
	assert.Equal(t, "Rishi Kumar", candidates[0].Value)
	assert.Equal(t, matching.RelaxedScore, candidates[0].Score)
	assert.True(t, candidates[0].LowConfidence())

	assert.Equal(t, types.FieldResumeLink, candidates[1].Key)
}

func TestAssembleRelaxedSelect(t *testing.T) {
	t.Run("exact option preferred", func(t *testing.T) {
		ctl := selectControl("College", "Other", "JNTU Hyderabad")
		ctl.RootID = "q1"
		candidates := AssembleRelaxed(&types.FormSnapshot{Controls: []types.Control{ctl}}, testProfile)
		require.Len(t, candidates, 1)
		require.NotNil(t, candidates[0].Chosen)
		assert.Equal(t, "JNTU Hyderabad", candidates[0].Chosen.Label)
	})

	t.Run("first option when nothing matches exactly", func(t *testing.T) {
		ctl := selectControl("College", "Somewhere", "Elsewhere")
		ctl.RootID = "q1"
		candidates := AssembleRelaxed(&types.FormSnapshot{Controls: []types.Control{ctl}}, testProfile)
		require.Len(t, candidates, 1)
		require.NotNil(t, candidates[0].Chosen)
		assert.Equal(t, "Somewhere", candidates[0].Chosen.Label)
	})
}

func TestAssembleRelaxedRadio(t *testing.T) {
	t.Run("exact option label required", func(t *testing.T) {
		ctl := radioControl("Gender", "Male", "Female")
		ctl.RootID = "q1"
		candidates := AssembleRelaxed(&types.FormSnapshot{Controls: []types.Control{ctl}}, testProfile)
		require.Len(t, candidates, 1)
		assert.Equal(t, "Male", candidates[0].ChosenLabel)
	})

	t.Run("no exact option means no candidate", func(t *testing.T) {
		ctl := radioControl("Gender", "M", "F")
		ctl.RootID = "q1"
		candidates := AssembleRelaxed(&types.FormSnapshot{Controls: []types.Control{ctl}}, testProfile)
		assert.Empty(t, candidates)
	})
}

func TestAssembleRelaxedCheckbox(t *testing.T) {
	t.Run("option labels contained in the profile value", func(t *testing.T) {
		ctl := radioControl("Branch", "Science", "Commerce")
		ctl.Type = types.ControlCheckbox
		ctl.RootID = "q1"
		candidates := AssembleRelaxed(&types.FormSnapshot{Controls: []types.Control{ctl}}, testProfile)
		require.Len(t, candidates, 1)
		assert.Equal(t, []string{"Science"}, candidates[0].ChosenLabels)
	})

	t.Run("first option when nothing is contained", func(t *testing.T) {
		ctl := radioControl("Branch", "Alpha", "Beta")
		ctl.Type = types.ControlCheckbox
		ctl.RootID = "q1"
		candidates := AssembleRelaxed(&types.FormSnapshot{Controls: []types.Control{ctl}}, testProfile)
		require.Len(t, candidates, 1)
		assert.Equal(t, []string{"Alpha"}, candidates[0].ChosenLabels)
	})
}

func TestAssembleRelaxedSkipsConditionalQuestions(t *testing.T) {
	snapshot := &types.FormSnapshot{Controls: []types.Control{
		textControl("q1", "If you are selected, when can you relocate?"),
	}}
	assert.Empty(t, AssembleRelaxed(snapshot, testProfile))
}

func TestAssembleRelaxedTypePriority(t *testing.T) {
	// one question rendered as a radio group plus an "Other" text box: the
	// relaxed pass must address the text control
	radio := radioControl("Email", "Personal", "Work")
	radio.RootID = "q1"
	text := textControl("q1", "Email")
	snapshot := &types.FormSnapshot{Controls: []types.Control{radio, text}}

	candidates := AssembleRelaxed(snapshot, testProfile)
	require.Len(t, candidates, 1)
	assert.Equal(t, types.ControlText, candidates[0].Type)
	assert.Equal(t, "rishi@example.com", candidates[0].Value)
}

func TestGroupByRoot(t *testing.T) {
	a := textControl("q1", "Email")
	b := radioControl("Gender", "Male", "Female")
	b.RootID = "q2"
	c := textControl("q1", "Email")
	loose := types.Control{Type: types.ControlText, Label: "Anything"}

	snapshot := &types.FormSnapshot{Controls: []types.Control{a, b, c, loose}}
	groups := groupByRoot(snapshot)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 2)
	assert.Len(t, groups[1], 1)
	assert.Len(t, groups[2], 1)
}
