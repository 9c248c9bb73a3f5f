package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi/placement-autofill/internal/matching"
	"github.com/rishi/placement-autofill/internal/types"
)

func selectControl(rootLabel string, options ...string) types.Control {
	ctl := types.Control{Type: types.ControlSelect, RootLabel: rootLabel}
	for _, o := range options {
		ctl.Options = append(ctl.Options, types.Option{Label: o})
	}
	return ctl
}

func radioControl(rootLabel string, options ...string) types.Control {
	ctl := selectControl(rootLabel, options...)
	ctl.Type = types.ControlRadio
	return ctl
}

func TestMatchSelectControl(t *testing.T) {
	t.Run("no options yields nothing", func(t *testing.T) {
		ctl := types.Control{Type: types.ControlSelect, RootLabel: "Branch"}
		_, ok := matchSelectControl(&ctl, testProfile)
		assert.False(t, ok)
	})

	t.Run("matched field picks the best option", func(t *testing.T) {
		ctl := selectControl("Branch", "CSE", "ECE", "MECH")
		c, ok := matchSelectControl(&ctl, testProfile)
		require.True(t, ok)
		assert.Equal(t, types.FieldBranch, c.Key)
		require.NotNil(t, c.Chosen)
		assert.Equal(t, "CSE", c.Chosen.Label)
		assert.Equal(t, matching.SelectChosenScore, c.Score)
	})

	t.Run("anonymous label falls back to prioritized profile fields", func(t *testing.T) {
		ctl := selectControl("Pick an answer", "Computer Science", "Commerce", "Arts")
		c, ok := matchSelectControl(&ctl, testProfile)
		require.True(t, ok)
		assert.Equal(t, types.FieldBranch, c.Key)
		require.NotNil(t, c.Chosen)
		assert.Equal(t, "Computer Science", c.Chosen.Label)
	})

	t.Run("no option relates to the profile", func(t *testing.T) {
		ctl := selectControl("Pick an answer", "Red", "Green", "Blue")
		_, ok := matchSelectControl(&ctl, testProfile)
		assert.False(t, ok)
	})
}

func TestMatchSelectControlBacklogNumeric(t *testing.T) {
	ctl := selectControl("Number of Active Backlogs", "0", "1", "2 or more")
	c, ok := matchSelectControl(&ctl, testProfile)
	require.True(t, ok)
	assert.Equal(t, types.FieldBacklogCount, c.Key)
	require.NotNil(t, c.Chosen)
	assert.Equal(t, "0", c.Chosen.Label)
	assert.Equal(t, matching.BacklogNumericScore, c.Score)
}

func TestMatchSelectControlGraduationYearOverride(t *testing.T) {
	// both options token-overlap the branch equally, so scoring alone
	// lands on the first; the literal year substring must flip it
	ctl := selectControl("Graduating in", "CSE - 2024", "CSE - 2025")
	c, ok := matchSelectControl(&ctl, testProfile)
	require.True(t, ok)
	assert.Equal(t, types.FieldGraduationYear, c.Key)
	require.NotNil(t, c.Chosen)
	assert.Equal(t, "CSE - 2025", c.Chosen.Label)
}

func TestMatchRadioControl(t *testing.T) {
	t.Run("gender group", func(t *testing.T) {
		ctl := radioControl("Gender", "Male", "Female", "Other")
		c, ok := matchRadioControl(&ctl, testProfile)
		require.True(t, ok)
		assert.Equal(t, types.FieldGender, c.Key)
		assert.Equal(t, "Male", c.ChosenLabel)
		assert.Equal(t, matching.ScoreExact, c.Score)
	})

	t.Run("relocation yes/no clears the raised floor", func(t *testing.T) {
		ctl := radioControl("Willing to relocate", "Yes", "No")
		c, ok := matchRadioControl(&ctl, testProfile)
		require.True(t, ok)
		assert.Equal(t, types.FieldRelocate, c.Key)
		assert.Equal(t, "Yes", c.ChosenLabel)
	})

	t.Run("anonymous yes/no group produces nothing", func(t *testing.T) {
		ctl := radioControl("Select one", "Yes", "No")
		_, ok := matchRadioControl(&ctl, testProfile)
		assert.False(t, ok)
	})

	t.Run("conditional question produces nothing", func(t *testing.T) {
		ctl := radioControl("Are you willing to relocate immediately?", "Yes", "No")
		_, ok := matchRadioControl(&ctl, testProfile)
		assert.False(t, ok)
	})

	t.Run("weak overlap stays below the floor", func(t *testing.T) {
		ctl := radioControl("Session preference", "Morning", "Evening")
		profile := types.Profile{types.FieldFullName: "Rishi Kumar"}
		_, ok := matchRadioControl(&ctl, profile)
		assert.False(t, ok)
	})

	t.Run("no options yields nothing", func(t *testing.T) {
		ctl := types.Control{Type: types.ControlRadio, RootLabel: "Gender"}
		_, ok := matchRadioControl(&ctl, testProfile)
		assert.False(t, ok)
	})
}

func TestMatchRadioControlOtherPenalty(t *testing.T) {
	ctl := radioControl("Branch", "CSE", "Other")
	profile := types.Profile{types.FieldBranch: "Other"}
	c, ok := matchRadioControl(&ctl, profile)
	require.True(t, ok)
	assert.Equal(t, "Other", c.ChosenLabel)
	assert.Equal(t, matching.ScoreExact-matching.OtherOptionPenalty, c.Score)
}

func TestMatchRadioControlGenderCorroboratedByOptions(t *testing.T) {
	// the label says nothing about gender, but a gender-shaped option
	// corroborates it, so the value may be used and keeps the gender key
	ctl := radioControl("Preferred track", "Male voice coaching", "Instrumental")
	profile := types.Profile{types.FieldGender: "Male"}

	c, ok := matchRadioControl(&ctl, profile)
	require.True(t, ok)
	assert.Equal(t, types.FieldGender, c.Key)
	assert.Equal(t, "Male voice coaching", c.ChosenLabel)
}

func TestRadioCandidateValuesGating(t *testing.T) {
	tests := []struct {
		name       string
		ctl        types.Control
		matchedKey string
		wantGender bool
	}{
		{
			name:       "gender label includes the gender value",
			ctl:        radioControl("Gender", "Male", "Female"),
			wantGender: true,
		},
		{
			name:       "gender-shaped options include the gender value",
			ctl:        radioControl("Select", "Male", "Female"),
			wantGender: true,
		},
		{
			name:       "unrelated question excludes the gender value",
			ctl:        radioControl("Preferred session", "Morning", "Evening"),
			wantGender: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := radioCandidateValues(&tt.ctl, testProfile, tt.ctl.CombinedLabel(), tt.matchedKey)
			found := false
			for _, fv := range values {
				if fv.Key == types.FieldGender {
					found = true
				}
			}
			assert.Equal(t, tt.wantGender, found)
		})
	}
}

func TestMatchCheckboxControl(t *testing.T) {
	t.Run("matched field selects overlapping options", func(t *testing.T) {
		ctl := radioControl("Preferred Branch", "Computer Science", "Electronics", "Civil")
		ctl.Type = types.ControlCheckbox
		c, ok := matchCheckboxControl(&ctl, testProfile)
		require.True(t, ok)
		assert.Equal(t, types.FieldBranch, c.Key)
		assert.Equal(t, []string{"Computer Science"}, c.ChosenLabels)
		assert.Equal(t, matching.CheckboxScore, c.Score)
	})

	t.Run("anonymous label falls back to prioritized fields", func(t *testing.T) {
		ctl := radioControl("Tick the applicable", "Computer Science stream", "Commerce")
		ctl.Type = types.ControlCheckbox
		c, ok := matchCheckboxControl(&ctl, testProfile)
		require.True(t, ok)
		assert.Equal(t, types.FieldBranch, c.Key)
		assert.Equal(t, []string{"Computer Science stream"}, c.ChosenLabels)
	})

	t.Run("anonymous yes/no group produces nothing", func(t *testing.T) {
		ctl := radioControl("Select one", "Yes", "No")
		ctl.Type = types.ControlCheckbox
		_, ok := matchCheckboxControl(&ctl, testProfile)
		assert.False(t, ok)
	})

	t.Run("conditional question produces nothing", func(t *testing.T) {
		ctl := radioControl("Do you agree to the terms below?", "I agree")
		ctl.Type = types.ControlCheckbox
		_, ok := matchCheckboxControl(&ctl, testProfile)
		assert.False(t, ok)
	})

	t.Run("no overlap yields nothing", func(t *testing.T) {
		ctl := radioControl("Tick the applicable", "Red", "Green")
		ctl.Type = types.ControlCheckbox
		_, ok := matchCheckboxControl(&ctl, testProfile)
		assert.False(t, ok)
	})
}

func TestScoreOptionUsesValueToo(t *testing.T) {
	opt := types.Option{Label: "Pick me", Value: "cse"}
	withValue := scoreOption("computer science", &opt)
	assert.Equal(t, matching.ScoreExact, withValue)

	labelOnly := scoreOption("computer science", &types.Option{Label: "Pick me"})
	assert.Less(t, labelOnly, withValue)
}
