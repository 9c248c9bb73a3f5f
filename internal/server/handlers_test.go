package server

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi/placement-autofill/internal/types"
)

func TestMatchSnapshot(t *testing.T) {
	profile := types.Profile{
		types.FieldEmail:    "rishi@example.com",
		types.FieldFullName: "Rishi Kumar",
	}

	t.Run("strict pass wins", func(t *testing.T) {
		snapshot := &types.FormSnapshot{Controls: []types.Control{
			{Type: types.ControlText, RootLabel: "Email Address", RootID: "q1"},
		}}

		resp := matchSnapshot(snapshot, profile)
		require.Len(t, resp.Candidates, 1)
		assert.False(t, resp.Relaxed)
		assert.Empty(t, resp.Message)
		assert.Equal(t, types.FieldEmail, resp.Candidates[0].Key)
	})

	t.Run("relaxed fallback", func(t *testing.T) {
		// the strict pass drops a text control shadowed by a choice
		// sibling; the relaxed pass still answers it by bare substring
		snapshot := &types.FormSnapshot{Controls: []types.Control{
			{Type: types.ControlText, RootLabel: "Phone", RootID: "q1", HasChoiceSibling: true},
		}}

		resp := matchSnapshot(snapshot, types.Profile{types.FieldPhone: "9876543210"})
		require.Len(t, resp.Candidates, 1)
		assert.True(t, resp.Relaxed)
		assert.Equal(t, types.FieldPhone, resp.Candidates[0].Key)
		assert.Equal(t, "9876543210", resp.Candidates[0].Value)
	})

	t.Run("nothing matched", func(t *testing.T) {
		snapshot := &types.FormSnapshot{Controls: []types.Control{
			{Type: types.ControlText, RootLabel: "Favorite color", RootID: "q1"},
		}}

		resp := matchSnapshot(snapshot, profile)
		assert.Empty(t, resp.Candidates)
		assert.False(t, resp.Relaxed)
		assert.Equal(t, "No questions matched the profile", resp.Message)
	})
}

func TestResolveSnapshot(t *testing.T) {
	s := &Server{}

	t.Run("html parsed", func(t *testing.T) {
		req := &types.MatchRequest{HTML: `<div class="question"><h3>Email</h3><input type="email" id="e"></div>`}
		snapshot, err := s.resolveSnapshot(req)
		require.NoError(t, err)
		require.Len(t, snapshot.Controls, 1)
		assert.Equal(t, "Email", snapshot.Controls[0].RootLabel)
	})

	t.Run("snapshot passed through", func(t *testing.T) {
		given := &types.FormSnapshot{Title: "Form"}
		snapshot, err := s.resolveSnapshot(&types.MatchRequest{Snapshot: given})
		require.NoError(t, err)
		assert.Same(t, given, snapshot)
	})

	t.Run("both rejected", func(t *testing.T) {
		_, err := s.resolveSnapshot(&types.MatchRequest{
			HTML:     "<html></html>",
			Snapshot: &types.FormSnapshot{},
		})
		var vErr *ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Message, "mutually exclusive")
	})

	t.Run("neither rejected", func(t *testing.T) {
		_, err := s.resolveSnapshot(&types.MatchRequest{})
		var vErr *ErrValidation
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestResolveProfile(t *testing.T) {
	s := &Server{}
	r := httptest.NewRequest("POST", "/match", nil)

	t.Run("inline profile wins", func(t *testing.T) {
		inline := types.Profile{types.FieldEmail: "rishi@example.com"}
		got, err := s.resolveProfile(r, "ignored", inline)
		require.NoError(t, err)
		assert.Equal(t, inline, got)
	})

	t.Run("missing both", func(t *testing.T) {
		_, err := s.resolveProfile(r, "", nil)
		var vErr *ErrValidation
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("named profile needs auth", func(t *testing.T) {
		_, err := s.resolveProfile(r.WithContext(context.Background()), "campus", nil)
		var credErr *ErrInvalidCredentials
		assert.ErrorAs(t, err, &credErr)
	})
}
