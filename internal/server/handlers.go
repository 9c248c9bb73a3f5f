package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rishi/placement-autofill/internal/assembler"
	"github.com/rishi/placement-autofill/internal/db"
	"github.com/rishi/placement-autofill/internal/fetch"
	"github.com/rishi/placement-autofill/internal/formdom"
	"github.com/rishi/placement-autofill/internal/server/middleware"
	"github.com/rishi/placement-autofill/internal/types"
)

// handleMatch matches a submitted form against a profile and returns fill
// candidates. The form arrives either as raw HTML or as a pre-parsed
// snapshot; the profile is inline or a named profile of the authenticated
// user.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snapshot, err := s.resolveSnapshot(&req)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := s.resolveProfile(r, req.ProfileName, req.Profile)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, matchSnapshot(snapshot, profile))
}

// handleMatchURL fetches a form page, rendering it in the headless browser
// when needed, then matches it like handleMatch.
func (s *Server) handleMatchURL(w http.ResponseWriter, r *http.Request) {
	var req types.MatchURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.resolveProfile(r, req.ProfileName, req.Profile)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	opts := fetch.DefaultOptions()
	opts.Timeout = 90 * time.Second
	result, err := fetch.FormPage(r.Context(), req.URL, opts, false)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	snapshot, err := formdom.Parse(result.HTML)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	snapshot.URL = req.URL
	if snapshot.Title == "" {
		snapshot.Title = result.Title
	}

	s.jsonResponse(w, http.StatusOK, matchSnapshot(snapshot, profile))
}

// matchSnapshot runs the strict pass and falls back to the relaxed pass when
// nothing matched.
func matchSnapshot(snapshot *types.FormSnapshot, profile types.Profile) *types.MatchResponse {
	candidates := assembler.Assemble(snapshot, profile)
	if len(candidates) > 0 {
		return &types.MatchResponse{Candidates: candidates}
	}

	relaxed := assembler.AssembleRelaxed(snapshot, profile)
	resp := &types.MatchResponse{Candidates: relaxed, Relaxed: len(relaxed) > 0}
	if len(relaxed) == 0 {
		resp.Message = "No questions matched the profile"
	}
	return resp
}

func (s *Server) resolveSnapshot(req *types.MatchRequest) (*types.FormSnapshot, error) {
	switch {
	case req.Snapshot != nil && req.HTML != "":
		return nil, &ErrValidation{Field: "html", Message: "html and snapshot are mutually exclusive"}
	case req.Snapshot != nil:
		return req.Snapshot, nil
	case req.HTML != "":
		snapshot, err := formdom.Parse(req.HTML)
		if err != nil {
			return nil, &ErrValidation{Field: "html", Message: err.Error()}
		}
		return snapshot, nil
	default:
		return nil, &ErrValidation{Field: "html", Message: "one of html or snapshot is required"}
	}
}

// resolveProfile prefers the inline profile; a named profile requires
// authentication and is loaded from the database.
func (s *Server) resolveProfile(r *http.Request, name string, inline types.Profile) (types.Profile, error) {
	if len(inline) > 0 {
		return inline, nil
	}
	if name == "" {
		return nil, &ErrValidation{Field: "profile", Message: "one of profile or profile_name is required"}
	}

	userID, err := middleware.GetUserID(r)
	if err != nil {
		return nil, &ErrInvalidCredentials{}
	}
	stored, err := s.db.GetProfile(r.Context(), userID, name)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, &ErrProfileNotFound{Name: name}
	}
	return stored.Fields, nil
}

// handleGetMe returns the authenticated user.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil {
		s.errorResponse(w, http.StatusNotFound, "user not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, convertDBUserToTypesUser(user))
}

// handleSaveProfile creates or replaces a named profile for the
// authenticated user.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	id, err := s.db.SaveProfile(r.Context(), userID, req.Name, req.Fields)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String(), "name": req.Name})
}

// handleListProfiles lists the authenticated user's profiles.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summaries, err := s.db.ListProfiles(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summaries == nil {
		summaries = []db.ProfileSummary{}
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleGetProfile returns one named profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	name := r.PathValue("name")
	stored, err := s.db.GetProfile(r.Context(), userID, name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrProfileNotFound{Name: name}).Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stored)
}

// handleGetLastUsedProfile returns the most recently used profile.
func (s *Server) handleGetLastUsedProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stored, err := s.db.GetLastUsedProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, "no profiles saved")
		return
	}
	s.jsonResponse(w, http.StatusOK, stored)
}

// handleMarkProfileUsed stamps a profile as last used.
func (s *Server) handleMarkProfileUsed(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	name := r.PathValue("name")
	if err := s.db.MarkProfileUsed(r.Context(), userID, name); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"name": name})
}

// handleDeleteProfile removes a named profile.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	name := r.PathValue("name")
	if err := s.db.DeleteProfile(r.Context(), userID, name); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
