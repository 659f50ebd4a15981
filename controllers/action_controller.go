package controllers

import (
	"encoding/json"
	"net/http"

	"sponsorlink_server/middleware"
	"sponsorlink_server/models"
	"sponsorlink_server/services"
)

// ActionController handles swipe actions
type ActionController struct {
	ProfileService *services.ProfileService
	MatchService   *services.MatchService
}

// NewActionController creates a new ActionController instance
func NewActionController(profileService *services.ProfileService, matchService *services.MatchService) *ActionController {
	return &ActionController{ProfileService: profileService, MatchService: matchService}
}

// HandleSwipe records a like/pass on the target profile and, for a like,
// resolves whether a match now exists
func (ac *ActionController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TargetID string `json:"targetId" validate:"required"`
		Action   string `json:"action" validate:"required,oneof=like pass"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if err := validate.Struct(request); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	actorID := middleware.GetUserID(r.Context())
	if _, err := ac.ProfileService.ApplySwipeAction(r.Context(), request.TargetID, request.Action, actorID); err != nil {
		respondError(w, err, "Failed to record swipe")
		return
	}

	if request.Action == models.ActionPass {
		respondJSON(w, http.StatusOK, services.MatchResult{Matched: false})
		return
	}

	result, err := ac.MatchService.ResolveMatch(r.Context(), actorID, request.TargetID)
	if err != nil {
		respondError(w, err, "Failed to resolve match")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
