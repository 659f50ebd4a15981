package controllers

import (
	"encoding/json"
	"net/http"

	"sponsorlink_server/middleware"
	"sponsorlink_server/services"
)

// ProfileController handles profile submission, lookup, and the discovery
// feeds
type ProfileController struct {
	ProfileService *services.ProfileService
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// HandleSubmitAthleteProfile creates or replaces the caller's athlete profile
func (pc *ProfileController) HandleSubmitAthleteProfile(w http.ResponseWriter, r *http.Request) {
	var input services.AthleteProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	profile, err := pc.ProfileService.SubmitAthleteProfile(r.Context(), middleware.GetUserID(r.Context()), input)
	if err != nil {
		respondError(w, err, "Failed to submit athlete profile")
		return
	}
	respondJSON(w, http.StatusCreated, profile)
}

// HandleSubmitSponsorProfile creates or replaces the caller's sponsor profile
func (pc *ProfileController) HandleSubmitSponsorProfile(w http.ResponseWriter, r *http.Request) {
	var input services.SponsorProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	profile, err := pc.ProfileService.SubmitSponsorProfile(r.Context(), middleware.GetUserID(r.Context()), input)
	if err != nil {
		respondError(w, err, "Failed to submit sponsor profile")
		return
	}
	respondJSON(w, http.StatusCreated, profile)
}

// HandleGetMyProfile returns the caller's resolved profile
func (pc *ProfileController) HandleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := pc.ProfileService.GetProfile(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondError(w, err, "Failed to fetch profile")
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleListAthletes returns every athlete profile, unfiltered
func (pc *ProfileController) HandleListAthletes(w http.ResponseWriter, r *http.Request) {
	athletes, err := pc.ProfileService.ListAthletes(r.Context())
	if err != nil {
		respondError(w, err, "Failed to list athletes")
		return
	}
	respondJSON(w, http.StatusOK, athletes)
}

// HandleListSponsors returns every sponsor profile, unfiltered
func (pc *ProfileController) HandleListSponsors(w http.ResponseWriter, r *http.Request) {
	sponsors, err := pc.ProfileService.ListSponsors(r.Context())
	if err != nil {
		respondError(w, err, "Failed to list sponsors")
		return
	}
	respondJSON(w, http.StatusOK, sponsors)
}

// HandleDiscoverAthletes returns the athlete feed for the caller
func (pc *ProfileController) HandleDiscoverAthletes(w http.ResponseWriter, r *http.Request) {
	athletes, err := pc.ProfileService.DiscoverAthletes(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondError(w, err, "Failed to fetch athlete feed")
		return
	}
	respondJSON(w, http.StatusOK, athletes)
}

// HandleDiscoverSponsors returns the sponsor feed for the caller
func (pc *ProfileController) HandleDiscoverSponsors(w http.ResponseWriter, r *http.Request) {
	sponsors, err := pc.ProfileService.DiscoverSponsors(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondError(w, err, "Failed to fetch sponsor feed")
		return
	}
	respondJSON(w, http.StatusOK, sponsors)
}
