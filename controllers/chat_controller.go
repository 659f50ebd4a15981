package controllers

import (
	"encoding/json"
	"net/http"

	"sponsorlink_server/middleware"
	"sponsorlink_server/services"

	"github.com/gorilla/mux"
)

// ChatController handles the per-match message log
type ChatController struct {
	ChatService    *services.ChatService
	MatchService   *services.MatchService
	ProfileService *services.ProfileService
}

// NewChatController initializes the chat controller
func NewChatController(chatService *services.ChatService, matchService *services.MatchService, profileService *services.ProfileService) *ChatController {
	return &ChatController{ChatService: chatService, MatchService: matchService, ProfileService: profileService}
}

// HandleGetMessages returns the full ordered log of a match
func (cc *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	if !cc.authorizeParticipant(w, r, matchID) {
		return
	}

	messages, err := cc.ChatService.ListMessages(r.Context(), matchID)
	if err != nil {
		respondError(w, err, "Failed to fetch messages")
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

// HandleSendMessage appends one message to the match's log
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	var request struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	if !cc.authorizeParticipant(w, r, matchID) {
		return
	}

	senderID := middleware.GetUserID(r.Context())

	// Denormalize the sender's display name at write time.
	senderName := ""
	if profile, err := cc.ProfileService.GetProfile(r.Context(), senderID); err == nil {
		senderName = profile.DisplayName()
	}

	message, err := cc.ChatService.AppendMessage(r.Context(), matchID, senderID, senderName, request.Text)
	if err != nil {
		respondError(w, err, "Failed to send message")
		return
	}
	respondJSON(w, http.StatusCreated, message)
}

// authorizeParticipant resolves the match and rejects callers that are not
// one of its two participants. A foreign match is indistinguishable from a
// missing one.
func (cc *ChatController) authorizeParticipant(w http.ResponseWriter, r *http.Request, matchID string) bool {
	match, err := cc.MatchService.GetMatchByID(r.Context(), matchID)
	if err != nil {
		respondError(w, err, "Failed to resolve match")
		return false
	}
	if !match.HasParticipant(middleware.GetUserID(r.Context())) {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return false
	}
	return true
}
