package controllers

import (
	"net/http"

	"sponsorlink_server/middleware"
	"sponsorlink_server/services"
)

// MatchController handles the conversation index
type MatchController struct {
	ConversationService *services.ConversationService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(conversationService *services.ConversationService) *MatchController {
	return &MatchController{ConversationService: conversationService}
}

// HandleGetConversations lists the caller's active matches with counterpart
// identity and last message, newest match first
func (mc *MatchController) HandleGetConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := mc.ConversationService.ListConversations(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondError(w, err, "Failed to fetch conversations")
		return
	}
	respondJSON(w, http.StatusOK, conversations)
}
