package routes

import (
	"sponsorlink_server/controllers"
	"sponsorlink_server/middleware"
	"sponsorlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for the message log under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, matchService *services.MatchService, profileService *services.ProfileService, jwtSecret []byte) {
	controller := controllers.NewChatController(chatService, matchService, profileService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.Use(middleware.Auth(jwtSecret))
	chatRouter.HandleFunc("/{matchId}/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/{matchId}/messages", controller.HandleSendMessage).Methods("POST")
}
