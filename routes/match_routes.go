package routes

import (
	"sponsorlink_server/controllers"
	"sponsorlink_server/middleware"
	"sponsorlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for the conversation index
func RegisterMatchRoutes(r *mux.Router, conversationService *services.ConversationService, jwtSecret []byte) {
	controller := controllers.NewMatchController(conversationService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.Use(middleware.Auth(jwtSecret))
	matchRouter.HandleFunc("", controller.HandleGetConversations).Methods("GET")
}
