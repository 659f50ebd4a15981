package routes

import (
	"sponsorlink_server/controllers"
	"sponsorlink_server/middleware"
	"sponsorlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up routes for swipe actions under /api/action
func RegisterActionRoutes(r *mux.Router, profileService *services.ProfileService, matchService *services.MatchService, jwtSecret []byte) {
	controller := controllers.NewActionController(profileService, matchService)

	actionRouter := r.PathPrefix("/api/action").Subrouter()
	actionRouter.Use(middleware.Auth(jwtSecret))
	actionRouter.HandleFunc("/swipe", controller.HandleSwipe).Methods("POST")
}
