package routes

import (
	"sponsorlink_server/controllers"
	"sponsorlink_server/middleware"
	"sponsorlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for profile submission, lookup, and
// the discovery feeds
func RegisterProfileRoutes(r *mux.Router, profileService *services.ProfileService, jwtSecret []byte) {
	controller := controllers.NewProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profile").Subrouter()
	profileRouter.Use(middleware.Auth(jwtSecret))
	profileRouter.HandleFunc("/athlete", controller.HandleSubmitAthleteProfile).Methods("POST")
	profileRouter.HandleFunc("/sponsor", controller.HandleSubmitSponsorProfile).Methods("POST")
	profileRouter.HandleFunc("/me", controller.HandleGetMyProfile).Methods("GET")
	profileRouter.HandleFunc("/athletes", controller.HandleListAthletes).Methods("GET")
	profileRouter.HandleFunc("/sponsors", controller.HandleListSponsors).Methods("GET")

	discoverRouter := r.PathPrefix("/api/discover").Subrouter()
	discoverRouter.Use(middleware.Auth(jwtSecret))
	discoverRouter.HandleFunc("/athletes", controller.HandleDiscoverAthletes).Methods("GET")
	discoverRouter.HandleFunc("/sponsors", controller.HandleDiscoverSponsors).Methods("GET")
}
