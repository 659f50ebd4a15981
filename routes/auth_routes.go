package routes

import (
	"sponsorlink_server/controllers"
	"sponsorlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up routes for account operations under /api/auth
func RegisterAuthRoutes(r *mux.Router, authService *services.AuthService) {
	controller := controllers.NewAuthController(authService)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/signup", controller.HandleSignup).Methods("POST")
	authRouter.HandleFunc("/login", controller.HandleLogin).Methods("POST")
}
