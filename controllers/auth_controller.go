package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sponsorlink_server/models"
	"sponsorlink_server/services"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AuthController handles account creation and login
type AuthController struct {
	AuthService *services.AuthService
}

// NewAuthController creates a new AuthController instance
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// HandleSignup creates a new account and returns a signed token
func (ac *AuthController) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		UserType string `json:"userType" validate:"required,oneof=athlete sponsor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if err := validate.Struct(request); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	user, token, err := ac.AuthService.Signup(r.Context(), request.Email, request.Password, request.UserType)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		respondError(w, err, "Failed to create account")
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

// HandleLogin verifies credentials and returns a signed token
func (ac *AuthController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if err := validate.Struct(request); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	user, token, err := ac.AuthService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}
		respondError(w, err, "Failed to log in")
		return
	}

	respondJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}
