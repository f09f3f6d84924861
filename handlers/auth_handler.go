package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"habitTrackerAPI/internal/user"
	"habitTrackerAPI/services"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			respondWithError(w, http.StatusConflict, "Username already taken")
			return
		}
		log.Printf("Register Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, u2, err := h.userService.Authenticate(ctx, &user.LoginRequest{Username: req.Username, Password: req.Password})
	if err != nil {
		// The account exists; the client can still log in explicitly.
		log.Printf("Register Handler: post-register login failed: %v", err)
		respondWithJSON(w, http.StatusCreated, user.AuthResponse{User: u})
		return
	}

	respondWithJSON(w, http.StatusCreated, user.AuthResponse{Token: token, User: u2})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, u, err := h.userService.Authenticate(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		log.Printf("Login Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	respondWithJSON(w, http.StatusOK, user.AuthResponse{Token: token, User: u})
}
