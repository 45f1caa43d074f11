package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/adisantoso/toko-bangunan/internal/auth"
)

// LoginHandler godoc
// @Summary Authenticate for the admin dashboard and return a JWT token
// @Description Password-only login; a failed attempt can simply be retried
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "admin password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if !passwordVerifier.Verify(req.Password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateAdminToken()
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, LoginResult{Token: token}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
