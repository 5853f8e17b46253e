package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/SSRGNG/ssrg-sub002/internal/actions"
	"github.com/SSRGNG/ssrg-sub002/internal/middleware"
	"github.com/SSRGNG/ssrg-sub002/internal/repositories"
	"github.com/SSRGNG/ssrg-sub002/internal/utils"
	"github.com/SSRGNG/ssrg-sub002/internal/validation"
)

// AuthHandler manages portal authentication endpoints.
type AuthHandler struct {
	Repo      *repositories.UserRepository
	Actions   *actions.Actions
	JWTSecret string
	Logger    *zap.Logger
}

func NewAuthHandler(repo *repositories.UserRepository, acts *actions.Actions, secret string, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{Repo: repo, Actions: acts, JWTSecret: secret, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler creates a portal account; researcher registrations write
// the full profile transactionally.
func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var in validation.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	WriteActionResult(w, h.Actions.RegisterUser(in), http.StatusCreated)
}

// LoginHandler exchanges credentials for a bearer token carrying the user id
// and role.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}

	user, err := h.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.JWTSecret))
	if err != nil {
		h.Logger.Error("failed to sign token", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Something went wrong")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{"token": token, "role": user.Role})
}

// MeHandler returns the calling account, with the researcher profile when
// one exists.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid credentials")
		return
	}

	user, err := h.Repo.GetByID(userID)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "user_not_found", "User not found")
		return
	}

	payload := map[string]any{"user": user}
	if user.Role == "researcher" {
		if researcher, err := h.Repo.GetResearcherByUserID(user.ID); err == nil {
			payload["researcher"] = researcher
		}
	}
	utils.JSON(w, http.StatusOK, payload)
}

// UpdateProfileHandler lets a researcher replace their own profile and
// expertise/education lists.
func (h *AuthHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid credentials")
		return
	}

	var in validation.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	WriteActionResult(w, h.Actions.UpdateResearcherProfile(userID, in), http.StatusOK)
}
