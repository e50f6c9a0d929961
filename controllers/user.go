package controllers

import (
	"errors"
	"net/http"

	"bistro-boss/middleware"
	"bistro-boss/models"
	"bistro-boss/store"
	"bistro-boss/utils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// UserController handles user-related requests
type UserController struct {
	Users              UserStore
	promotionProtected bool
	logger             zerolog.Logger
}

// NewUserController creates a new UserController. promotionProtected tells
// the controller whether PATCH /users/admin/{id} sits behind RequireAdmin.
func NewUserController(users UserStore, promotionProtected bool, logger zerolog.Logger) *UserController {
	return &UserController{
		Users:              users,
		promotionProtected: promotionProtected,
		logger:             logger.With().Str("controller", "user").Logger(),
	}
}

// ListUsers handles GET /users (admin only)
func (uc *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uc.Users.ListUsers(r.Context())
	if err != nil {
		uc.logger.Error().Err(err).Msg("failed to list users")
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching users")
		return
	}
	utils.WriteJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /users. An already registered email is
// acknowledged without touching the stored document.
func (uc *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			uc.logger.Error().Err(err).Msg("failed to hash password")
			utils.WriteError(w, http.StatusInternalServerError, "Error hashing password")
			return
		}
		user.Password = string(hashedPassword)
	}

	result, created, err := uc.Users.InsertUserIfAbsent(r.Context(), &user)
	if err != nil {
		uc.logger.Error().Err(err).Str("email", req.Email).Msg("failed to create user")
		utils.WriteError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	if !created {
		utils.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "user already exists"})
		return
	}

	uc.logger.Info().Str("email", req.Email).Msg("user registered")
	utils.WriteJSON(w, http.StatusOK, result)
}

// CheckAdmin handles GET /users/admin/{email}. Callers may only ask about
// themselves; any other email is answered with admin=false.
func (uc *UserController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized Access")
		return
	}

	email := mux.Vars(r)["email"]
	if email != claims.Email {
		utils.WriteJSON(w, http.StatusOK, models.AdminStatus{Admin: false})
		return
	}

	user, err := uc.Users.FindUserByEmail(r.Context(), email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		uc.logger.Error().Err(err).Str("email", email).Msg("failed to look up user")
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching user")
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.AdminStatus{Admin: user.IsAdmin()})
}

// MakeAdmin handles PATCH /users/admin/{id}.
func (uc *UserController) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id := models.ID(mux.Vars(r)["id"])

	if !uc.promotionProtected {
		uc.logger.Warn().
			Str("user_id", id.String()).
			Str("remote_addr", r.RemoteAddr).
			Msg("admin promotion on unguarded route; set PROTECT_ADMIN_PROMOTION=true to require an admin token")
	}

	result, err := uc.Users.PromoteToAdmin(r.Context(), id)
	if err != nil {
		uc.logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to promote user")
		utils.WriteError(w, http.StatusInternalServerError, "Error updating user")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}
