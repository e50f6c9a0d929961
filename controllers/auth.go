package controllers

import (
	"net/http"

	"bistro-boss/utils"

	"github.com/rs/zerolog"
)

// AuthController issues identity tokens
type AuthController struct {
	Signer TokenSigner
	logger zerolog.Logger
}

func NewAuthController(signer TokenSigner, logger zerolog.Logger) *AuthController {
	return &AuthController{
		Signer: signer,
		logger: logger.With().Str("controller", "auth").Logger(),
	}
}

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// IssueToken handles POST /jwt and returns a signed, short-lived token for
// the posted user.
func (ac *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := ac.Signer.GenerateJWT(req.Email, req.Name)
	if err != nil {
		ac.logger.Error().Err(err).Msg("failed to issue token")
		utils.WriteError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}
