package controllers

import (
	"net/http"

	"bistro-boss/middleware"
	"bistro-boss/models"
	"bistro-boss/utils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// CartController handles cart-related requests
type CartController struct {
	Carts  CartStore
	logger zerolog.Logger
}

// NewCartController creates a new CartController
func NewCartController(carts CartStore, logger zerolog.Logger) *CartController {
	return &CartController{
		Carts:  carts,
		logger: logger.With().Str("controller", "cart").Logger(),
	}
}

// GetCart handles GET /carts?email=. Only the owner may list a cart; a
// request without email gets an empty list.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteJSON(w, http.StatusOK, []models.CartItem{})
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Email != email {
		utils.WriteError(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	items, err := cc.Carts.ListCart(r.Context(), email)
	if err != nil {
		cc.logger.Error().Err(err).Str("email", email).Msg("failed to list cart")
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching cart")
		return
	}

	utils.WriteJSON(w, http.StatusOK, items)
}

// AddToCart stores the posted cart item as sent
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	doc, err := utils.DecodeDocument(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := cc.Carts.InsertCartItem(r.Context(), doc)
	if err != nil {
		cc.logger.Error().Err(err).Interface("email", doc["email"]).Msg("failed to add cart item")
		utils.WriteError(w, http.StatusInternalServerError, "Error adding item to cart")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

// RemoveFromCart removes a single cart item
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id := models.ID(mux.Vars(r)["id"])

	result, err := cc.Carts.DeleteCartItem(r.Context(), id)
	if err != nil {
		cc.logger.Error().Err(err).Str("cart_id", id.String()).Msg("failed to remove cart item")
		utils.WriteError(w, http.StatusInternalServerError, "Error removing item from cart")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}
