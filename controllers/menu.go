package controllers

import (
	"net/http"

	"bistro-boss/models"
	"bistro-boss/utils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// MenuController handles menu and review requests
type MenuController struct {
	Menu   MenuStore
	logger zerolog.Logger
}

func NewMenuController(menu MenuStore, logger zerolog.Logger) *MenuController {
	return &MenuController{
		Menu:   menu,
		logger: logger.With().Str("controller", "menu").Logger(),
	}
}

// GetMenu retrieves all menu items
func (mc *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := mc.Menu.ListMenu(r.Context())
	if err != nil {
		mc.logger.Error().Err(err).Msg("failed to list menu")
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching menu")
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

// AddMenuItem handles adding a new menu item (Admin only)
func (mc *MenuController) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	doc, err := utils.DecodeDocument(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := mc.Menu.InsertMenuItem(r.Context(), doc)
	if err != nil {
		mc.logger.Error().Err(err).Msg("failed to add menu item")
		utils.WriteError(w, http.StatusInternalServerError, "Error creating menu item")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

// DeleteMenuItem handles deleting a menu item (Admin only)
func (mc *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id := models.ID(mux.Vars(r)["id"])

	result, err := mc.Menu.DeleteMenuItem(r.Context(), id)
	if err != nil {
		mc.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to delete menu item")
		utils.WriteError(w, http.StatusInternalServerError, "Error deleting menu item")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

// GetReviews retrieves all reviews
func (mc *MenuController) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := mc.Menu.ListReviews(r.Context())
	if err != nil {
		mc.logger.Error().Err(err).Msg("failed to list reviews")
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching reviews")
		return
	}
	utils.WriteJSON(w, http.StatusOK, reviews)
}
