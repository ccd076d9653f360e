package handlers

import (
	"errors"
	"strconv"

	"recipe-api/helper"
	"recipe-api/models"
	"recipe-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IngredientHandler struct {
	ingredientService services.IngredientService
	Helper            *helper.HTTPHelper
}

func NewIngredientHandler(ingredientService services.IngredientService, httpHelper *helper.HTTPHelper) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService, Helper: httpHelper}
}

func (h *IngredientHandler) GetIngredients(c *gin.Context) {
	userID, _ := c.Get("user_id")

	assignedOnly := false
	if raw := c.Query("assigned_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.Helper.SendBadRequest(c, "Invalid assigned_only value", h.Helper.EmptyJsonMap())
			return
		}
		assignedOnly = parsed
	}

	ingredients, err := h.ingredientService.GetIngredients(userID.(uint), assignedOnly)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", ingredients)
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid ingredient ID", h.Helper.EmptyJsonMap())
		return
	}

	ingredient, err := h.ingredientService.GetIngredient(uint(id), userID.(uint))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Ingredient not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", ingredient)
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid ingredient ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	ingredient, err := h.ingredientService.UpdateIngredient(uint(id), req, userID.(uint))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Ingredient not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Ingredient updated", ingredient)
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid ingredient ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.ingredientService.DeleteIngredient(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Ingredient not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendNoContent(c)
}
