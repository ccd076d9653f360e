package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"recipe-api/config"
	"recipe-api/helper"
	"recipe-api/models"
	"recipe-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecipeHandler struct {
	recipeService services.RecipeService
	Helper        *helper.HTTPHelper
}

func NewRecipeHandler(recipeService services.RecipeService, httpHelper *helper.HTTPHelper) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService, Helper: httpHelper}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	recipe, err := h.recipeService.CreateRecipe(req, userID.(uint))
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendCreated(c, "Recipe created", recipe)
}

func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var params models.RecipeListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	recipes, err := h.recipeService.GetRecipes(params, userID.(uint))
	if err != nil {
		if errors.Is(err, services.ErrInvalidFilter) {
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendError(c, err.Error(), h.Helper.EmptyJsonMap(), http.StatusInternalServerError, `internalError`)
		return
	}

	items := make([]models.RecipeListItem, 0, len(recipes))
	for _, recipe := range recipes {
		items = append(items, models.NewRecipeListItem(recipe))
	}

	h.Helper.SendSuccess(c, "Success", items)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	recipe, err := h.recipeService.GetRecipe(uint(id), userID.(uint))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Recipe not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", recipe)
}

// UpdateRecipe serves both PATCH and PUT. The pointer-field request keeps
// absent fields untouched either way.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(uint(id), req, userID.(uint))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Recipe not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Recipe updated", recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.recipeService.DeleteRecipe(uint(id), userID.(uint)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Recipe not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendNoContent(c)
}

func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, _ := c.Get("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid recipe ID", h.Helper.EmptyJsonMap())
		return
	}

	recipe, err := h.recipeService.GetRecipe(uint(id), userID.(uint))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Recipe not found", h.Helper.EmptyJsonMap())
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.Helper.SendBadRequest(c, "Image file is required", h.Helper.EmptyJsonMap())
		return
	}

	path, err := services.RecipeImagePath(file.Filename)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	destination := filepath.Join(config.MediaRoot, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		h.Helper.SendError(c, err.Error(), h.Helper.EmptyJsonMap(), http.StatusInternalServerError, `internalError`)
		return
	}

	if err := c.SaveUploadedFile(file, destination); err != nil {
		h.Helper.SendError(c, err.Error(), h.Helper.EmptyJsonMap(), http.StatusInternalServerError, `internalError`)
		return
	}

	if err := h.recipeService.SetRecipeImage(recipe, path); err != nil {
		h.Helper.SendError(c, err.Error(), h.Helper.EmptyJsonMap(), http.StatusInternalServerError, `internalError`)
		return
	}

	h.Helper.SendSuccess(c, "Image uploaded", models.RecipeImageResponse{ID: recipe.ID, Image: path})
}
