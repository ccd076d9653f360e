package models

import "github.com/shopspring/decimal"

// The account payloads carry validator.v9 tags instead of gin binding tags
// so field errors come back translated per field.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Name     string `json:"name" validate:"omitempty,max=255"`
}

type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitempty,min=5"`
}

type TagInput struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type IngredientInput struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type CreateRecipeRequest struct {
	Title       string            `json:"title" binding:"required,min=1,max=255"`
	Description string            `json:"description"`
	TimeMinutes int               `json:"time_minutes" binding:"required,gt=0"`
	Price       decimal.Decimal   `json:"price" binding:"required"`
	Link        string            `json:"link" binding:"omitempty,max=255"`
	Tags        []TagInput        `json:"tags" binding:"omitempty,dive"`
	Ingredients []IngredientInput `json:"ingredients" binding:"omitempty,dive"`
}

// Pointer fields distinguish "absent" from "present but empty": a nil Tags
// leaves associations untouched, an empty slice clears them all.
type UpdateRecipeRequest struct {
	Title       *string            `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string            `json:"description"`
	TimeMinutes *int               `json:"time_minutes" binding:"omitempty,gt=0"`
	Price       *decimal.Decimal   `json:"price"`
	Link        *string            `json:"link" binding:"omitempty,max=255"`
	Tags        *[]TagInput        `json:"tags" binding:"omitempty,dive"`
	Ingredients *[]IngredientInput `json:"ingredients" binding:"omitempty,dive"`
}

type UpdateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type UpdateIngredientRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type RecipeListParams struct {
	Tags        string `form:"tags"`
	Ingredients string `form:"ingredients"`
}

type CatalogListParams struct {
	AssignedOnly string `form:"assigned_only"`
}

// The list representation leaves out the description, mirroring the lighter
// payload of the collection endpoint.
type RecipeListItem struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Link        string          `json:"link"`
	Image       string          `json:"image"`
	Tags        []Tag           `json:"tags"`
	Ingredients []Ingredient    `json:"ingredients"`
}

func NewRecipeListItem(r Recipe) RecipeListItem {
	return RecipeListItem{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Image:       r.Image,
		Tags:        r.Tags,
		Ingredients: r.Ingredients,
	}
}

type RecipeImageResponse struct {
	ID    uint   `json:"id"`
	Image string `json:"image"`
}
