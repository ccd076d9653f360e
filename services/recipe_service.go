package services

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"recipe-api/models"
	"recipe-api/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidFilter    = errors.New("filter values must be comma separated integer ids")
	ErrUnsupportedImage = errors.New("unsupported image file type")
	allowedImageExts    = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
)

type RecipeService interface {
	CreateRecipe(req models.CreateRecipeRequest, userID uint) (*models.Recipe, error)
	GetRecipe(id, userID uint) (*models.Recipe, error)
	GetRecipes(params models.RecipeListParams, userID uint) ([]models.Recipe, error)
	UpdateRecipe(id uint, req models.UpdateRecipeRequest, userID uint) (*models.Recipe, error)
	DeleteRecipe(id, userID uint) error
	SetRecipeImage(recipe *models.Recipe, path string) error
}

type recipeService struct {
	recipeRepo     repositories.RecipeRepository
	tagRepo        repositories.TagRepository
	ingredientRepo repositories.IngredientRepository
}

func NewRecipeService(recipeRepo repositories.RecipeRepository, tagRepo repositories.TagRepository, ingredientRepo repositories.IngredientRepository) RecipeService {
	return &recipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
	}
}

func (s *recipeService) CreateRecipe(req models.CreateRecipeRequest, userID uint) (*models.Recipe, error) {
	tags, err := s.resolveTags(req.Tags, userID)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.resolveIngredients(req.Ingredients, userID)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}

	return s.recipeRepo.GetByID(recipe.ID, userID)
}

func (s *recipeService) GetRecipe(id, userID uint) (*models.Recipe, error) {
	return s.recipeRepo.GetByID(id, userID)
}

func (s *recipeService) GetRecipes(params models.RecipeListParams, userID uint) ([]models.Recipe, error) {
	tagIDs, err := parseIDFilter(params.Tags)
	if err != nil {
		return nil, err
	}

	ingredientIDs, err := parseIDFilter(params.Ingredients)
	if err != nil {
		return nil, err
	}

	return s.recipeRepo.GetList(userID, tagIDs, ingredientIDs)
}

func (s *recipeService) UpdateRecipe(id uint, req models.UpdateRecipeRequest, userID uint) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Link != nil {
		recipe.Link = *req.Link
	}

	// nil means the field was absent and the associations stay as they are.
	var tags *[]models.Tag
	if req.Tags != nil {
		resolved, err := s.resolveTags(*req.Tags, userID)
		if err != nil {
			return nil, err
		}
		tags = &resolved
	}

	var ingredients *[]models.Ingredient
	if req.Ingredients != nil {
		resolved, err := s.resolveIngredients(*req.Ingredients, userID)
		if err != nil {
			return nil, err
		}
		ingredients = &resolved
	}

	if err := s.recipeRepo.Update(recipe, tags, ingredients); err != nil {
		return nil, err
	}

	return s.recipeRepo.GetByID(id, userID)
}

func (s *recipeService) DeleteRecipe(id, userID uint) error {
	return s.recipeRepo.Delete(id, userID)
}

func (s *recipeService) SetRecipeImage(recipe *models.Recipe, path string) error {
	return s.recipeRepo.UpdateImage(recipe, path)
}

// resolveTags maps tag names to the caller's existing tags. Unknown names
// become zero-ID entries that the repository inserts alongside the recipe.
// Duplicate names within one payload collapse to a single entry.
func (s *recipeService) resolveTags(inputs []models.TagInput, userID uint) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))

	for _, input := range inputs {
		if seen[input.Name] {
			continue
		}
		seen[input.Name] = true

		tag, err := s.tagRepo.GetByName(input.Name, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				tags = append(tags, models.Tag{Name: input.Name, UserID: userID})
				continue
			}
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}

func (s *recipeService) resolveIngredients(inputs []models.IngredientInput, userID uint) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))

	for _, input := range inputs {
		if seen[input.Name] {
			continue
		}
		seen[input.Name] = true

		ingredient, err := s.ingredientRepo.GetByName(input.Name, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ingredients = append(ingredients, models.Ingredient{Name: input.Name, UserID: userID})
				continue
			}
			return nil, err
		}
		ingredients = append(ingredients, *ingredient)
	}

	return ingredients, nil
}

// RecipeImagePath builds the stored path for an uploaded image. Only the
// extension of the client file name survives; the rest is replaced with a
// random unique id.
func RecipeImagePath(fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedImageExts[ext] {
		return "", ErrUnsupportedImage
	}
	return "uploads/recipe/" + uuid.New().String() + ext, nil
}

// parseIDFilter parses a comma separated list of decimal ids. Tokens are
// unsigned, so negative values are rejected; zero parses fine and simply
// matches nothing.
func parseIDFilter(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, ErrInvalidFilter
		}
		ids = append(ids, uint(id))
	}

	return ids, nil
}
