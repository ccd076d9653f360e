package repositories

import (
	"recipe-api/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	GetByID(id, userID uint) (*models.Recipe, error)
	GetList(userID uint, tagIDs, ingredientIDs []uint) ([]models.Recipe, error)
	Update(recipe *models.Recipe, tags *[]models.Tag, ingredients *[]models.Ingredient) error
	UpdateImage(recipe *models.Recipe, path string) error
	Delete(id, userID uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists the recipe together with its tag and ingredient
// associations in a single transaction. Associated entities with a zero ID
// are inserted, existing ones are only linked.
func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) GetByID(id, userID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Where("user_id = ?", userID).
		Preload("Tags").
		Preload("Ingredients").
		First(&recipe, id).Error
	return &recipe, err
}

func (r *recipeRepository) GetList(userID uint, tagIDs, ingredientIDs []uint) ([]models.Recipe, error) {
	var recipes []models.Recipe

	query := r.db.Model(&models.Recipe{}).
		Preload("Tags").
		Preload("Ingredients").
		Where("recipes.user_id = ?", userID)

	if len(tagIDs) > 0 {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", tagIDs)
	}

	if len(ingredientIDs) > 0 {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", ingredientIDs)
	}

	err := query.Distinct("recipes.*").
		Order("recipes.id desc").
		Find(&recipes).Error

	return recipes, err
}

// Update saves the scalar fields and, when a replacement set is given,
// swaps the associations. A non-nil empty set clears them. Everything runs
// inside one transaction so a failed association write rolls back the
// scalar update too.
func (r *recipeRepository) Update(recipe *models.Recipe, tags *[]models.Tag, ingredients *[]models.Ingredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients").Save(recipe).Error; err != nil {
			return err
		}

		if tags != nil {
			if err := tx.Model(recipe).Association("Tags").Replace(*tags); err != nil {
				return err
			}
		}

		if ingredients != nil {
			if err := tx.Model(recipe).Association("Ingredients").Replace(*ingredients); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *recipeRepository) UpdateImage(recipe *models.Recipe, path string) error {
	return r.db.Model(recipe).Update("image", path).Error
}

func (r *recipeRepository) Delete(id, userID uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Recipe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
