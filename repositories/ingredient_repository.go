package repositories

import (
	"recipe-api/models"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	GetByName(name string, userID uint) (*models.Ingredient, error)
	GetByID(id, userID uint) (*models.Ingredient, error)
	GetList(userID uint, assignedOnly bool) ([]models.Ingredient, error)
	Update(ingredient *models.Ingredient) error
	Delete(id, userID uint) error
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetByName(name string, userID uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("name = ? AND user_id = ?", name, userID).First(&ingredient).Error
	return &ingredient, err
}

func (r *ingredientRepository) GetByID(id, userID uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("user_id = ?", userID).First(&ingredient, id).Error
	return &ingredient, err
}

func (r *ingredientRepository) GetList(userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient

	query := r.db.Model(&models.Ingredient{}).Where("ingredients.user_id = ?", userID)

	if assignedOnly {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Joins("JOIN recipes ON recipes.id = recipe_ingredients.recipe_id AND recipes.deleted_at IS NULL").
			Distinct("ingredients.*")
	}

	err := query.Order("ingredients.name desc").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) Update(ingredient *models.Ingredient) error {
	return r.db.Save(ingredient).Error
}

func (r *ingredientRepository) Delete(id, userID uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
