package services

import (
	"recipe-api/models"
	"recipe-api/repositories"
)

type IngredientService interface {
	GetIngredients(userID uint, assignedOnly bool) ([]models.Ingredient, error)
	GetIngredient(id, userID uint) (*models.Ingredient, error)
	UpdateIngredient(id uint, req models.UpdateIngredientRequest, userID uint) (*models.Ingredient, error)
	DeleteIngredient(id, userID uint) error
}

type ingredientService struct {
	ingredientRepo repositories.IngredientRepository
}

func NewIngredientService(ingredientRepo repositories.IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepo: ingredientRepo}
}

func (s *ingredientService) GetIngredients(userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	return s.ingredientRepo.GetList(userID, assignedOnly)
}

func (s *ingredientService) GetIngredient(id, userID uint) (*models.Ingredient, error) {
	return s.ingredientRepo.GetByID(id, userID)
}

func (s *ingredientService) UpdateIngredient(id uint, req models.UpdateIngredientRequest, userID uint) (*models.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}

	ingredient.Name = req.Name
	if err := s.ingredientRepo.Update(ingredient); err != nil {
		return nil, err
	}

	return ingredient, nil
}

func (s *ingredientService) DeleteIngredient(id, userID uint) error {
	return s.ingredientRepo.Delete(id, userID)
}
