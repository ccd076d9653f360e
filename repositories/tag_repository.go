package repositories

import (
	"recipe-api/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	GetByName(name string, userID uint) (*models.Tag, error)
	GetByID(id, userID uint) (*models.Tag, error)
	GetList(userID uint, assignedOnly bool) ([]models.Tag, error)
	Update(tag *models.Tag) error
	Delete(id, userID uint) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetByName(name string, userID uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ? AND user_id = ?", name, userID).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetByID(id, userID uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("user_id = ?", userID).First(&tag, id).Error
	return &tag, err
}

func (r *tagRepository) GetList(userID uint, assignedOnly bool) ([]models.Tag, error) {
	var tags []models.Tag

	query := r.db.Model(&models.Tag{}).Where("tags.user_id = ?", userID)

	if assignedOnly {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
			Joins("JOIN recipes ON recipes.id = recipe_tags.recipe_id AND recipes.deleted_at IS NULL").
			Distinct("tags.*")
	}

	err := query.Order("tags.name desc").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

func (r *tagRepository) Delete(id, userID uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Tag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
