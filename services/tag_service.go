package services

import (
	"recipe-api/models"
	"recipe-api/repositories"
)

type TagService interface {
	GetTags(userID uint, assignedOnly bool) ([]models.Tag, error)
	GetTag(id, userID uint) (*models.Tag, error)
	UpdateTag(id uint, req models.UpdateTagRequest, userID uint) (*models.Tag, error)
	DeleteTag(id, userID uint) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) GetTags(userID uint, assignedOnly bool) ([]models.Tag, error) {
	return s.tagRepo.GetList(userID, assignedOnly)
}

func (s *tagService) GetTag(id, userID uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(id, userID)
}

func (s *tagService) UpdateTag(id uint, req models.UpdateTagRequest, userID uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id, userID)
	if err != nil {
		return nil, err
	}

	tag.Name = req.Name
	if err := s.tagRepo.Update(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) DeleteTag(id, userID uint) error {
	return s.tagRepo.Delete(id, userID)
}
