package services

import (
	"errors"

	"blogapi/models"
	"blogapi/utils"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) ListCategories() ([]models.Category, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	var cats []models.Category
	err := s.db.Order("name ASC").Find(&cats).Error
	return cats, err
}

// CreateCategory derives the slug from the name. Two names that normalize to
// the same slug collide, so "React!!" after "react" is a conflict.
func (s *CategoryService) CreateCategory(req *models.CreateCategoryRequest) (*models.Category, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	cat := &models.Category{
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		Description: req.Description,
		Color:       req.Color,
	}

	var existing models.Category
	if err := s.db.Where("slug = ?", cat.Slug).First(&existing).Error; err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Create(cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) UpdateCategory(req *models.UpdateCategoryRequest) (*models.Category, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var cat models.Category
	if err := s.db.First(&cat, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != "" && req.Name != cat.Name {
		slug := utils.Slugify(req.Name)
		var clash models.Category
		err := s.db.Where("slug = ? AND id <> ?", slug, cat.ID).First(&clash).Error
		if err == nil {
			return nil, ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cat.Name = req.Name
		cat.Slug = slug
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if req.Color != nil {
		cat.Color = *req.Color
	}

	if err := s.db.Save(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes the category and its post associations; posts
// themselves stay.
func (s *CategoryService) DeleteCategory(id uint) error {
	if s.db == nil {
		return ErrUnavailable
	}

	var cat models.Category
	if err := s.db.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&cat).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Delete(&cat).Error
	})
}
