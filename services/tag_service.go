package services

import (
	"errors"

	"blogapi/models"
	"blogapi/utils"

	"gorm.io/gorm"
)

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) ListTags() ([]models.Tag, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	var tags []models.Tag
	err := s.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

func (s *TagService) CreateTag(req *models.CreateTagRequest) (*models.Tag, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	tag := &models.Tag{
		Name: req.Name,
		Slug: utils.Slugify(req.Name),
	}

	var existing models.Tag
	if err := s.db.Where("slug = ?", tag.Slug).First(&existing).Error; err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Create(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return tag, nil
}

func (s *TagService) DeleteTag(id uint) error {
	if s.db == nil {
		return ErrUnavailable
	}

	var tag models.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tag).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}
