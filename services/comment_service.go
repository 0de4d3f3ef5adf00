package services

import (
	"errors"

	"blogapi/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// CreateComment attaches a new, unapproved comment to the post behind slug.
func (s *CommentService) CreateComment(slug string, req *models.CreateCommentRequest) (*models.Comment, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var post models.Post
	err := s.db.Where("slug = ? AND published = ?", slug, true).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	name := req.AuthorName
	if name == "" {
		name = "Anonymous"
	}

	comment := &models.Comment{
		Content:    req.Content,
		AuthorName: name,
		PostID:     post.ID,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ApproveComment flips the moderation flag.
func (s *CommentService) ApproveComment(id uint) (*models.Comment, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment.Approved = true
	if err := s.db.Save(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) DeleteComment(id uint) error {
	if s.db == nil {
		return ErrUnavailable
	}

	res := s.db.Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
