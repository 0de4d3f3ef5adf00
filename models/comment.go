package models

import "time"

type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	AuthorName string    `json:"author_name"`
	PostID     uint      `json:"post_id" gorm:"not null;index"`
	Approved   bool      `json:"approved" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	Content    string `json:"content" binding:"required"`
	AuthorName string `json:"author_name"`
}
