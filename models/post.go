package models

import "time"

type Post struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"not null"`
	Slug      string         `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt   string         `json:"excerpt"`
	Content   string         `json:"content" gorm:"type:text"`
	Published bool           `json:"published" gorm:"default:false"`
	Featured  bool           `json:"featured" gorm:"default:false"`
	Image     string         `json:"image,omitempty"`
	Views     int            `json:"views" gorm:"default:0"`
	ReadTime  int            `json:"read_time" gorm:"default:1"`
	AuthorID  uint           `json:"author_id"`
	Author    User           `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	Categories []Category `json:"categories,omitempty" gorm:"many2many:post_categories;"`
	Tags       []Tag      `json:"tags,omitempty" gorm:"many2many:post_tags;"`
	Comments   []Comment  `json:"comments,omitempty"`
}

type CreatePostRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Excerpt    string `json:"excerpt"`
	Published  bool   `json:"published"`
	Featured   bool   `json:"featured"`
	Image      string `json:"image"`
	Categories []uint `json:"categories"`
	Tags       []uint `json:"tags"`
}

type UpdatePostRequest struct {
	ID         uint    `json:"id" binding:"required"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Excerpt    string  `json:"excerpt"`
	Published  *bool   `json:"published"`
	Featured   *bool   `json:"featured"`
	Image      *string `json:"image"`
	Categories []uint  `json:"categories"`
	Tags       []uint  `json:"tags"`
}

type DeleteRequest struct {
	ID uint `json:"id" binding:"required"`
}

// PostFilter narrows ListPosts. Nil/empty fields are ignored; set fields are
// AND-combined, with Search matching title, content or excerpt.
type PostFilter struct {
	Published *bool
	Category  string
	Tag       string
	Search    string
}

// PostSummary is the list-view shape: no content body, no comment bodies.
type PostSummary struct {
	ID           uint              `json:"id"`
	Title        string            `json:"title"`
	Excerpt      string            `json:"excerpt"`
	Slug         string            `json:"slug"`
	Published    bool              `json:"published"`
	Featured     bool              `json:"featured"`
	Views        int               `json:"views"`
	ReadTime     int               `json:"read_time"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Author       AuthorSummary     `json:"author"`
	Categories   []CategorySummary `json:"categories"`
	Tags         []TagSummary      `json:"tags"`
	CommentCount int64             `json:"comment_count"`
}

type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type PostList struct {
	Posts      []PostSummary `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}
