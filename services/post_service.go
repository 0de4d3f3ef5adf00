package services

import (
	"errors"
	"math"
	"strings"

	"blogapi/models"
	"blogapi/utils"

	"gorm.io/gorm"
)

const (
	excerptLength   = 200
	wordsPerMinute  = 200
	DefaultPageSize = 10
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// filtered applies the list filter to a posts query. Filters combine with
// AND; search alone fans out over title, content and excerpt.
func (s *PostService) filtered(f models.PostFilter) *gorm.DB {
	q := s.db.Model(&models.Post{})

	if f.Published != nil {
		q = q.Where("posts.published = ?", *f.Published)
	}
	if f.Category != "" {
		q = q.Joins("JOIN post_categories pc ON pc.post_id = posts.id").
			Joins("JOIN categories c ON c.id = pc.category_id").
			Where("c.slug = ?", f.Category)
	}
	if f.Tag != "" {
		q = q.Joins("JOIN post_tags pt ON pt.post_id = posts.id").
			Joins("JOIN tags t ON t.id = pt.tag_id").
			Where("t.slug = ?", f.Tag)
	}
	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ? OR LOWER(posts.excerpt) LIKE ?",
			needle, needle, needle)
	}

	return q
}

// ListPosts returns one page of post summaries, newest first, with author,
// category and tag summaries plus a comment count. Comment bodies are never
// part of list views.
func (s *PostService) ListPosts(filter models.PostFilter, page, limit int) (*models.PostList, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	var totalCount int64
	if err := s.filtered(filter).Count(&totalCount).Error; err != nil {
		return nil, err
	}

	var posts []models.Post
	err := s.filtered(filter).
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		Order("posts.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	counts, err := s.commentCounts(posts)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, summarize(p, counts[p.ID]))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))

	return &models.PostList{
		Posts: summaries,
		Pagination: models.Pagination{
			Page:        page,
			Limit:       limit,
			TotalCount:  totalCount,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	}, nil
}

func (s *PostService) commentCounts(posts []models.Post) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(posts))
	if len(posts) == 0 {
		return counts, nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	var rows []struct {
		PostID uint
		Total  int64
	}
	err := s.db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.PostID] = r.Total
	}
	return counts, nil
}

func summarize(p models.Post, comments int64) models.PostSummary {
	cats := make([]models.CategorySummary, 0, len(p.Categories))
	for _, c := range p.Categories {
		cats = append(cats, models.CategorySummary{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	tags := make([]models.TagSummary, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, models.TagSummary{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}

	return models.PostSummary{
		ID:        p.ID,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Slug:      p.Slug,
		Published: p.Published,
		Featured:  p.Featured,
		Views:     p.Views,
		ReadTime:  p.ReadTime,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Author: models.AuthorSummary{
			ID:    p.Author.ID,
			Name:  p.Author.Name,
			Email: p.Author.Email,
		},
		Categories:   cats,
		Tags:         tags,
		CommentCount: comments,
	}
}

// GetPostBySlug loads a published post with its approved comments and bumps
// the view counter.
func (s *PostService) GetPostBySlug(slug string) (*models.Post, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var post models.Post
	err := s.db.
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		Preload("Comments", "approved = ?", true).
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&post).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	post.Views++

	return &post, nil
}

// CreatePost derives the slug from the title and fails with ErrConflict when
// it collides. The insert and its associations run in one transaction; a
// concurrent create racing on the same slug loses at the unique index.
func (s *PostService) CreatePost(authorID uint, req *models.CreatePostRequest) (*models.Post, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	slug := utils.Slugify(req.Title)

	var existing models.Post
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	excerpt := req.Excerpt
	if excerpt == "" {
		excerpt = deriveExcerpt(req.Content)
	}

	post := &models.Post{
		Title:     req.Title,
		Slug:      slug,
		Excerpt:   excerpt,
		Content:   req.Content,
		Published: req.Published,
		Featured:  req.Featured,
		Image:     req.Image,
		ReadTime:  readTime(req.Content),
		AuthorID:  authorID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		cats, err := findCategories(tx, req.Categories)
		if err != nil {
			return err
		}
		tags, err := findTags(tx, req.Tags)
		if err != nil {
			return err
		}
		post.Categories = cats
		post.Tags = tags
		return tx.Create(post).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost applies a partial update and fully replaces the category and
// tag sets. The slug is recomputed only when a new title is supplied, so a
// content-only edit never moves the post's URL.
func (s *PostService) UpdatePost(req *models.UpdatePostRequest) (*models.Post, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var post models.Post
	if err := s.db.First(&post, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != "" && req.Title != post.Title {
		slug := utils.Slugify(req.Title)
		var clash models.Post
		err := s.db.Where("slug = ? AND id <> ?", slug, post.ID).First(&clash).Error
		if err == nil {
			return nil, ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		post.Title = req.Title
		post.Slug = slug
	}
	if req.Content != "" {
		post.Content = req.Content
		post.ReadTime = readTime(req.Content)
	}
	if req.Excerpt != "" {
		post.Excerpt = req.Excerpt
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	if req.Featured != nil {
		post.Featured = *req.Featured
	}
	if req.Image != nil {
		post.Image = *req.Image
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		cats, err := findCategories(tx, req.Categories)
		if err != nil {
			return err
		}
		tags, err := findTags(tx, req.Tags)
		if err != nil {
			return err
		}
		if err := tx.Save(&post).Error; err != nil {
			return err
		}
		if err := tx.Model(&post).Association("Categories").Replace(cats); err != nil {
			return err
		}
		return tx.Model(&post).Association("Tags").Replace(tags)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}

	err = s.db.Preload("Author").Preload("Categories").Preload("Tags").First(&post, post.ID).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes the post and its association rows. Comments and the
// author stay. A second delete of the same id reports ErrNotFound.
func (s *PostService) DeletePost(id uint) error {
	if s.db == nil {
		return ErrUnavailable
	}

	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&post).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

func findCategories(tx *gorm.DB, ids []uint) ([]models.Category, error) {
	cats := []models.Category{}
	if len(ids) == 0 {
		return cats, nil
	}
	err := tx.Find(&cats, ids).Error
	return cats, err
}

func findTags(tx *gorm.DB, ids []uint) ([]models.Tag, error) {
	tags := []models.Tag{}
	if len(ids) == 0 {
		return tags, nil
	}
	err := tx.Find(&tags, ids).Error
	return tags, err
}

func deriveExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content + "..."
	}
	return string(runes[:excerptLength]) + "..."
}

func readTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
