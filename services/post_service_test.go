package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"blogapi/models"
)

func TestCreatePostRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	author := createTestAuthor(t, db)
	svc := NewPostService(db)

	content := strings.Repeat("x", 150)
	post, err := svc.CreatePost(author.ID, &models.CreatePostRequest{
		Title:   "Hello World",
		Content: content,
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if post.Slug != "hello-world" {
		t.Errorf("slug = %q, want hello-world", post.Slug)
	}
	if post.ReadTime < 1 {
		t.Errorf("readTime = %d, want >= 1", post.ReadTime)
	}
	if !strings.HasSuffix(post.Excerpt, "...") {
		t.Errorf("excerpt %q does not end in ellipsis", post.Excerpt)
	}
}

func TestCreatePostExcerptMultibyte(t *testing.T) {
	db := setupTestDB(t)
	author := createTestAuthor(t, db)
	svc := NewPostService(db)

	// 100 characters but 300 bytes: the whole content fits the excerpt.
	short, err := svc.CreatePost(author.ID, &models.CreatePostRequest{
		Title:   "Short CJK",
		Content: strings.Repeat("日", 100),
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if !utf8.ValidString(short.Excerpt) {
		t.Errorf("excerpt is not valid UTF-8: %q", short.Excerpt)
	}
	if short.Excerpt != strings.Repeat("日", 100)+"..." {
		t.Errorf("short content should survive whole, got %d runes",
			utf8.RuneCountInString(short.Excerpt))
	}

	// 300 characters: the cut lands at 200 characters, never mid-rune.
	long, err := svc.CreatePost(author.ID, &models.CreatePostRequest{
		Title:   "Long CJK",
		Content: strings.Repeat("語", 300),
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if !utf8.ValidString(long.Excerpt) {
		t.Errorf("excerpt is not valid UTF-8: %q", long.Excerpt)
	}
	if long.Excerpt != strings.Repeat("語", 200)+"..." {
		t.Errorf("excerpt holds %d runes, want 200 plus ellipsis",
			utf8.RuneCountInString(long.Excerpt))
	}
}

func TestCreatePostSlugConflict(t *testing.T) {
	db := setupTestDB(t)
	author := createTestAuthor(t, db)
	svc := NewPostService(db)

	if _, err := svc.CreatePost(author.ID, &models.CreatePostRequest{Title: "Hello World", Content: "a"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// "Hello, World!!" normalizes to the same slug.
	_, err := svc.CreatePost(author.ID, &models.CreatePostRequest{Title: "Hello, World!!", Content: "b"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("second create: got %v, want ErrConflict", err)
	}
}

func TestCreatePostAssociations(t *testing.T) {
	db := setupTestDB(t)
	author := createTestAuthor(t, db)
	svc := NewPostService(db)

	cat, err := NewCategoryService(db).CreateCategory(&models.CreateCategoryRequest{Name: "Go"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	tag, err := NewTagService(db).CreateTag(&models.CreateTagRequest{Name: "tutorial"})
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}

	post, err := svc.CreatePost(author.ID, &models.CreatePostRequest{
		Title:      "Associated",
		Content:    "body",
		Categories: []uint{cat.ID},
		Tags:       []uint{tag.ID},
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if len(post.Categories) != 1 || post.Categories[0].Slug != "go" {
		t.Errorf("categories = %+v, want one with slug go", post.Categories)
	}
	if len(post.Tags) != 1 || post.Tags[0].Slug != "tutorial" {
		t.Errorf("tags = %+v, want one with slug tutorial", post.Tags)
	}
}

func TestListPostsPagination(t *testing.T) {
	db := setupTestDB(t)
	author := createTestAuthor(t, db)
	svc := NewPostService(db)

	for i := 0; i < 7; i++ {
		_, err := svc.CreatePost(author.ID, &models.CreatePostRequest{
			Title:     fmt.Sprintf("Post %d", i),
			Content:   "content",
			Published: true,
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	list, err := svc.ListPosts(models.PostFilter{}, 2, 3)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}

	if len(list.Posts) > 3 {
		t.Errorf("page holds %d items, want <= 3", len(list.Posts))
	}
	p := list.Pagination
	if p.TotalCount != 7 || p.TotalPages != 3 {
		t.Errorf("pagination = %+v, want totalCount 7 totalPages 3", p)
	}
	if !p.HasNextPage || !p.HasPrevPage {
		t.Errorf("page 2 of 3 should have both neighbours: %+v", p)
	}

	last, err := svc.ListPosts(models.PostFilter{}, 3, 3)
	if err != nil {
		t.Fatalf("ListPosts last: %v", err)
	}
	if len(last.Posts) != 1 || last.Pagination.HasNextPage {
		t.Errorf("last page: %d items, hasNext %v", len(last.Posts), last.Pagination.HasNextPage)
	}
}

func TestListPostsFilters(t *testing.T) {
	db := setupTestDB(t)
	author := createTestAuthor(t, db)
	svc := NewPostService(db)

	cat, _ := NewCategoryService(db).CreateCategory(&models.CreateCategoryRequest{Name: "Go"})
	tag, _ := NewTagService(db).CreateTag(&models.CreateTagRequest{Name: "concurrency"})

	published := true
	if _, err := svc.CreatePost(author.ID, &models.CreatePostRequest{
		Title:      "Channels Explained",
		Content:    "All about goroutines and channels",
		Published:  true,
		Categories: []uint{cat.ID},
		Tags:       []uint{tag.ID},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreatePost(author.ID, &models.CreatePostRequest{
		Title:   "Draft Notes",
		Content: "unfinished",
	}); err != nil {
		t.Fatal(err)
	}

	list, err := svc.ListPosts(models.PostFilter{Published: &published}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Posts) != 1 || list.Posts[0].Slug != "channels-explained" {
		t.Errorf("published filter: %+v", list.Posts)
	}

	list, err = svc.ListPosts(models.PostFilter{Category: "go"}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Posts) != 1 {
		t.Errorf("category filter matched %d posts", len(list.Posts))
	}

	list, err = svc.ListPosts(models.PostFilter{Tag: "concurrency"}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Posts) != 1 {
		t.Errorf("tag filter matched %d posts", len(list.Posts))
	}

	list, err = svc.ListPosts(models.PostFilter{Search: "GOROUTINES"}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Posts) != 1 {
		t.Errorf("case-insensitive search matched %d posts", len(list.Posts))
	}

	list, err = svc.ListPosts(models.PostFilter{Search: "nothing-here"}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Posts) != 0 || list.Pagination.TotalCount != 0 {
		t.Errorf("empty search should be empty, got %+v", list.Pagination)
	}
}

func TestListPostsExcludesCommentBodies(t *testing.T) {
	db := setupTestDB(t)
	author := createTestAuthor(t, db)
	svc := NewPostService(db)

	post, err := svc.CreatePost(author.ID, &models.CreatePostRequest{
		Title: "Commented", Content: "body", Published: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := db.Create(&models.Comment{Content: "hi", PostID: post.ID}).Error; err != nil {
			t.Fatal(err)
		}
	}

	list, err := svc.ListPosts(models.PostFilter{}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if list.Posts[0].CommentCount != 3 {
		t.Errorf("comment count = %d, want 3", list.Posts[0].CommentCount)
	}
	if list.Posts[0].Author.Email != author.Email {
		t.Errorf("author summary = %+v", list.Posts[0].Author)
	}
}

func TestUpdatePostSlugOnlyOnTitleChange(t *testing.T) {
	db := setupTestDB(t)
	author := createTestAuthor(t, db)
	svc := NewPostService(db)

	post, err := svc.CreatePost(author.ID, &models.CreatePostRequest{Title: "Stable URL", Content: "v1"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdatePost(&models.UpdatePostRequest{ID: post.ID, Content: "v2 with more words"})
	if err != nil {
		t.Fatalf("content-only update: %v", err)
	}
	if updated.Slug != "stable-url" {
		t.Errorf("content-only edit moved the slug to %q", updated.Slug)
	}
	if updated.Content != "v2 with more words" {
		t.Errorf("content not updated: %q", updated.Content)
	}

	updated, err = svc.UpdatePost(&models.UpdatePostRequest{ID: post.ID, Title: "Brand New Title"})
	if err != nil {
		t.Fatalf("title update: %v", err)
	}
	if updated.Slug != "brand-new-title" {
		t.Errorf("title edit slug = %q, want brand-new-title", updated.Slug)
	}
}

func TestUpdatePostReplacesAssociations(t *testing.T) {
	db := setupTestDB(t)
	author := createTestAuthor(t, db)
	svc := NewPostService(db)
	catSvc := NewCategoryService(db)

	first, _ := catSvc.CreateCategory(&models.CreateCategoryRequest{Name: "First"})
	second, _ := catSvc.CreateCategory(&models.CreateCategoryRequest{Name: "Second"})

	post, err := svc.CreatePost(author.ID, &models.CreatePostRequest{
		Title: "Recategorized", Content: "body", Categories: []uint{first.ID},
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdatePost(&models.UpdatePostRequest{ID: post.ID, Categories: []uint{second.ID}})
	if err != nil {
		t.Fatal(err)
	}
	if len(updated.Categories) != 1 || updated.Categories[0].ID != second.ID {
		t.Errorf("replace, not merge: %+v", updated.Categories)
	}
}

func TestDeletePostIdempotence(t *testing.T) {
	db := setupTestDB(t)
	author := createTestAuthor(t, db)
	svc := NewPostService(db)

	post, err := svc.CreatePost(author.ID, &models.CreatePostRequest{Title: "Doomed", Content: "bye"})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&models.Comment{Content: "keep me", PostID: post.ID}).Error; err != nil {
		t.Fatal(err)
	}

	if err := svc.DeletePost(post.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeletePost(post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}

	// Comments survive a post delete.
	var count int64
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count)
	if count != 1 {
		t.Errorf("comments after delete = %d, want 1", count)
	}
}

func TestGetPostBySlugIncrementsViews(t *testing.T) {
	db := setupTestDB(t)
	author := createTestAuthor(t, db)
	svc := NewPostService(db)

	_, err := svc.CreatePost(author.ID, &models.CreatePostRequest{
		Title: "Popular", Content: "body", Published: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 2; i++ {
		got, err := svc.GetPostBySlug("popular")
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		if got.Views != i {
			t.Errorf("views after %d reads = %d", i, got.Views)
		}
	}

	if _, err := svc.GetPostBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing slug: got %v, want ErrNotFound", err)
	}
}

func TestPostServiceUnavailable(t *testing.T) {
	svc := NewPostService(nil)

	if _, err := svc.ListPosts(models.PostFilter{}, 1, 10); !errors.Is(err, ErrUnavailable) {
		t.Errorf("ListPosts without store: %v", err)
	}
	if _, err := svc.CreatePost(1, &models.CreatePostRequest{Title: "t", Content: "c"}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("CreatePost without store: %v", err)
	}
}
