package service

import (
	"context"

	apperrors "trekheaven/internal/errors"
	"trekheaven/internal/models"
	"trekheaven/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// relatedBlogLimit caps the related-articles list on the blog detail page.
const relatedBlogLimit = 3

// BlogService handles business logic for blog content.
type BlogService struct {
	repo     repository.BlogRepository
	userRepo repository.UserRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repository.BlogRepository, userRepo repository.UserRepository) *BlogService {
	return &BlogService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// ListBlogs retrieves all blogs, newest first, with author details attached.
func (s *BlogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.populateAuthors(ctx, blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

// GetBlogBySlug retrieves a blog by its public slug, increments its view
// counter and attaches up to three related blogs sharing a tag.
func (s *BlogService) GetBlogBySlug(ctx context.Context, slug string) (*models.BlogDetailResponse, error) {
	blog, err := s.repo.FindBySlugAndIncrementViews(ctx, slug)
	if err != nil {
		return nil, err
	}

	blogs := []models.Blog{*blog}
	if err := s.populateAuthors(ctx, blogs); err != nil {
		return nil, err
	}

	related, err := s.repo.FindRelated(ctx, blog.ID, blog.Tags, relatedBlogLimit)
	if err != nil {
		return nil, err
	}

	return &models.BlogDetailResponse{
		Blog:         blogs[0],
		RelatedBlogs: related,
	}, nil
}

// GetBlogByID retrieves a blog by ID without touching the view counter,
// for the admin edit form.
func (s *BlogService) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrBlogNotFound
	}

	return s.repo.FindByID(ctx, objectID)
}

// CreateBlog publishes a new blog authored by the given user. The slug is
// derived from the title.
func (s *BlogService) CreateBlog(ctx context.Context, authorID primitive.ObjectID, req *models.CreateBlogRequest) (*models.Blog, error) {
	blog := &models.Blog{
		Title:       req.Title,
		Slug:        models.Slugify(req.Title),
		Description: req.Description,
		Content:     req.Content,
		AuthorID:    authorID,
		Images:      req.Images,
		Tags:        req.Tags,
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// UpdateBlog applies a partial update. A title change re-derives the slug,
// so the blog's public URL changes with it.
func (s *BlogService) UpdateBlog(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrBlogNotFound
	}

	var slug *string
	if req.Title != nil {
		newSlug := models.Slugify(*req.Title)
		slug = &newSlug
	}

	return s.repo.Update(ctx, objectID, slug, req)
}

// DeleteBlog removes a blog.
func (s *BlogService) DeleteBlog(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrBlogNotFound
	}

	return s.repo.Delete(ctx, objectID)
}

// populateAuthors attaches author summaries to blogs in a single lookup.
func (s *BlogService) populateAuthors(ctx context.Context, blogs []models.Blog) error {
	if len(blogs) == 0 {
		return nil
	}

	authorIDs := make([]primitive.ObjectID, 0, len(blogs))
	seen := make(map[primitive.ObjectID]bool)
	for _, b := range blogs {
		if !seen[b.AuthorID] {
			seen[b.AuthorID] = true
			authorIDs = append(authorIDs, b.AuthorID)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, authorIDs)
	if err != nil {
		return err
	}

	for i := range blogs {
		if user, ok := users[blogs[i].AuthorID]; ok {
			blogs[i].Author = &models.UserSummary{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			}
		}
	}

	return nil
}
