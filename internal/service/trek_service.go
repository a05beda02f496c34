package service

import (
	"context"
	"time"

	"trekheaven/internal/cache"
	apperrors "trekheaven/internal/errors"
	"trekheaven/internal/models"
	"trekheaven/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const trekCacheTTL = 15 * time.Minute

// TrekService handles business logic for the trek catalog.
type TrekService struct {
	repo  repository.TrekRepository
	cache cache.Cache
}

// NewTrekService creates a new TrekService.
func NewTrekService(repo repository.TrekRepository, cache cache.Cache) *TrekService {
	return &TrekService{
		repo:  repo,
		cache: cache,
	}
}

// ListTreks retrieves all treks.
func (s *TrekService) ListTreks(ctx context.Context) ([]models.Trek, error) {
	return s.repo.FindAll(ctx)
}

// GetTrek retrieves a trek by ID (with caching).
func (s *TrekService) GetTrek(ctx context.Context, id string) (*models.Trek, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTrekNotFound
	}

	// Try cache first
	cacheKey := cache.TrekCacheKey(id)
	var trek models.Trek
	found, err := s.cache.Get(ctx, cacheKey, &trek)
	if err == nil && found {
		return &trek, nil // Cache hit
	}

	// Cache miss - get from database
	dbTrek, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, dbTrek, trekCacheTTL)

	return dbTrek, nil
}

// CreateTrek adds a new trek to the catalog.
func (s *TrekService) CreateTrek(ctx context.Context, req *models.CreateTrekRequest) (*models.Trek, error) {
	trek := &models.Trek{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Duration:     req.Duration,
		Difficulty:   req.Difficulty,
		MaxGroupSize: req.MaxGroupSize,
		Price:        req.Price,
		Images:       req.Images,
		StartDates:   req.StartDates,
		Included:     req.Included,
		NotIncluded:  req.NotIncluded,
		Itinerary:    req.Itinerary,
	}

	if err := s.repo.Create(ctx, trek); err != nil {
		return nil, err
	}

	return trek, nil
}

// UpdateTrek applies a partial update to a trek.
func (s *TrekService) UpdateTrek(ctx context.Context, id string, req *models.UpdateTrekRequest) (*models.Trek, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrTrekNotFound
	}

	trek, err := s.repo.Update(ctx, objectID, req)
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.TrekCacheKey(id))

	return trek, nil
}

// DeleteTrek removes a trek from the catalog. Existing registrations keep
// their stored trek reference and amounts.
func (s *TrekService) DeleteTrek(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrTrekNotFound
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.TrekCacheKey(id))

	return nil
}

// AddReview appends a review to a trek. The repository recomputes the
// average rating in the same atomic update; a user may review a given trek
// at most once.
func (s *TrekService) AddReview(ctx context.Context, trekID string, userID primitive.ObjectID, req *models.CreateReviewRequest) error {
	objectID, err := primitive.ObjectIDFromHex(trekID)
	if err != nil {
		return apperrors.ErrTrekNotFound
	}

	review := models.Review{
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
		Date:    time.Now(),
	}

	if err := s.repo.AddReview(ctx, objectID, review); err != nil {
		return err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.TrekCacheKey(trekID))

	return nil
}
