package repository

import (
	"context"
	"errors"
	"time"

	apperrors "trekheaven/internal/errors"
	"trekheaven/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogRepository defines the interface for blog data operations.
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	FindAll(ctx context.Context) ([]models.Blog, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	FindByTitle(ctx context.Context, title string) (*models.Blog, error)
	// FindBySlugAndIncrementViews fetches a blog by slug, incrementing its
	// view counter as part of the same atomic operation.
	FindBySlugAndIncrementViews(ctx context.Context, slug string) (*models.Blog, error)
	// FindRelated returns up to limit other blogs sharing at least one tag.
	FindRelated(ctx context.Context, excludeID primitive.ObjectID, tags []string, limit int) ([]models.BlogSummary, error)
	Update(ctx context.Context, id primitive.ObjectID, slug *string, update *models.UpdateBlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// blogRepository implements BlogRepository using MongoDB.
type blogRepository struct {
	collection *mongo.Collection
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *mongo.Database) BlogRepository {
	return &blogRepository{
		collection: db.Collection("blogs"),
	}
}

// Create inserts a new blog.
func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	// Check for a duplicate title first so the caller gets a typed conflict
	existing, _ := r.FindByTitle(ctx, blog.Title)
	if existing != nil {
		return apperrors.ErrBlogTitleTaken
	}

	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	result, err := r.collection.InsertOne(ctx, blog)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrBlogTitleTaken
		}
		return err
	}

	blog.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll returns all blogs, newest first.
func (r *blogRepository) FindAll(ctx context.Context) ([]models.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []models.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if blogs == nil {
		blogs = []models.Blog{}
	}

	return blogs, nil
}

// FindByID finds a blog by its ID.
func (r *blogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var blog models.Blog

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, err
	}

	return &blog, nil
}

// FindByTitle finds a blog by its exact title.
func (r *blogRepository) FindByTitle(ctx context.Context, title string) (*models.Blog, error) {
	var blog models.Blog

	err := r.collection.FindOne(ctx, bson.M{"title": title}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, err
	}

	return &blog, nil
}

// FindBySlugAndIncrementViews fetches by slug and bumps the view counter.
func (r *blogRepository) FindBySlugAndIncrementViews(ctx context.Context, slug string) (*models.Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog models.Blog
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"slug": slug},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, err
	}

	return &blog, nil
}

// FindRelated returns other blogs sharing at least one tag.
func (r *blogRepository) FindRelated(ctx context.Context, excludeID primitive.ObjectID, tags []string, limit int) ([]models.BlogSummary, error) {
	if len(tags) == 0 {
		return []models.BlogSummary{}, nil
	}

	filter := bson.M{
		"_id":  bson.M{"$ne": excludeID},
		"tags": bson.M{"$in": tags},
	}
	opts := options.Find().
		SetLimit(int64(limit)).
		SetProjection(bson.M{"title": 1, "slug": 1, "images": 1, "createdAt": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var related []models.BlogSummary
	if err := cursor.All(ctx, &related); err != nil {
		return nil, err
	}

	if related == nil {
		related = []models.BlogSummary{}
	}

	return related, nil
}

// Update applies the allow-listed fields. When the title changes the caller
// passes the recomputed slug alongside it.
func (r *blogRepository) Update(ctx context.Context, id primitive.ObjectID, slug *string, update *models.UpdateBlogRequest) (*models.Blog, error) {
	setDoc := bson.M{"updatedAt": time.Now()}

	if update.Title != nil {
		// Reject a title already used by another blog
		existing, _ := r.FindByTitle(ctx, *update.Title)
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrBlogTitleTaken
		}
		setDoc["title"] = *update.Title
	}
	if slug != nil {
		setDoc["slug"] = *slug
	}
	if update.Description != nil {
		setDoc["description"] = *update.Description
	}
	if update.Content != nil {
		setDoc["content"] = *update.Content
	}
	if update.Images != nil {
		setDoc["images"] = *update.Images
	}
	if update.Tags != nil {
		setDoc["tags"] = *update.Tags
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": setDoc})
	if err != nil {
		// A concurrent rename can slip past the check above and trip the
		// unique index instead.
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrBlogTitleTaken
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrBlogNotFound
	}

	return r.FindByID(ctx, id)
}

// Delete removes a blog.
func (r *blogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrBlogNotFound
	}

	return nil
}
