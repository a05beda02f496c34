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
)

// TrekRepository defines the interface for trek data operations.
type TrekRepository interface {
	Create(ctx context.Context, trek *models.Trek) error
	FindAll(ctx context.Context) ([]models.Trek, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Trek, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTrekRequest) (*models.Trek, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AddReview appends a review if and only if the user has not reviewed
	// this trek yet, and recomputes averageRating in the same atomic update.
	AddReview(ctx context.Context, trekID primitive.ObjectID, review models.Review) error
}

// trekRepository implements TrekRepository using MongoDB.
type trekRepository struct {
	collection *mongo.Collection
}

// NewTrekRepository creates a new TrekRepository.
func NewTrekRepository(db *mongo.Database) TrekRepository {
	return &trekRepository{
		collection: db.Collection("treks"),
	}
}

// Create inserts a new trek.
func (r *trekRepository) Create(ctx context.Context, trek *models.Trek) error {
	now := time.Now()
	trek.CreatedAt = now
	trek.UpdatedAt = now

	if trek.Included == nil {
		trek.Included = []string{}
	}
	if trek.NotIncluded == nil {
		trek.NotIncluded = []string{}
	}
	if trek.Itinerary == nil {
		trek.Itinerary = []models.ItineraryDay{}
	}
	if trek.Reviews == nil {
		trek.Reviews = []models.Review{}
	}

	result, err := r.collection.InsertOne(ctx, trek)
	if err != nil {
		return err
	}

	trek.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll returns all treks.
func (r *trekRepository) FindAll(ctx context.Context) ([]models.Trek, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var treks []models.Trek
	if err := cursor.All(ctx, &treks); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if treks == nil {
		treks = []models.Trek{}
	}

	return treks, nil
}

// FindByID finds a trek by its ID.
func (r *trekRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Trek, error) {
	var trek models.Trek

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trek)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTrekNotFound
		}
		return nil, err
	}

	return &trek, nil
}

// Update applies the allow-listed fields of the update request.
func (r *trekRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTrekRequest) (*models.Trek, error) {
	setDoc := bson.M{"updatedAt": time.Now()}

	if update.Title != nil {
		setDoc["title"] = *update.Title
	}
	if update.Description != nil {
		setDoc["description"] = *update.Description
	}
	if update.Location != nil {
		setDoc["location"] = *update.Location
	}
	if update.Duration != nil {
		setDoc["duration"] = *update.Duration
	}
	if update.Difficulty != nil {
		setDoc["difficulty"] = *update.Difficulty
	}
	if update.MaxGroupSize != nil {
		setDoc["maxGroupSize"] = *update.MaxGroupSize
	}
	if update.Price != nil {
		setDoc["price"] = *update.Price
	}
	if update.Images != nil {
		setDoc["images"] = *update.Images
	}
	if update.StartDates != nil {
		setDoc["startDates"] = *update.StartDates
	}
	if update.Included != nil {
		setDoc["included"] = *update.Included
	}
	if update.NotIncluded != nil {
		setDoc["notIncluded"] = *update.NotIncluded
	}
	if update.Itinerary != nil {
		setDoc["itinerary"] = *update.Itinerary
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": setDoc})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrTrekNotFound
	}

	return r.FindByID(ctx, id)
}

// Delete removes a trek. Existing registrations keep their trek reference;
// read paths treat the missing trek defensively.
func (r *trekRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTrekNotFound
	}

	return nil
}

// AddReview pushes a review, guarded against duplicate reviewers. The push
// and the recomputed average land in one pipeline update, so concurrent
// reviews can never persist a stale average.
func (r *trekRepository) AddReview(ctx context.Context, trekID primitive.ObjectID, review models.Review) error {
	filter := bson.M{
		"_id":          trekID,
		"reviews.user": bson.M{"$ne": review.UserID},
	}
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "reviews", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$reviews", bson.A{}}}},
				bson.A{bson.D{{Key: "$literal", Value: review}}},
			}}}},
			{Key: "updatedAt", Value: time.Now()},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "averageRating", Value: bson.D{{Key: "$avg", Value: "$reviews.rating"}}},
		}}},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		// Either the trek is missing or this user already reviewed it.
		if _, err := r.FindByID(ctx, trekID); err != nil {
			return err
		}
		return apperrors.ErrAlreadyReviewed
	}

	return nil
}
