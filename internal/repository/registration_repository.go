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

// RegistrationRepository defines the interface for trek registration data operations.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.TrekRegistration) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.TrekRegistration, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.TrekRegistration, error)
	FindAll(ctx context.Context) ([]models.TrekRegistration, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.TrekRegistration, error)
}

// registrationRepository implements RegistrationRepository using MongoDB.
type registrationRepository struct {
	collection *mongo.Collection
}

// NewRegistrationRepository creates a new RegistrationRepository.
func NewRegistrationRepository(db *mongo.Database) RegistrationRepository {
	return &registrationRepository{
		collection: db.Collection("trekregistrations"),
	}
}

// Create inserts a new registration.
func (r *registrationRepository) Create(ctx context.Context, registration *models.TrekRegistration) error {
	now := time.Now()
	registration.CreatedAt = now
	registration.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, registration)
	if err != nil {
		return err
	}

	registration.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a registration by its ID.
func (r *registrationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.TrekRegistration, error) {
	var registration models.TrekRegistration

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&registration)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, err
	}

	return &registration, nil
}

// FindByUserID returns a user's registrations, newest first.
func (r *registrationRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.TrekRegistration, error) {
	return r.find(ctx, bson.M{"user": userID})
}

// FindAll returns every registration, newest first.
func (r *registrationRepository) FindAll(ctx context.Context) ([]models.TrekRegistration, error) {
	return r.find(ctx, bson.M{})
}

func (r *registrationRepository) find(ctx context.Context, filter bson.M) ([]models.TrekRegistration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var registrations []models.TrekRegistration
	if err := cursor.All(ctx, &registrations); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if registrations == nil {
		registrations = []models.TrekRegistration{}
	}

	return registrations, nil
}

// UpdateStatus sets the registration status unconditionally, which makes
// repeated cancellations idempotent.
func (r *registrationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.TrekRegistration, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrRegistrationNotFound
	}

	return r.FindByID(ctx, id)
}
