// Package repository provides data access operations for the application.
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

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByEmailAndCode matches email, exact verification code and an
	// unexpired expiry. Codes at or past their expiry never match.
	FindByEmailAndCode(ctx context.Context, email, code string, now time.Time) (*models.User, error)
	SetVerificationCode(ctx context.Context, id primitive.ObjectID, code string, expires time.Time) error
	// ResetUnverified overwrites name, password and verification state of an
	// unverified account for idempotent re-registration.
	ResetUnverified(ctx context.Context, id primitive.ObjectID, name, hashedPassword, code string, expires time.Time) error
	MarkVerified(ctx context.Context, id primitive.ObjectID) error
	// UpdateProfile applies name and/or password changes and always clears
	// any outstanding verification code.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name, hashedPassword *string) (*models.User, error)
	AddRegisteredTrek(ctx context.Context, userID, registrationID primitive.ObjectID) error
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	// Check if user with email already exists
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByIDs returns the users for the given IDs, keyed by ID. Missing users
// are simply absent from the map.
func (r *userRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	users := make(map[primitive.ObjectID]models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.User
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	for _, u := range results {
		users[u.ID] = u
	}

	return users, nil
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmailAndCode finds a user matching email, code and unexpired expiry.
func (r *userRepository) FindByEmailAndCode(ctx context.Context, email, code string, now time.Time) (*models.User, error) {
	filter := bson.M{
		"email":                   email,
		"verificationCode":        code,
		"verificationCodeExpires": bson.M{"$gt": now},
	}

	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvalidVerificationCode
		}
		return nil, err
	}

	return &user, nil
}

// SetVerificationCode stores a fresh code and expiry on the user.
func (r *userRepository) SetVerificationCode(ctx context.Context, id primitive.ObjectID, code string, expires time.Time) error {
	update := bson.M{"$set": bson.M{
		"verificationCode":        code,
		"verificationCodeExpires": expires,
		"updatedAt":               time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// ResetUnverified overwrites the mutable state of an unverified account.
func (r *userRepository) ResetUnverified(ctx context.Context, id primitive.ObjectID, name, hashedPassword, code string, expires time.Time) error {
	filter := bson.M{"_id": id, "isVerified": false}
	update := bson.M{"$set": bson.M{
		"name":                    name,
		"password":                hashedPassword,
		"verificationCode":        code,
		"verificationCodeExpires": expires,
		"updatedAt":               time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// MarkVerified flips isVerified and clears the verification code.
func (r *userRepository) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$set":   bson.M{"isVerified": true, "updatedAt": time.Now()},
		"$unset": bson.M{"verificationCode": "", "verificationCodeExpires": ""},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateProfile applies profile changes and clears any verification code.
func (r *userRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, hashedPassword *string) (*models.User, error) {
	setDoc := bson.M{"updatedAt": time.Now()}
	if name != nil {
		setDoc["name"] = *name
	}
	if hashedPassword != nil {
		setDoc["password"] = *hashedPassword
	}

	update := bson.M{
		"$set":   setDoc,
		"$unset": bson.M{"verificationCode": "", "verificationCodeExpires": ""},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	return r.FindByID(ctx, id)
}

// AddRegisteredTrek appends a registration reference to the user's set.
func (r *userRepository) AddRegisteredTrek(ctx context.Context, userID, registrationID primitive.ObjectID) error {
	update := bson.M{"$addToSet": bson.M{"registeredTreks": registrationID}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
