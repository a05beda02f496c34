// Package service contains business logic for the application.
package service

import (
	"context"

	"trekheaven/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for account and authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	Verify(ctx context.Context, req *models.VerifyRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	RequestProfileUpdate(ctx context.Context, userID primitive.ObjectID) error
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error)
}

// TrekServicer defines the interface for trek catalog operations.
type TrekServicer interface {
	ListTreks(ctx context.Context) ([]models.Trek, error)
	GetTrek(ctx context.Context, id string) (*models.Trek, error)
	CreateTrek(ctx context.Context, req *models.CreateTrekRequest) (*models.Trek, error)
	UpdateTrek(ctx context.Context, id string, req *models.UpdateTrekRequest) (*models.Trek, error)
	DeleteTrek(ctx context.Context, id string) error
	AddReview(ctx context.Context, trekID string, userID primitive.ObjectID, req *models.CreateReviewRequest) error
}

// RegistrationServicer defines the interface for booking operations.
type RegistrationServicer interface {
	CreateRegistration(ctx context.Context, userID primitive.ObjectID, req *models.CreateRegistrationRequest) (*models.TrekRegistration, error)
	ListUserRegistrations(ctx context.Context, userID primitive.ObjectID) ([]models.TrekRegistration, error)
	GetRegistration(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error)
	CancelRegistration(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error)
	ListAllRegistrations(ctx context.Context) ([]models.TrekRegistration, error)
}

// BlogServicer defines the interface for blog content operations.
type BlogServicer interface {
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*models.BlogDetailResponse, error)
	GetBlogByID(ctx context.Context, id string) (*models.Blog, error)
	CreateBlog(ctx context.Context, authorID primitive.ObjectID, req *models.CreateBlogRequest) (*models.Blog, error)
	UpdateBlog(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer         = (*AuthService)(nil)
	_ TrekServicer         = (*TrekService)(nil)
	_ RegistrationServicer = (*RegistrationService)(nil)
	_ BlogServicer         = (*BlogService)(nil)
)
