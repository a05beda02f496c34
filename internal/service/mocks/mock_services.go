// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"trekheaven/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc             func(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	VerifyFunc               func(ctx context.Context, req *models.VerifyRequest) (*models.AuthResponse, error)
	LoginFunc                func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUserFunc              func(ctx context.Context, id string) (*models.User, error)
	RequestProfileUpdateFunc func(ctx context.Context, userID primitive.ObjectID) error
	UpdateProfileFunc        func(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Verify(ctx context.Context, req *models.VerifyRequest) (*models.AuthResponse, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAuthService) RequestProfileUpdate(ctx context.Context, userID primitive.ObjectID) error {
	if m.RequestProfileUpdateFunc != nil {
		return m.RequestProfileUpdateFunc(ctx, userID)
	}
	return nil
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, req)
	}
	return nil, nil
}

// MockTrekService is a mock implementation of TrekServicer.
type MockTrekService struct {
	ListTreksFunc  func(ctx context.Context) ([]models.Trek, error)
	GetTrekFunc    func(ctx context.Context, id string) (*models.Trek, error)
	CreateTrekFunc func(ctx context.Context, req *models.CreateTrekRequest) (*models.Trek, error)
	UpdateTrekFunc func(ctx context.Context, id string, req *models.UpdateTrekRequest) (*models.Trek, error)
	DeleteTrekFunc func(ctx context.Context, id string) error
	AddReviewFunc  func(ctx context.Context, trekID string, userID primitive.ObjectID, req *models.CreateReviewRequest) error
}

func (m *MockTrekService) ListTreks(ctx context.Context) ([]models.Trek, error) {
	if m.ListTreksFunc != nil {
		return m.ListTreksFunc(ctx)
	}
	return nil, nil
}

func (m *MockTrekService) GetTrek(ctx context.Context, id string) (*models.Trek, error) {
	if m.GetTrekFunc != nil {
		return m.GetTrekFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTrekService) CreateTrek(ctx context.Context, req *models.CreateTrekRequest) (*models.Trek, error) {
	if m.CreateTrekFunc != nil {
		return m.CreateTrekFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockTrekService) UpdateTrek(ctx context.Context, id string, req *models.UpdateTrekRequest) (*models.Trek, error) {
	if m.UpdateTrekFunc != nil {
		return m.UpdateTrekFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockTrekService) DeleteTrek(ctx context.Context, id string) error {
	if m.DeleteTrekFunc != nil {
		return m.DeleteTrekFunc(ctx, id)
	}
	return nil
}

func (m *MockTrekService) AddReview(ctx context.Context, trekID string, userID primitive.ObjectID, req *models.CreateReviewRequest) error {
	if m.AddReviewFunc != nil {
		return m.AddReviewFunc(ctx, trekID, userID, req)
	}
	return nil
}

// MockRegistrationService is a mock implementation of RegistrationServicer.
type MockRegistrationService struct {
	CreateRegistrationFunc    func(ctx context.Context, userID primitive.ObjectID, req *models.CreateRegistrationRequest) (*models.TrekRegistration, error)
	ListUserRegistrationsFunc func(ctx context.Context, userID primitive.ObjectID) ([]models.TrekRegistration, error)
	GetRegistrationFunc       func(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error)
	CancelRegistrationFunc    func(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error)
	ListAllRegistrationsFunc  func(ctx context.Context) ([]models.TrekRegistration, error)
}

func (m *MockRegistrationService) CreateRegistration(ctx context.Context, userID primitive.ObjectID, req *models.CreateRegistrationRequest) (*models.TrekRegistration, error) {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockRegistrationService) ListUserRegistrations(ctx context.Context, userID primitive.ObjectID) ([]models.TrekRegistration, error) {
	if m.ListUserRegistrationsFunc != nil {
		return m.ListUserRegistrationsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockRegistrationService) GetRegistration(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error) {
	if m.GetRegistrationFunc != nil {
		return m.GetRegistrationFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockRegistrationService) CancelRegistration(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error) {
	if m.CancelRegistrationFunc != nil {
		return m.CancelRegistrationFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockRegistrationService) ListAllRegistrations(ctx context.Context) ([]models.TrekRegistration, error) {
	if m.ListAllRegistrationsFunc != nil {
		return m.ListAllRegistrationsFunc(ctx)
	}
	return nil, nil
}

// MockBlogService is a mock implementation of BlogServicer.
type MockBlogService struct {
	ListBlogsFunc     func(ctx context.Context) ([]models.Blog, error)
	GetBlogBySlugFunc func(ctx context.Context, slug string) (*models.BlogDetailResponse, error)
	GetBlogByIDFunc   func(ctx context.Context, id string) (*models.Blog, error)
	CreateBlogFunc    func(ctx context.Context, authorID primitive.ObjectID, req *models.CreateBlogRequest) (*models.Blog, error)
	UpdateBlogFunc    func(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, error)
	DeleteBlogFunc    func(ctx context.Context, id string) error
}

func (m *MockBlogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	if m.ListBlogsFunc != nil {
		return m.ListBlogsFunc(ctx)
	}
	return nil, nil
}

func (m *MockBlogService) GetBlogBySlug(ctx context.Context, slug string) (*models.BlogDetailResponse, error) {
	if m.GetBlogBySlugFunc != nil {
		return m.GetBlogBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockBlogService) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	if m.GetBlogByIDFunc != nil {
		return m.GetBlogByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBlogService) CreateBlog(ctx context.Context, authorID primitive.ObjectID, req *models.CreateBlogRequest) (*models.Blog, error) {
	if m.CreateBlogFunc != nil {
		return m.CreateBlogFunc(ctx, authorID, req)
	}
	return nil, nil
}

func (m *MockBlogService) UpdateBlog(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, error) {
	if m.UpdateBlogFunc != nil {
		return m.UpdateBlogFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockBlogService) DeleteBlog(ctx context.Context, id string) error {
	if m.DeleteBlogFunc != nil {
		return m.DeleteBlogFunc(ctx, id)
	}
	return nil
}
