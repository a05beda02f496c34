package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"trekheaven/internal/cache"
	apperrors "trekheaven/internal/errors"
	"trekheaven/internal/mailer"
	"trekheaven/internal/models"
	"trekheaven/internal/repository"
	"trekheaven/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	userCacheTTL           = 15 * time.Minute
	verificationCodeExpiry = 10 * time.Minute
)

const (
	registeredMessage = "Registration successful. Please check your email for verification code."
	codeResentMessage = "Verification code resent. Please check your email."
)

// AuthService handles account and authentication business logic.
type AuthService struct {
	userRepo   repository.UserRepository
	cache      cache.Cache
	mailer     mailer.Mailer
	jwtManager auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, cache cache.Cache, mailer mailer.Mailer, jwtManager auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		cache:      cache,
		mailer:     mailer,
		jwtManager: jwtManager,
	}
}

// generateVerificationCode returns a 6-digit numeric code, zero-padded.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	code := n.Int64()
	digits := []byte{
		byte('0' + code/100000%10),
		byte('0' + code/10000%10),
		byte('0' + code/1000%10),
		byte('0' + code/100%10),
		byte('0' + code/10%10),
		byte('0' + code%10),
	}
	return string(digits), nil
}

// Register creates an unverified account and emails a verification code. A
// repeat registration for an address that never completed verification
// overwrites the pending account and sends a fresh code; a verified address
// cannot be registered again.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, err
	}
	expires := time.Now().Add(verificationCodeExpiry)

	message := registeredMessage

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if existing.IsVerified {
			return nil, apperrors.ErrUserAlreadyExists
		}
		// Pending account: replace its details and restart verification.
		if err := s.userRepo.ResetUnverified(ctx, existing.ID, req.Name, hashedPassword, code, expires); err != nil {
			return nil, err
		}
		message = codeResentMessage
	case err == apperrors.ErrUserNotFound:
		user := &models.User{
			Name:                    req.Name,
			Email:                   req.Email,
			Password:                hashedPassword,
			VerificationCode:        code,
			VerificationCodeExpires: &expires,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	// The account is useless without the code, so a delivery failure is a
	// registration failure.
	if err := s.mailer.SendVerificationCode(ctx, req.Email, code); err != nil {
		return nil, err
	}

	return &models.RegisterResponse{
		Message: message,
		Email:   req.Email,
	}, nil
}

// Verify consumes a verification code, marks the account verified and logs
// the user in.
func (s *AuthService) Verify(ctx context.Context, req *models.VerifyRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmailAndCode(ctx, req.Email, req.Code, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return nil, err
	}
	user.IsVerified = true
	user.VerificationCode = ""
	user.VerificationCodeExpires = nil

	return s.authResponse(user)
}

// Login authenticates a verified user and returns a bearer token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	return s.authResponse(user)
}

// GetUser retrieves a user by ID (with caching).
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	// Try cache first
	cacheKey := cache.UserCacheKey(id)
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		return &user, nil // Cache hit
	}

	// Cache miss - get from database
	dbUser, err := s.userRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, dbUser, userCacheTTL)

	return dbUser, nil
}

// RequestProfileUpdate emails the user a fresh verification code gating a
// password change.
func (s *AuthService) RequestProfileUpdate(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return err
	}
	expires := time.Now().Add(verificationCodeExpiry)

	if err := s.userRepo.SetVerificationCode(ctx, user.ID, code, expires); err != nil {
		return err
	}

	return s.mailer.SendProfileUpdateCode(ctx, user.Email, code)
}

// UpdateProfile changes the user's name and/or password. A password change
// requires the current password and a code previously requested via
// RequestProfileUpdate.
func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error) {
	var hashedPassword *string

	if req.NewPassword != "" {
		current, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}

		if current.VerificationCode == "" || current.VerificationCode != req.VerificationCode ||
			current.VerificationCodeExpires == nil || current.VerificationCodeExpires.Before(time.Now()) {
			return nil, apperrors.ErrInvalidVerificationCode
		}

		if err := auth.CheckPassword(req.CurrentPassword, current.Password); err != nil {
			return nil, apperrors.ErrWrongPassword
		}

		hashed, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			return nil, err
		}
		hashedPassword = &hashed
	}

	updated, err := s.userRepo.UpdateProfile(ctx, userID, req.Name, hashedPassword)
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(userID.Hex()))

	return updated, nil
}

func (s *AuthService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
