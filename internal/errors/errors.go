// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserAlreadyExists       = errors.New("user already exists")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrEmailNotVerified        = errors.New("please verify your email first")
	ErrInvalidVerificationCode = errors.New("invalid or expired verification code")
	ErrWrongPassword           = errors.New("current password is incorrect")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrAdminOnly    = errors.New("admin access required")
)

// Trek errors
var (
	ErrTrekNotFound    = errors.New("trek not found")
	ErrAlreadyReviewed = errors.New("trek already reviewed")
)

// Registration errors
var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrNotRegistrationOwner = errors.New("not authorized to access this registration")
	ErrTeamTooLarge         = errors.New("team size exceeds the trek's maximum group size")
)

// Blog errors
var (
	ErrBlogNotFound   = errors.New("blog not found")
	ErrBlogTitleTaken = errors.New("a blog with this title already exists")
)

// Upload errors
var (
	ErrNoUploadURLs         = errors.New("no image URLs provided")
	ErrStorageNotConfigured = errors.New("image storage is not configured")
)
