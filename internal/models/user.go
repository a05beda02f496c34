// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user account.
type User struct {
	ID                      primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name                    string               `json:"name" bson:"name" example:"Alice Sharma"`
	Email                   string               `json:"email" bson:"email" example:"alice@example.com"`
	Password                string               `json:"-" bson:"password"` // "-" = never include in JSON response
	IsAdmin                 bool                 `json:"isAdmin" bson:"isAdmin"`
	IsVerified              bool                 `json:"isVerified" bson:"isVerified"`
	VerificationCode        string               `json:"-" bson:"verificationCode,omitempty"`
	VerificationCodeExpires *time.Time           `json:"-" bson:"verificationCodeExpires,omitempty"`
	RegisteredTreks         []primitive.ObjectID `json:"registeredTreks,omitempty" bson:"registeredTreks,omitempty"`
	CreatedAt               time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt               time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// RegisterRequest is the payload for starting a registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2" example:"Alice Sharma"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// RegisterResponse reports that a verification code was emailed.
type RegisterResponse struct {
	Message string `json:"message" example:"Registration successful. Please check your email for verification code."`
	Email   string `json:"email" example:"alice@example.com"`
}

// VerifyRequest is the payload for consuming a verification code.
type VerifyRequest struct {
	Email string `json:"email" binding:"required,email" example:"alice@example.com"`
	Code  string `json:"code" binding:"required,len=6,numeric" example:"482913"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse is returned after a successful verify or login.
type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  User   `json:"user"`
}

// UpdateProfileRequest is the payload for updating name and/or password.
// A password change additionally requires a fresh verification code and the
// current password.
type UpdateProfileRequest struct {
	Name             *string `json:"name" binding:"omitempty,min=2" example:"Alice S."`
	CurrentPassword  string  `json:"currentPassword" binding:"omitempty" example:"secret123"`
	NewPassword      string  `json:"newPassword" binding:"omitempty,min=6" example:"stronger456"`
	VerificationCode string  `json:"verificationCode" binding:"omitempty,len=6,numeric" example:"482913"`
}

// UserSummary is the reduced user projection embedded in admin listings.
type UserSummary struct {
	ID    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
}
