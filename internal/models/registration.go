package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses for a registration.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Registration statuses.
const (
	RegistrationConfirmed = "confirmed"
	RegistrationCancelled = "cancelled"
	RegistrationCompleted = "completed"
)

// TeamMember is one person on a trek booking.
type TeamMember struct {
	Name             string `json:"name" bson:"name" binding:"required,min=2" example:"Ravi Kumar"`
	Age              int    `json:"age" bson:"age" binding:"required,gt=0" example:"29"`
	Gender           string `json:"gender" bson:"gender" binding:"required,oneof=Male Female Other" example:"Male"`
	Email            string `json:"email" bson:"email" binding:"required,email" example:"ravi@example.com"`
	Phone            string `json:"phone" bson:"phone" binding:"required" example:"+91 98765 43210"`
	EmergencyContact string `json:"emergencyContact" bson:"emergencyContact" binding:"required" example:"+91 91234 56789"`
	HealthInfo       string `json:"healthInfo,omitempty" bson:"healthInfo,omitempty" example:"Mild asthma"`
}

// TrekRegistration is a booking of one team onto a trek.
type TrekRegistration struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TrekID        primitive.ObjectID `json:"trekId" bson:"trek"`
	Trek          *Trek              `json:"trek,omitempty" bson:"-"` // populated at read time, never stored
	UserID        primitive.ObjectID `json:"userId" bson:"user"`
	User          *UserSummary       `json:"user,omitempty" bson:"-"` // populated on admin listings
	StartDate     time.Time          `json:"startDate" bson:"startDate"`
	TeamMembers   []TeamMember       `json:"teamMembers" bson:"teamMembers"`
	TotalAmount   float64            `json:"totalAmount" bson:"totalAmount" example:"44997"`
	PaymentStatus string             `json:"paymentStatus" bson:"paymentStatus" example:"completed"`
	Status        string             `json:"status" bson:"status" example:"confirmed"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateRegistrationRequest is the payload for booking a trek.
type CreateRegistrationRequest struct {
	TrekID      string       `json:"trek" binding:"required" example:"507f1f77bcf86cd799439011"`
	StartDate   time.Time    `json:"startDate" binding:"required" example:"2024-06-01T00:00:00Z"`
	TeamMembers []TeamMember `json:"teamMembers" binding:"required,min=1,dive"`
}
