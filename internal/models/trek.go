package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trek difficulty levels, ordered from easiest to hardest.
const (
	DifficultyEasy        = "Easy"
	DifficultyModerate    = "Moderate"
	DifficultyChallenging = "Challenging"
	DifficultyDifficult   = "Difficult"
	DifficultyExtreme     = "Extreme"
)

// Difficulties lists the valid difficulty values.
var Difficulties = []string{
	DifficultyEasy,
	DifficultyModerate,
	DifficultyChallenging,
	DifficultyDifficult,
	DifficultyExtreme,
}

// ItineraryDay describes a single day of a trek itinerary.
type ItineraryDay struct {
	Day           int    `json:"day" bson:"day" example:"1"`
	Title         string `json:"title" bson:"title" example:"Arrival and acclimatization"`
	Description   string `json:"description" bson:"description"`
	Distance      string `json:"distance,omitempty" bson:"distance,omitempty" example:"8 km"`
	Elevation     string `json:"elevation,omitempty" bson:"elevation,omitempty" example:"2,100 m"`
	Accommodation string `json:"accommodation,omitempty" bson:"accommodation,omitempty" example:"Tea house"`
}

// Review is a single user review embedded in a trek. A user may review a
// trek at most once.
type Review struct {
	UserID  primitive.ObjectID `json:"userId" bson:"user"`
	Rating  int                `json:"rating" bson:"rating" example:"4"`
	Comment string             `json:"comment" bson:"comment" example:"Stunning views, tough climbs."`
	Date    time.Time          `json:"date" bson:"date" example:"2024-01-15T09:30:00Z"`
}

// Trek represents a catalog item.
type Trek struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title         string             `json:"title" bson:"title" example:"Valley of Flowers"`
	Description   string             `json:"description" bson:"description"`
	Location      string             `json:"location" bson:"location" example:"Uttarakhand"`
	Duration      int                `json:"duration" bson:"duration" example:"6"`
	Difficulty    string             `json:"difficulty" bson:"difficulty" example:"Moderate"`
	MaxGroupSize  int                `json:"maxGroupSize" bson:"maxGroupSize" example:"12"`
	Price         float64            `json:"price" bson:"price" example:"14999"`
	Images        []string           `json:"images" bson:"images"`
	StartDates    []time.Time        `json:"startDates" bson:"startDates"`
	Included      []string           `json:"included" bson:"included"`
	NotIncluded   []string           `json:"notIncluded" bson:"notIncluded"`
	Itinerary     []ItineraryDay     `json:"itinerary" bson:"itinerary"`
	Reviews       []Review           `json:"reviews" bson:"reviews"`
	AverageRating float64            `json:"averageRating" bson:"averageRating" example:"4.5"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateTrekRequest is the payload for creating a trek.
type CreateTrekRequest struct {
	Title        string         `json:"title" binding:"required,min=2,max=200" example:"Valley of Flowers"`
	Description  string         `json:"description" binding:"required" example:"A six day monsoon trek."`
	Location     string         `json:"location" binding:"required" example:"Uttarakhand"`
	Duration     int            `json:"duration" binding:"required,gt=0" example:"6"`
	Difficulty   string         `json:"difficulty" binding:"required,trekdifficulty" example:"Moderate"`
	MaxGroupSize int            `json:"maxGroupSize" binding:"required,gt=0" example:"12"`
	Price        float64        `json:"price" binding:"required,gt=0" example:"14999"`
	Images       []string       `json:"images" binding:"required,min=1,dive,url"`
	StartDates   []time.Time    `json:"startDates" binding:"required,min=1"`
	Included     []string       `json:"included"`
	NotIncluded  []string       `json:"notIncluded"`
	Itinerary    []ItineraryDay `json:"itinerary" binding:"omitempty,dive"`
}

// UpdateTrekRequest is the payload for partially updating a trek. Only the
// fields listed here may ever be overwritten; reviews, the average rating and
// timestamps are managed by the server.
type UpdateTrekRequest struct {
	Title        *string         `json:"title" binding:"omitempty,min=2,max=200"`
	Description  *string         `json:"description" binding:"omitempty"`
	Location     *string         `json:"location" binding:"omitempty"`
	Duration     *int            `json:"duration" binding:"omitempty,gt=0"`
	Difficulty   *string         `json:"difficulty" binding:"omitempty,trekdifficulty"`
	MaxGroupSize *int            `json:"maxGroupSize" binding:"omitempty,gt=0"`
	Price        *float64        `json:"price" binding:"omitempty,gt=0"`
	Images       *[]string       `json:"images" binding:"omitempty,min=1,dive,url"`
	StartDates   *[]time.Time    `json:"startDates" binding:"omitempty,min=1"`
	Included     *[]string       `json:"included"`
	NotIncluded  *[]string       `json:"notIncluded"`
	Itinerary    *[]ItineraryDay `json:"itinerary" binding:"omitempty,dive"`
}

// CreateReviewRequest is the payload for submitting a trek review.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment" binding:"omitempty,max=1000" example:"Stunning views, tough climbs."`
}

// Update converts a full-update payload to the partial form used by the
// repository, with every mutable field set.
func (r *CreateTrekRequest) Update() *UpdateTrekRequest {
	return &UpdateTrekRequest{
		Title:        &r.Title,
		Description:  &r.Description,
		Location:     &r.Location,
		Duration:     &r.Duration,
		Difficulty:   &r.Difficulty,
		MaxGroupSize: &r.MaxGroupSize,
		Price:        &r.Price,
		Images:       &r.Images,
		StartDates:   &r.StartDates,
		Included:     &r.Included,
		NotIncluded:  &r.NotIncluded,
		Itinerary:    &r.Itinerary,
	}
}
