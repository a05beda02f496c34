package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a content item. The slug is derived from the title on
// every write, so renaming a blog changes its public URL.
type Blog struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title       string             `json:"title" bson:"title" example:"My Trip: Part 1!"`
	Slug        string             `json:"slug" bson:"slug" example:"my-trip-part-1"`
	Description string             `json:"description" bson:"description"`
	Content     string             `json:"content" bson:"content"`
	AuthorID    primitive.ObjectID `json:"authorId" bson:"author"`
	Author      *UserSummary       `json:"author,omitempty" bson:"-"` // populated at read time
	Images      []string           `json:"images" bson:"images"`
	Views       int64              `json:"views" bson:"views" example:"42"`
	Tags        []string           `json:"tags" bson:"tags" example:"himalaya,monsoon"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// BlogSummary is the projection used for related-blog lookups.
type BlogSummary struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Slug      string             `json:"slug" bson:"slug"`
	Images    []string           `json:"images" bson:"images"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// BlogDetailResponse is the public single-blog response.
type BlogDetailResponse struct {
	Blog         Blog          `json:"blog"`
	RelatedBlogs []BlogSummary `json:"relatedBlogs"`
}

// CreateBlogRequest is the payload for creating a blog.
type CreateBlogRequest struct {
	Title       string   `json:"title" binding:"required,min=2,max=200" example:"My Trip: Part 1!"`
	Description string   `json:"description" binding:"required" example:"Notes from the trail."`
	Content     string   `json:"content" binding:"required"`
	Images      []string `json:"images" binding:"required,min=1,dive,url"`
	Tags        []string `json:"tags" binding:"omitempty,max=10,dive,max=50"`
}

// UpdateBlogRequest is the payload for updating a blog. The author, the
// creation timestamp and the view counter are never client-writable.
type UpdateBlogRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=2,max=200"`
	Description *string   `json:"description" binding:"omitempty"`
	Content     *string   `json:"content" binding:"omitempty"`
	Images      *[]string `json:"images" binding:"omitempty,min=1,dive,url"`
	Tags        *[]string `json:"tags" binding:"omitempty,max=10,dive,max=50"`
}
