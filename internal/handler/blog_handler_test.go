package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "trekheaven/internal/errors"
	"trekheaven/internal/models"
	"trekheaven/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBlogHandler_List(t *testing.T) {
	mockService := &mocks.MockBlogService{
		ListBlogsFunc: func(ctx context.Context) ([]models.Blog, error) {
			return []models.Blog{{Title: "First"}, {Title: "Second"}}, nil
		},
	}

	router := gin.New()
	router.GET("/api/blogs", NewBlogHandler(mockService).List)

	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Len(t, resp["data"], 2)
}

func TestBlogHandler_GetBySlug(t *testing.T) {
	tests := []struct {
		name           string
		slug           string
		mockSetup      func(*mocks.MockBlogService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "found with related articles",
			slug: "my-trip-part-1",
			mockSetup: func(m *mocks.MockBlogService) {
				m.GetBlogBySlugFunc = func(ctx context.Context, slug string) (*models.BlogDetailResponse, error) {
					assert.Equal(t, "my-trip-part-1", slug)
					return &models.BlogDetailResponse{
						Blog:         models.Blog{Slug: slug, Views: 43},
						RelatedBlogs: []models.BlogSummary{{Slug: "another-trip"}},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeResponse(t, w)
				data := resp["data"].(map[string]interface{})
				blog := data["blog"].(map[string]interface{})
				assert.Equal(t, float64(43), blog["views"])
				assert.Len(t, data["relatedBlogs"], 1)
			},
		},
		{
			name: "unknown slug",
			slug: "missing",
			mockSetup: func(m *mocks.MockBlogService) {
				m.GetBlogBySlugFunc = func(ctx context.Context, slug string) (*models.BlogDetailResponse, error) {
					return nil, apperrors.ErrBlogNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBlogService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.GET("/api/blogs/:slug", NewBlogHandler(mockService).GetBySlug)

			req := httptest.NewRequest(http.MethodGet, "/api/blogs/"+tt.slug, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestBlogHandler_GetByID(t *testing.T) {
	blogID := primitive.NewObjectID()

	mockService := &mocks.MockBlogService{
		GetBlogByIDFunc: func(ctx context.Context, id string) (*models.Blog, error) {
			assert.Equal(t, blogID.Hex(), id)
			return &models.Blog{ID: blogID, Title: "Draft"}, nil
		},
	}

	router := gin.New()
	router.GET("/api/blogs/id/:id", NewBlogHandler(mockService).GetByID)

	req := httptest.NewRequest(http.MethodGet, "/api/blogs/id/"+blogID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBlogHandler_Create(t *testing.T) {
	admin := &models.User{ID: primitive.NewObjectID(), IsAdmin: true}

	validBody := models.CreateBlogRequest{
		Title:       "My Trip: Part 1!",
		Description: "Notes from the trail.",
		Content:     "Day one started early.",
		Images:      []string{"https://example.com/1.jpg"},
		Tags:        []string{"himalaya"},
	}

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockBlogService)
		expectedStatus int
	}{
		{
			name: "blog created with derived slug",
			body: validBody,
			mockSetup: func(m *mocks.MockBlogService) {
				m.CreateBlogFunc = func(ctx context.Context, authorID primitive.ObjectID, req *models.CreateBlogRequest) (*models.Blog, error) {
					assert.Equal(t, admin.ID, authorID)
					return &models.Blog{ID: primitive.NewObjectID(), Title: req.Title, Slug: "my-trip-part-1", AuthorID: authorID}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing images are rejected",
			body:           models.CreateBlogRequest{Title: "No Pictures", Description: "x", Content: "y"},
			mockSetup:      func(m *mocks.MockBlogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate title is a conflict",
			body: validBody,
			mockSetup: func(m *mocks.MockBlogService) {
				m.CreateBlogFunc = func(ctx context.Context, authorID primitive.ObjectID, req *models.CreateBlogRequest) (*models.Blog, error) {
					return nil, apperrors.ErrBlogTitleTaken
				}
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBlogService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/api/blogs", setUser(admin), NewBlogHandler(mockService).Create)

			req := httptest.NewRequest(http.MethodPost, "/api/blogs", jsonBody(t, tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBlogHandler_Update(t *testing.T) {
	blogID := primitive.NewObjectID()

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockBlogService)
		expectedStatus int
	}{
		{
			name: "updated",
			mockSetup: func(m *mocks.MockBlogService) {
				m.UpdateBlogFunc = func(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, error) {
					return &models.Blog{ID: blogID, Title: *req.Title}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown blog",
			mockSetup: func(m *mocks.MockBlogService) {
				m.UpdateBlogFunc = func(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, error) {
					return nil, apperrors.ErrBlogNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "retitled to an existing title",
			mockSetup: func(m *mocks.MockBlogService) {
				m.UpdateBlogFunc = func(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, error) {
					return nil, apperrors.ErrBlogTitleTaken
				}
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBlogService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.PUT("/api/blogs/:id", NewBlogHandler(mockService).Update)

			body := jsonBody(t, map[string]string{"title": "New Title"})
			req := httptest.NewRequest(http.MethodPut, "/api/blogs/"+blogID.Hex(), body)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBlogHandler_Delete(t *testing.T) {
	mockService := &mocks.MockBlogService{
		DeleteBlogFunc: func(ctx context.Context, id string) error { return nil },
	}

	router := gin.New()
	router.DELETE("/api/blogs/:id", NewBlogHandler(mockService).Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/blogs/"+primitive.NewObjectID().Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
