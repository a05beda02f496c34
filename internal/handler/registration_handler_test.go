package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "trekheaven/internal/errors"
	"trekheaven/internal/models"
	"trekheaven/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validRegistrationRequest(trekID primitive.ObjectID) models.CreateRegistrationRequest {
	return models.CreateRegistrationRequest{
		TrekID:    trekID.Hex(),
		StartDate: time.Now().AddDate(0, 1, 0),
		TeamMembers: []models.TeamMember{
			{
				Name:             "Ravi Kumar",
				Age:              29,
				Gender:           "Male",
				Email:            "ravi@example.com",
				Phone:            "+91 98765 43210",
				EmergencyContact: "+91 91234 56789",
			},
		},
	}
}

func TestRegistrationHandler_Create(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}
	trekID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockRegistrationService)
		expectedStatus int
	}{
		{
			name: "successful booking",
			body: validRegistrationRequest(trekID),
			mockSetup: func(m *mocks.MockRegistrationService) {
				m.CreateRegistrationFunc = func(ctx context.Context, userID primitive.ObjectID, req *models.CreateRegistrationRequest) (*models.TrekRegistration, error) {
					assert.Equal(t, user.ID, userID)
					return &models.TrekRegistration{ID: primitive.NewObjectID(), UserID: userID, TotalAmount: 14999}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "empty team is rejected before the service",
			body:           models.CreateRegistrationRequest{TrekID: trekID.Hex(), StartDate: time.Now()},
			mockSetup:      func(m *mocks.MockRegistrationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "member missing emergency contact is rejected",
			body: func() models.CreateRegistrationRequest {
				r := validRegistrationRequest(trekID)
				r.TeamMembers[0].EmergencyContact = ""
				return r
			}(),
			mockSetup:      func(m *mocks.MockRegistrationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "team larger than group size",
			body: validRegistrationRequest(trekID),
			mockSetup: func(m *mocks.MockRegistrationService) {
				m.CreateRegistrationFunc = func(ctx context.Context, userID primitive.ObjectID, req *models.CreateRegistrationRequest) (*models.TrekRegistration, error) {
					return nil, apperrors.ErrTeamTooLarge
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown trek",
			body: validRegistrationRequest(trekID),
			mockSetup: func(m *mocks.MockRegistrationService) {
				m.CreateRegistrationFunc = func(ctx context.Context, userID primitive.ObjectID, req *models.CreateRegistrationRequest) (*models.TrekRegistration, error) {
					return nil, apperrors.ErrTrekNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockRegistrationService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/api/trek-registrations", setUser(user), NewRegistrationHandler(mockService).Create)

			req := httptest.NewRequest(http.MethodPost, "/api/trek-registrations", jsonBody(t, tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRegistrationHandler_ListMine(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}

	mockService := &mocks.MockRegistrationService{
		ListUserRegistrationsFunc: func(ctx context.Context, userID primitive.ObjectID) ([]models.TrekRegistration, error) {
			assert.Equal(t, user.ID, userID)
			return []models.TrekRegistration{{ID: primitive.NewObjectID(), UserID: userID}}, nil
		},
	}

	router := gin.New()
	router.GET("/api/trek-registrations/user", setUser(user), NewRegistrationHandler(mockService).ListMine)

	req := httptest.NewRequest(http.MethodGet, "/api/trek-registrations/user", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Len(t, resp["data"], 1)
}

func TestRegistrationHandler_Get(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockRegistrationService)
		expectedStatus int
	}{
		{
			name: "owner reads their booking",
			mockSetup: func(m *mocks.MockRegistrationService) {
				m.GetRegistrationFunc = func(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error) {
					return &models.TrekRegistration{UserID: userID}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "someone else's booking is forbidden",
			mockSetup: func(m *mocks.MockRegistrationService) {
				m.GetRegistrationFunc = func(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error) {
					return nil, apperrors.ErrNotRegistrationOwner
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "unknown booking",
			mockSetup: func(m *mocks.MockRegistrationService) {
				m.GetRegistrationFunc = func(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error) {
					return nil, apperrors.ErrRegistrationNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockRegistrationService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.GET("/api/trek-registrations/:id", setUser(user), NewRegistrationHandler(mockService).Get)

			req := httptest.NewRequest(http.MethodGet, "/api/trek-registrations/"+primitive.NewObjectID().Hex(), nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRegistrationHandler_Cancel(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}

	mockService := &mocks.MockRegistrationService{
		CancelRegistrationFunc: func(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error) {
			return &models.TrekRegistration{UserID: userID, Status: models.RegistrationCancelled}, nil
		},
	}

	router := gin.New()
	router.PUT("/api/trek-registrations/:id/cancel", setUser(user), NewRegistrationHandler(mockService).Cancel)

	url := "/api/trek-registrations/" + primitive.NewObjectID().Hex() + "/cancel"
	req := httptest.NewRequest(http.MethodPut, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, models.RegistrationCancelled, data["status"])
}

func TestRegistrationHandler_ListAll(t *testing.T) {
	mockService := &mocks.MockRegistrationService{
		ListAllRegistrationsFunc: func(ctx context.Context) ([]models.TrekRegistration, error) {
			return []models.TrekRegistration{
				{ID: primitive.NewObjectID(), User: &models.UserSummary{Name: "Alice"}},
				{ID: primitive.NewObjectID(), User: &models.UserSummary{Name: "Bob"}},
			}, nil
		},
	}

	router := gin.New()
	router.GET("/api/users/allregistrations", NewRegistrationHandler(mockService).ListAll)

	req := httptest.NewRequest(http.MethodGet, "/api/users/allregistrations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Len(t, resp["data"], 2)
}
