package repository

import (
	"context"
	"testing"
	"time"

	apperrors "trekheaven/internal/errors"
	"trekheaven/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestRegistration(userID primitive.ObjectID) *models.TrekRegistration {
	return &models.TrekRegistration{
		TrekID:    primitive.NewObjectID(),
		UserID:    userID,
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
		TotalAmount:   14999,
		PaymentStatus: models.PaymentCompleted,
		Status:        models.RegistrationConfirmed,
	}
}

func TestRegistrationRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewRegistrationRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates registration", func(t *testing.T) {
		tdb.ClearCollection(t, "trekregistrations")

		registration := newTestRegistration(primitive.NewObjectID())
		err := repo.Create(ctx, registration)

		require.NoError(t, err)
		assert.False(t, registration.ID.IsZero())
		assert.NotZero(t, registration.CreatedAt)
	})
}

func TestRegistrationRepository_FindByID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewRegistrationRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds existing registration", func(t *testing.T) {
		tdb.ClearCollection(t, "trekregistrations")

		registration := newTestRegistration(primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, registration))

		found, err := repo.FindByID(ctx, registration.ID)

		require.NoError(t, err)
		assert.Equal(t, registration.ID, found.ID)
		assert.Equal(t, registration.UserID, found.UserID)
		assert.Len(t, found.TeamMembers, 1)
	})

	t.Run("returns error for non-existent registration", func(t *testing.T) {
		found, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrRegistrationNotFound, err)
	})
}

func TestRegistrationRepository_FindByUserID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewRegistrationRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns only the user's registrations newest first", func(t *testing.T) {
		tdb.ClearCollection(t, "trekregistrations")

		userID := primitive.NewObjectID()
		otherID := primitive.NewObjectID()

		first := newTestRegistration(userID)
		require.NoError(t, repo.Create(ctx, first))
		time.Sleep(5 * time.Millisecond)
		second := newTestRegistration(userID)
		require.NoError(t, repo.Create(ctx, second))
		require.NoError(t, repo.Create(ctx, newTestRegistration(otherID)))

		registrations, err := repo.FindByUserID(ctx, userID)

		require.NoError(t, err)
		require.Len(t, registrations, 2)
		assert.Equal(t, second.ID, registrations[0].ID)
		assert.Equal(t, first.ID, registrations[1].ID)
	})

	t.Run("returns empty slice for user with no registrations", func(t *testing.T) {
		tdb.ClearCollection(t, "trekregistrations")

		registrations, err := repo.FindByUserID(ctx, primitive.NewObjectID())

		require.NoError(t, err)
		assert.NotNil(t, registrations)
		assert.Len(t, registrations, 0)
	})
}

func TestRegistrationRepository_FindAll(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewRegistrationRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns registrations across users", func(t *testing.T) {
		tdb.ClearCollection(t, "trekregistrations")

		require.NoError(t, repo.Create(ctx, newTestRegistration(primitive.NewObjectID())))
		require.NoError(t, repo.Create(ctx, newTestRegistration(primitive.NewObjectID())))

		registrations, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.Len(t, registrations, 2)
	})
}

func TestRegistrationRepository_UpdateStatus(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewRegistrationRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates status", func(t *testing.T) {
		tdb.ClearCollection(t, "trekregistrations")

		registration := newTestRegistration(primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, registration))

		updated, err := repo.UpdateStatus(ctx, registration.ID, models.RegistrationCancelled)

		require.NoError(t, err)
		assert.Equal(t, models.RegistrationCancelled, updated.Status)
	})

	t.Run("repeated update is idempotent", func(t *testing.T) {
		tdb.ClearCollection(t, "trekregistrations")

		registration := newTestRegistration(primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, registration))

		_, err := repo.UpdateStatus(ctx, registration.ID, models.RegistrationCancelled)
		require.NoError(t, err)

		updated, err := repo.UpdateStatus(ctx, registration.ID, models.RegistrationCancelled)

		require.NoError(t, err)
		assert.Equal(t, models.RegistrationCancelled, updated.Status)
	})

	t.Run("returns error for non-existent registration", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, primitive.NewObjectID(), models.RegistrationCancelled)

		assert.Equal(t, apperrors.ErrRegistrationNotFound, err)
	})
}
