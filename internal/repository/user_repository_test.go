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

func TestNewUserRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)

	assert.NotNil(t, repo)
}

func TestUserRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Email:    "test@example.com",
			Password: "hashedpassword",
			Name:     "Test User",
		}

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.NotZero(t, user.CreatedAt)
		assert.NotZero(t, user.UpdatedAt)
	})

	t.Run("returns error for duplicate email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user1 := &models.User{
			Email:    "duplicate@example.com",
			Password: "hashedpassword",
			Name:     "User 1",
		}
		err := repo.Create(ctx, user1)
		require.NoError(t, err)

		user2 := &models.User{
			Email:    "duplicate@example.com",
			Password: "hashedpassword",
			Name:     "User 2",
		}
		err = repo.Create(ctx, user2)

		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds existing user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Email:    "findbyid@example.com",
			Password: "hashedpassword",
			Name:     "Find By ID User",
		}
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, user.Email, found.Email)
		assert.Equal(t, user.Name, found.Name)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		nonExistentID := primitive.NewObjectID()
		found, err := repo.FindByID(ctx, nonExistentID)

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_FindByIDs(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns matching users keyed by ID", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user1 := &models.User{Email: "one@example.com", Password: "pass", Name: "One"}
		user2 := &models.User{Email: "two@example.com", Password: "pass", Name: "Two"}
		require.NoError(t, repo.Create(ctx, user1))
		require.NoError(t, repo.Create(ctx, user2))

		missing := primitive.NewObjectID()
		users, err := repo.FindByIDs(ctx, []primitive.ObjectID{user1.ID, user2.ID, missing})

		require.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "One", users[user1.ID].Name)
		assert.Equal(t, "Two", users[user2.ID].Name)
		_, ok := users[missing]
		assert.False(t, ok)
	})

	t.Run("returns empty map for no IDs", func(t *testing.T) {
		users, err := repo.FindByIDs(ctx, nil)

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Len(t, users, 0)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds user by email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Email:    "findbyemail@example.com",
			Password: "hashedpassword",
			Name:     "Find By Email User",
		}
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		found, err := repo.FindByEmail(ctx, "findbyemail@example.com")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, user.Email, found.Email)
	})

	t.Run("returns error for non-existent email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		found, err := repo.FindByEmail(ctx, "nonexistent@example.com")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_FindByEmailAndCode(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	createWithCode := func(t *testing.T, email, code string, expires time.Time) *models.User {
		t.Helper()
		user := &models.User{Email: email, Password: "pass", Name: "Code User"}
		require.NoError(t, repo.Create(ctx, user))
		require.NoError(t, repo.SetVerificationCode(ctx, user.ID, code, expires))
		return user
	}

	t.Run("matches email with unexpired code", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := createWithCode(t, "code@example.com", "123456", time.Now().Add(10*time.Minute))

		found, err := repo.FindByEmailAndCode(ctx, "code@example.com", "123456", time.Now())

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("rejects wrong code", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		createWithCode(t, "wrongcode@example.com", "123456", time.Now().Add(10*time.Minute))

		found, err := repo.FindByEmailAndCode(ctx, "wrongcode@example.com", "654321", time.Now())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrInvalidVerificationCode, err)
	})

	t.Run("rejects expired code", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		createWithCode(t, "expired@example.com", "123456", time.Now().Add(-time.Minute))

		found, err := repo.FindByEmailAndCode(ctx, "expired@example.com", "123456", time.Now())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrInvalidVerificationCode, err)
	})

	t.Run("rejects code exactly at expiry", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		expires := time.Now().Truncate(time.Millisecond)
		createWithCode(t, "boundary@example.com", "123456", expires)

		found, err := repo.FindByEmailAndCode(ctx, "boundary@example.com", "123456", expires)

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrInvalidVerificationCode, err)
	})
}

func TestUserRepository_ResetUnverified(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("overwrites unverified account state", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Email: "pending@example.com", Password: "oldhash", Name: "Old Name"}
		require.NoError(t, repo.Create(ctx, user))

		expires := time.Now().Add(10 * time.Minute)
		err := repo.ResetUnverified(ctx, user.ID, "New Name", "newhash", "999999", expires)

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Name", found.Name)
		assert.Equal(t, "newhash", found.Password)
		assert.Equal(t, "999999", found.VerificationCode)
		assert.False(t, found.IsVerified)
	})

	t.Run("does not touch verified accounts", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Email: "verified@example.com", Password: "hash", Name: "Verified"}
		require.NoError(t, repo.Create(ctx, user))
		require.NoError(t, repo.MarkVerified(ctx, user.ID))

		err := repo.ResetUnverified(ctx, user.ID, "Attacker", "newhash", "111111", time.Now().Add(10*time.Minute))

		assert.Equal(t, apperrors.ErrUserNotFound, err)

		found, findErr := repo.FindByID(ctx, user.ID)
		require.NoError(t, findErr)
		assert.Equal(t, "Verified", found.Name)
	})
}

func TestUserRepository_MarkVerified(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("sets verified and clears code", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Email: "mark@example.com", Password: "hash", Name: "Mark"}
		require.NoError(t, repo.Create(ctx, user))
		require.NoError(t, repo.SetVerificationCode(ctx, user.ID, "123456", time.Now().Add(10*time.Minute)))

		err := repo.MarkVerified(ctx, user.ID)

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, found.IsVerified)
		assert.Empty(t, found.VerificationCode)
		assert.Nil(t, found.VerificationCodeExpires)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		err := repo.MarkVerified(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates name only", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Email: "profile@example.com", Password: "hash", Name: "Original"}
		require.NoError(t, repo.Create(ctx, user))

		newName := "Renamed"
		updated, err := repo.UpdateProfile(ctx, user.ID, &newName, nil)

		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, "hash", updated.Password)
	})

	t.Run("updates password and clears verification code", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Email: "passchange@example.com", Password: "oldhash", Name: "User"}
		require.NoError(t, repo.Create(ctx, user))
		require.NoError(t, repo.SetVerificationCode(ctx, user.ID, "123456", time.Now().Add(10*time.Minute)))

		newHash := "newhash"
		updated, err := repo.UpdateProfile(ctx, user.ID, nil, &newHash)

		require.NoError(t, err)
		assert.Equal(t, "newhash", updated.Password)
		assert.Empty(t, updated.VerificationCode)
		assert.Nil(t, updated.VerificationCodeExpires)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		newName := "Nobody"
		_, err := repo.UpdateProfile(ctx, primitive.NewObjectID(), &newName, nil)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_AddRegisteredTrek(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("appends registration reference once", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Email: "booker@example.com", Password: "hash", Name: "Booker"}
		require.NoError(t, repo.Create(ctx, user))

		regID := primitive.NewObjectID()
		require.NoError(t, repo.AddRegisteredTrek(ctx, user.ID, regID))
		// Repeated adds must not duplicate the reference
		require.NoError(t, repo.AddRegisteredTrek(ctx, user.ID, regID))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{regID}, found.RegisteredTreks)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		err := repo.AddRegisteredTrek(ctx, primitive.NewObjectID(), primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}
