package service

import (
	"context"
	"log"

	apperrors "trekheaven/internal/errors"
	"trekheaven/internal/models"
	"trekheaven/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegistrationService handles business logic for trek bookings.
type RegistrationService struct {
	repo     repository.RegistrationRepository
	trekRepo repository.TrekRepository
	userRepo repository.UserRepository
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(repo repository.RegistrationRepository, trekRepo repository.TrekRepository, userRepo repository.UserRepository) *RegistrationService {
	return &RegistrationService{
		repo:     repo,
		trekRepo: trekRepo,
		userRepo: userRepo,
	}
}

// CreateRegistration books a team onto a trek. The total amount is the trek
// price times the team size, computed server-side; payment is recorded as
// completed immediately since no gateway is wired in.
func (s *RegistrationService) CreateRegistration(ctx context.Context, userID primitive.ObjectID, req *models.CreateRegistrationRequest) (*models.TrekRegistration, error) {
	trekID, err := primitive.ObjectIDFromHex(req.TrekID)
	if err != nil {
		return nil, apperrors.ErrTrekNotFound
	}

	trek, err := s.trekRepo.FindByID(ctx, trekID)
	if err != nil {
		return nil, err
	}

	if len(req.TeamMembers) > trek.MaxGroupSize {
		return nil, apperrors.ErrTeamTooLarge
	}

	registration := &models.TrekRegistration{
		TrekID:        trek.ID,
		UserID:        userID,
		StartDate:     req.StartDate,
		TeamMembers:   req.TeamMembers,
		TotalAmount:   models.TotalAmount(trek.Price, len(req.TeamMembers)),
		PaymentStatus: models.PaymentCompleted,
		Status:        models.RegistrationConfirmed,
	}

	if err := s.repo.Create(ctx, registration); err != nil {
		return nil, err
	}

	// Best-effort back-reference on the user document; the registration
	// itself is the source of truth.
	if err := s.userRepo.AddRegisteredTrek(ctx, userID, registration.ID); err != nil {
		log.Printf("Warning: failed to record registration %s on user %s: %v", registration.ID.Hex(), userID.Hex(), err)
	}

	registration.Trek = trek
	return registration, nil
}

// ListUserRegistrations retrieves the caller's registrations, newest first.
func (s *RegistrationService) ListUserRegistrations(ctx context.Context, userID primitive.ObjectID) ([]models.TrekRegistration, error) {
	registrations, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.populateTreks(ctx, registrations)
	return registrations, nil
}

// GetRegistration retrieves a single registration. Only its owner may read it.
func (s *RegistrationService) GetRegistration(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrRegistrationNotFound
	}

	registration, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	if registration.UserID != userID {
		return nil, apperrors.ErrNotRegistrationOwner
	}

	if trek, err := s.trekRepo.FindByID(ctx, registration.TrekID); err == nil {
		registration.Trek = trek
	}

	return registration, nil
}

// CancelRegistration marks a registration cancelled. Cancelling an already
// cancelled registration is a no-op. Only the owner may cancel.
func (s *RegistrationService) CancelRegistration(ctx context.Context, id string, userID primitive.ObjectID) (*models.TrekRegistration, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrRegistrationNotFound
	}

	registration, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	if registration.UserID != userID {
		return nil, apperrors.ErrNotRegistrationOwner
	}

	return s.repo.UpdateStatus(ctx, objectID, models.RegistrationCancelled)
}

// ListAllRegistrations retrieves every registration with trek and user
// details attached, for the admin dashboard.
func (s *RegistrationService) ListAllRegistrations(ctx context.Context) ([]models.TrekRegistration, error) {
	registrations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.populateTreks(ctx, registrations)

	userIDs := make([]primitive.ObjectID, 0, len(registrations))
	seen := make(map[primitive.ObjectID]bool)
	for _, r := range registrations {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			userIDs = append(userIDs, r.UserID)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	for i := range registrations {
		if user, ok := users[registrations[i].UserID]; ok {
			registrations[i].User = &models.UserSummary{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			}
		}
	}

	return registrations, nil
}

// populateTreks attaches trek documents to registrations. A missing trek
// (deleted since booking) leaves the reference unpopulated.
func (s *RegistrationService) populateTreks(ctx context.Context, registrations []models.TrekRegistration) {
	treks := make(map[primitive.ObjectID]*models.Trek)
	for i := range registrations {
		trekID := registrations[i].TrekID
		if trek, ok := treks[trekID]; ok {
			registrations[i].Trek = trek
			continue
		}
		trek, err := s.trekRepo.FindByID(ctx, trekID)
		if err != nil {
			continue
		}
		treks[trekID] = trek
		registrations[i].Trek = trek
	}
}
