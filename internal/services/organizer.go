package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventgate/internal/domain"
	"eventgate/internal/idgen"
)

const (
	minPasswordLen = 8
	tokenExpiry    = 24 * time.Hour
)

type organizerService struct {
	organizerRepo domain.OrganizerRepository
	hasher        domain.PasswordHasher
	issuer        domain.TokenIssuer
}

// NewOrganizerService creates an OrganizerService with the given repository,
// password hasher, and token issuer.
func NewOrganizerService(organizerRepo domain.OrganizerRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer) domain.OrganizerService {
	return &organizerService{
		organizerRepo: organizerRepo,
		hasher:        hasher,
		issuer:        issuer,
	}
}

func (s *organizerService) SignUp(ctx context.Context, email, password, name string) (string, *domain.Organizer, error) {
	if len(password) < minPasswordLen {
		return "", nil, domain.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}
	organizer, err := domain.NewOrganizer(idgen.NewID(), email, name, hash, time.Now())
	if err != nil {
		return "", nil, err
	}
	if err := s.organizerRepo.Create(ctx, organizer); err != nil {
		return "", nil, err
	}
	token, err := s.issuer.Issue(organizer.ID, organizer.Email, tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, organizer, nil
}

// SignIn verifies credentials and returns a bearer token. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *organizerService) SignIn(ctx context.Context, email, password string) (string, *domain.Organizer, error) {
	organizer, err := s.organizerRepo.GetByEmail(ctx, domain.SanitizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load organizer: %w", err)
	}
	if err := s.hasher.Compare(organizer.PasswordHash, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(organizer.ID, organizer.Email, tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, organizer, nil
}

func (s *organizerService) GetByID(ctx context.Context, id string) (*domain.Organizer, error) {
	return s.organizerRepo.GetByID(ctx, id)
}

// Update applies optional detail changes. Organizers may only update their
// own account.
func (s *organizerService) Update(ctx context.Context, id, callerID string, name, email, role *string) (*domain.Organizer, error) {
	if id != callerID {
		return nil, domain.ErrForbidden
	}
	organizer, err := s.organizerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := organizer.UpdateDetails(name, email, role, time.Now()); err != nil {
		return nil, err
	}
	if err := s.organizerRepo.Update(ctx, organizer); err != nil {
		return nil, err
	}
	return organizer, nil
}
