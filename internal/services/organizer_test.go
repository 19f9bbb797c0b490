package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventgate/internal/domain"
)

type fakeOrganizerRepo struct {
	byID    map[string]*domain.Organizer
	byEmail map[string]*domain.Organizer
}

func newFakeOrganizerRepo() *fakeOrganizerRepo {
	return &fakeOrganizerRepo{byID: map[string]*domain.Organizer{}, byEmail: map[string]*domain.Organizer{}}
}

func (f *fakeOrganizerRepo) Create(ctx context.Context, o *domain.Organizer) error {
	if _, ok := f.byEmail[o.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.byID[o.ID] = o
	f.byEmail[o.Email] = o
	return nil
}

func (f *fakeOrganizerRepo) GetByID(ctx context.Context, id string) (*domain.Organizer, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrganizerRepo) GetByEmail(ctx context.Context, email string) (*domain.Organizer, error) {
	o, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrganizerRepo) Update(ctx context.Context, o *domain.Organizer) error {
	old, ok := f.byID[o.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if existing, ok := f.byEmail[o.Email]; ok && existing.ID != o.ID {
		return domain.ErrDuplicateEmail
	}
	delete(f.byEmail, old.Email)
	f.byID[o.ID] = o
	f.byEmail[o.Email] = o
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Issue(organizerID, email string, expiry time.Duration) (string, error) {
	return "token-for-" + organizerID, nil
}

func TestOrganizerService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := newFakeOrganizerRepo()
		svc := NewOrganizerService(repo, fakeHasher{}, fakeTokenIssuer{})

		token, organizer, err := svc.SignUp(ctx, "alice@example.com", "supersecret", "Alice")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "alice@example.com", organizer.Email)
		assert.Equal(t, domain.OrganizerRoleStaff, organizer.Role)
		assert.Equal(t, "hashed:supersecret", organizer.PasswordHash)
		assert.Contains(t, repo.byEmail, "alice@example.com")
	})

	t.Run("short password", func(t *testing.T) {
		svc := NewOrganizerService(newFakeOrganizerRepo(), fakeHasher{}, fakeTokenIssuer{})
		_, _, err := svc.SignUp(ctx, "alice@example.com", "short", "Alice")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeOrganizerRepo()
		svc := NewOrganizerService(repo, fakeHasher{}, fakeTokenIssuer{})
		_, _, err := svc.SignUp(ctx, "alice@example.com", "supersecret", "Alice")
		require.NoError(t, err)
		_, _, err = svc.SignUp(ctx, "alice@example.com", "supersecret", "Another Alice")
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("bad email", func(t *testing.T) {
		svc := NewOrganizerService(newFakeOrganizerRepo(), fakeHasher{}, fakeTokenIssuer{})
		_, _, err := svc.SignUp(ctx, "not-an-email", "supersecret", "Alice")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestOrganizerService_SignIn(t *testing.T) {
	ctx := context.Background()

	repo := newFakeOrganizerRepo()
	svc := NewOrganizerService(repo, fakeHasher{}, fakeTokenIssuer{})
	_, organizer, err := svc.SignUp(ctx, "alice@example.com", "supersecret", "Alice")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "success", email: "alice@example.com", password: "supersecret"},
		{name: "email is case insensitive", email: "ALICE@Example.com", password: "supersecret"},
		{name: "wrong password", email: "alice@example.com", password: "wrong", wantErr: domain.ErrInvalidCredentials},
		{name: "unknown email", email: "bob@example.com", password: "supersecret", wantErr: domain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, got, err := svc.SignIn(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-for-"+organizer.ID, token)
			assert.Equal(t, organizer.ID, got.ID)
		})
	}
}

func TestOrganizerService_Update(t *testing.T) {
	ctx := context.Background()

	repo := newFakeOrganizerRepo()
	svc := NewOrganizerService(repo, fakeHasher{}, fakeTokenIssuer{})
	_, organizer, err := svc.SignUp(ctx, "alice@example.com", "supersecret", "Alice")
	require.NoError(t, err)

	t.Run("updates own account", func(t *testing.T) {
		name := "Alice Cooper"
		got, err := svc.Update(ctx, organizer.ID, organizer.ID, &name, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Alice Cooper", got.Name)
	})

	t.Run("cannot update someone else", func(t *testing.T) {
		name := "Mallory"
		_, err := svc.Update(ctx, organizer.ID, "other-organizer", &name, nil, nil)
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		role := "superuser"
		_, err := svc.Update(ctx, organizer.ID, organizer.ID, nil, nil, &role)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}
