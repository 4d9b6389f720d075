package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/bachelorhub-backend/pkg/db"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/angelmondragon/bachelorhub-backend/pkg/schema"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const emailInUseMessage = "Email is already in use by another account"

// Service exposes profile management for the authenticated user.
type Service interface {
	Profile(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*UserDTO, error)
	Deactivate(ctx context.Context, id uuid.UUID, accessID string) error
	Stats(ctx context.Context, id uuid.UUID) (*StatsDTO, error)
}

// UpdateProfileInput carries the optional profile fields; nil leaves a field unchanged.
type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type profileDraft struct {
	Name  string
	Email string
	Phone string
}

var profileSchema = schema.Schema[profileDraft]{
	Resource: "User",
	Fields: []schema.Field[profileDraft]{
		{Name: "name", Ref: func(d *profileDraft) any { return &d.Name }, Trim: true, Required: "Name is required",
			Rules: []schema.Rule{
				{Tag: "min=2", Message: "Name must be at least 2 characters long"},
				{Tag: "max=50", Message: "Name cannot exceed 50 characters"},
			}},
		{Name: "email", Ref: func(d *profileDraft) any { return &d.Email }, Trim: true, Lower: true, Required: "Email is required",
			Rules: []schema.Rule{{Tag: "mailaddr", Message: "Please enter a valid email"}}},
		{Name: "phone", Ref: func(d *profileDraft) any { return &d.Phone }, Trim: true,
			Rules: []schema.Rule{{Tag: "phone", Message: "Please enter a valid phone number"}}},
	},
}

type userStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, email string, phone *string) error
	Deactivate(ctx context.Context, id uuid.UUID, releasedEmail string) error
}

type sessionRevoker interface {
	Revoke(ctx context.Context, accessID string) error
}

type service struct {
	repo     userStore
	sessions sessionRevoker
	now      func() time.Time
}

// NewService constructs the profile service.
func NewService(repo userStore, sessions sessionRevoker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session revoker required")
	}
	return &service{repo: repo, sessions: sessions, now: time.Now}, nil
}

func (s *service) Profile(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(user), nil
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*UserDTO, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := profileDraft{Name: user.Name, Email: user.Email}
	if user.Phone != nil {
		draft.Phone = *user.Phone
	}
	if input.Name != nil {
		draft.Name = *input.Name
	}
	if input.Email != nil {
		draft.Email = *input.Email
	}
	if input.Phone != nil {
		draft.Phone = *input.Phone
	}
	if err := profileSchema.Check(&draft); err != nil {
		return nil, err
	}

	if draft.Email != user.Email {
		taken, err := s.repo.EmailTaken(ctx, draft.Email, user.ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check email")
		}
		if taken {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, emailInUseMessage)
		}
	}

	var phone *string
	if draft.Phone != "" {
		phone = &draft.Phone
	}
	if err := s.repo.UpdateProfile(ctx, user.ID, draft.Name, draft.Email, phone); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, emailInUseMessage)
		}
		return nil, mapLoadError(err, "update profile")
	}

	user.Name, user.Email, user.Phone = draft.Name, draft.Email, phone
	return FromModel(user), nil
}

// Deactivate disables the account, frees its email for re-registration and
// revokes the session behind accessID.
func (s *service) Deactivate(ctx context.Context, id uuid.UUID, accessID string) error {
	user, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	released := ReleasedEmail(user.Email, s.now())
	if err := s.repo.Deactivate(ctx, user.ID, released); err != nil {
		return mapLoadError(err, "deactivate user")
	}
	if strings.TrimSpace(accessID) != "" {
		if err := s.sessions.Revoke(ctx, accessID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
		}
	}
	return nil
}

func (s *service) Stats(ctx context.Context, id uuid.UUID) (*StatsDTO, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return StatsFromModel(user), nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLoadError(err, "load user")
	}
	return user, nil
}

// ReleasedEmail is the address a deactivated account is moved to.
func ReleasedEmail(email string, at time.Time) string {
	return fmt.Sprintf("deleted_%d_%s", at.UnixMilli(), email)
}

func mapLoadError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}
