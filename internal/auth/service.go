// Package auth signs users up and in and rotates their sessions.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/bachelorhub-backend/internal/users"
	pkgAuth "github.com/angelmondragon/bachelorhub-backend/pkg/auth"
	"github.com/angelmondragon/bachelorhub-backend/pkg/auth/session"
	"github.com/angelmondragon/bachelorhub-backend/pkg/config"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/angelmondragon/bachelorhub-backend/pkg/schema"
	"github.com/angelmondragon/bachelorhub-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	invalidCredentialsMessage = "Invalid email or password"
	userExistsMessage         = "User already exists with this email"
)

// Service defines the behavior needed by the auth controllers.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, accessID, refreshToken string) (*AuthResponse, error)
	Verify(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error)
}

type userRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string, userID uuid.UUID) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (*session.Session, error)
	Revoke(ctx context.Context, accessID string) error
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

type service struct {
	users       userRepository
	session     sessionManager
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

type signupDraft struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

var signupSchema = schema.Schema[signupDraft]{
	Resource: "User",
	Fields: []schema.Field[signupDraft]{
		{Name: "name", Ref: func(d *signupDraft) any { return &d.Name }, Trim: true, Required: "Name is required",
			Rules: []schema.Rule{
				{Tag: "min=2", Message: "Name must be at least 2 characters long"},
				{Tag: "max=50", Message: "Name cannot exceed 50 characters"},
			}},
		{Name: "email", Ref: func(d *signupDraft) any { return &d.Email }, Trim: true, Lower: true, Required: "Email is required",
			Rules: []schema.Rule{{Tag: "mailaddr", Message: "Please enter a valid email"}}},
		{Name: "password", Ref: func(d *signupDraft) any { return &d.Password }, Required: "Password is required",
			Rules: []schema.Rule{{Tag: "min=6", Message: "Password must be at least 6 characters long"}}},
		{Name: "phone", Ref: func(d *signupDraft) any { return &d.Phone }, Trim: true,
			Rules: []schema.Rule{{Tag: "phone", Message: "Please enter a valid phone number"}}},
	},
}

// NewService constructs the auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		users:       params.UserRepo,
		session:     params.SessionManager,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	draft := signupDraft{Name: req.Name, Email: req.Email, Password: req.Password}
	if req.Phone != nil {
		draft.Phone = *req.Phone
	}
	if err := signupSchema.Check(&draft); err != nil {
		return nil, err
	}

	taken, err := s.users.EmailTaken(ctx, draft.Email, uuid.Nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
	}
	if taken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, userExistsMessage)
	}

	hash, err := security.HashPassword(draft.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var phone *string
	if draft.Phone != "" {
		phone = &draft.Phone
	}
	user, err := s.users.Create(ctx, users.CreateUserDTO{
		Name:         draft.Name,
		Email:        draft.Email,
		PasswordHash: hash,
		Phone:        phone,
		Role:         enums.RoleUser,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, userExistsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	return s.issue(ctx, user, session.NewAccessID())
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := users.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	valid, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid || !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	if security.NeedsRehash(user.PasswordHash, s.passwordCfg) {
		if hash, err := security.HashPassword(req.Password, s.passwordCfg); err == nil {
			if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upgrade password hash")
			}
		}
	}

	now := s.now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update last login")
	}
	user.LastLoginAt = &now

	return s.issue(ctx, user, session.NewAccessID())
}

// Refresh rotates the session opened for accessID and mints a token from the
// current user record, so role and email changes take effect.
func (s *service) Refresh(ctx context.Context, accessID, refreshToken string) (*AuthResponse, error) {
	next, err := s.session.Rotate(ctx, strings.TrimSpace(accessID), strings.TrimSpace(refreshToken))
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rotate session")
	}

	user, err := s.users.FindByID(ctx, next.UserID)
	if err != nil || !user.IsActive {
		_ = s.session.Revoke(ctx, next.AccessID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
		}
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account is no longer active")
	}

	token, err := s.mint(user, next.AccessID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{AccessToken: token, RefreshToken: next.RefreshToken, User: users.FromModel(user)}, nil
}

func (s *service) Verify(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account is no longer active")
	}
	return users.FromModel(user), nil
}

func (s *service) issue(ctx context.Context, user *models.User, accessID string) (*AuthResponse, error) {
	token, err := s.mint(user, accessID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.session.Generate(ctx, accessID, user.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store refresh token")
	}
	return &AuthResponse{AccessToken: token, RefreshToken: refresh, User: users.FromModel(user)}, nil
}

func (s *service) mint(user *models.User, accessID string) (string, error) {
	token, err := pkgAuth.MintAccessToken(s.jwtCfg, s.now(), pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		JTI:    accessID,
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	return token, nil
}
