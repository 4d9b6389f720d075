package users

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubUserStore struct {
	users       map[uuid.UUID]*models.User
	taken       bool
	updated     bool
	deactivated string
}

func (s *stubUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserStore) EmailTaken(context.Context, string, uuid.UUID) (bool, error) {
	return s.taken, nil
}

func (s *stubUserStore) UpdateProfile(context.Context, uuid.UUID, string, string, *string) error {
	s.updated = true
	return nil
}

func (s *stubUserStore) Deactivate(_ context.Context, _ uuid.UUID, email string) error {
	s.deactivated = email
	return nil
}

type stubRevoker struct {
	revoked []string
	err     error
}

func (s *stubRevoker) Revoke(_ context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return s.err
}

func newProfileService(t *testing.T, user *models.User) (*service, *stubUserStore, *stubRevoker) {
	t.Helper()
	store := &stubUserStore{users: map[uuid.UUID]*models.User{user.ID: user}}
	revoker := &stubRevoker{}
	svc, err := NewService(store, revoker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	impl := svc.(*service)
	impl.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return impl, store, revoker
}

func sampleUser() *models.User {
	return &models.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com", Role: enums.RoleUser, IsActive: true, CreatedAt: time.Unix(1600000000, 0)}
}

func strp(v string) *string { return &v }

func TestNewServiceRequiresDependencies(t *testing.T) {
	if _, err := NewService(nil, &stubRevoker{}); err == nil {
		t.Fatal("expected error for nil repo")
	}
	if _, err := NewService(&stubUserStore{}, nil); err == nil {
		t.Fatal("expected error for nil revoker")
	}
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	user := sampleUser()
	svc, store, _ := newProfileService(t, user)
	store.taken = true

	_, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileInput{Email: strp("Taken@Example.com")})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict || typed.Message() != emailInUseMessage {
		t.Fatalf("expected conflict, got %v", err)
	}
	if store.updated {
		t.Fatal("conflicting update must not be written")
	}
}

func TestUpdateProfileValidatesAndNormalizes(t *testing.T) {
	user := sampleUser()
	svc, store, _ := newProfileService(t, user)

	_, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileInput{Name: strp("A"), Phone: strp("call me")})
	want := []string{"Name must be at least 2 characters long", "Please enter a valid phone number"}
	if got := pkgerrors.Messages(err); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	dto, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileInput{Email: strp(" NEW@Example.com "), Phone: strp("+1 555 0100")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Email != "new@example.com" || dto.Name != "Asha" || dto.Phone == nil || *dto.Phone != "+1 555 0100" {
		t.Fatalf("unexpected dto %+v", dto)
	}
	if !store.updated {
		t.Fatal("expected profile write")
	}
}

func TestDeactivateReleasesEmailAndRevokesSession(t *testing.T) {
	user := sampleUser()
	svc, store, revoker := newProfileService(t, user)

	if err := svc.Deactivate(context.Background(), user.ID, "jti-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.deactivated != "deleted_1700000000000_asha@example.com" {
		t.Fatalf("unexpected released email %q", store.deactivated)
	}
	if !reflect.DeepEqual(revoker.revoked, []string{"jti-1"}) {
		t.Fatalf("expected session revoke, got %v", revoker.revoked)
	}

	revoker.err = errors.New("redis down")
	if err := svc.Deactivate(context.Background(), user.ID, "jti-2"); pkgerrors.As(err).Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestStatsAndMissingUser(t *testing.T) {
	user := sampleUser()
	svc, _, _ := newProfileService(t, user)

	stats, err := svc.Stats(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.AccountStatus != "Active" || stats.Role != enums.RoleUser || !stats.JoinedDate.Equal(user.CreatedAt) {
		t.Fatalf("unexpected stats %+v", stats)
	}

	if _, err := svc.Profile(context.Background(), uuid.New()); pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
