package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/angelmondragon/bachelorhub-backend/pkg/pagination"
	"github.com/angelmondragon/bachelorhub-backend/pkg/schema"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the persistence surface the engine needs.
type Store[M any] interface {
	List(ctx context.Context, q Query) ([]M, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*M, error)
	Create(ctx context.Context, m *M) error
	Update(ctx context.Context, m *M) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Binding adapts one resource to the engine. M is the stored model, D the
// draft that the schema validates and I the partial input decoded from requests.
type Binding[M any, D any, I any] struct {
	// Resource is the display name used in messages, e.g. "Housing".
	Resource string
	Schema   schema.Schema[D]
	Defaults func() D
	Apply    func(d *D, in I, actor authz.Identity)
	ToDraft  func(m *M) D
	// Fill copies the draft into the model; it must not touch id or owner.
	Fill     func(d *D, m *M)
	Owner    func(m *M) *uuid.UUID
	SetOwner func(m *M, owner uuid.UUID)
}

func (b Binding[M, D, I]) validate() error {
	switch {
	case b.Resource == "":
		return fmt.Errorf("listing binding resource required")
	case b.Defaults == nil, b.Apply == nil, b.ToDraft == nil, b.Fill == nil:
		return fmt.Errorf("%s binding conversions required", b.Resource)
	case b.Owner == nil, b.SetOwner == nil:
		return fmt.Errorf("%s binding owner accessors required", b.Resource)
	}
	return nil
}

// Page is one window of a listing read.
type Page[M any] struct {
	Items []M
	Meta  pagination.Meta
}

// Service runs the shared read, create, update and delete flows.
type Service[M any, D any, I any] struct {
	store   Store[M]
	binding Binding[M, D, I]
}

// NewService validates dependencies and returns the engine for one resource.
func NewService[M any, D any, I any](store Store[M], binding Binding[M, D, I]) (*Service[M, D, I], error) {
	if store == nil {
		return nil, fmt.Errorf("listing store required")
	}
	if err := binding.validate(); err != nil {
		return nil, err
	}
	return &Service[M, D, I]{store: store, binding: binding}, nil
}

// Resource is the display name of the managed collection.
func (s *Service[M, D, I]) Resource() string {
	return s.binding.Resource
}

// List returns one page of visible rows with its pagination meta.
func (s *Service[M, D, I]) List(ctx context.Context, q Query) (*Page[M], error) {
	items, total, err := s.store.List(ctx, q)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("list %s", s.binding.Resource))
	}
	return &Page[M]{Items: items, Meta: pagination.NewMeta(q.Page, total)}, nil
}

// Get loads a row by id whether or not it is visible.
func (s *Service[M, D, I]) Get(ctx context.Context, id uuid.UUID) (*M, error) {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(err, "load")
	}
	return m, nil
}

// Create validates the input over the resource defaults and stores it owned by actor.
func (s *Service[M, D, I]) Create(ctx context.Context, actor authz.Identity, in I) (*M, error) {
	if actor.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	m, err := s.Prepare(actor, in)
	if err != nil {
		return nil, err
	}
	s.binding.SetOwner(m, actor.ID)
	if err := s.store.Create(ctx, m); err != nil {
		return nil, s.mapStoreError(err, "create")
	}
	return m, nil
}

// Prepare validates the input over the resource defaults and returns an
// unsaved, unowned model.
func (s *Service[M, D, I]) Prepare(actor authz.Identity, in I) (*M, error) {
	draft := s.binding.Defaults()
	s.binding.Apply(&draft, in, actor)
	if err := s.binding.Schema.Check(&draft); err != nil {
		return nil, err
	}
	m := new(M)
	s.binding.Fill(&draft, m)
	return m, nil
}

// Update loads the record, authorizes actor, merges the input and re-validates
// the whole merged record before writing it back.
func (s *Service[M, D, I]) Update(ctx context.Context, actor authz.Identity, id uuid.UUID, in I) (*M, error) {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(err, "load")
	}
	if err := authz.Authorize(actor, s.binding.Owner(m), authz.ActionUpdate, s.binding.Resource); err != nil {
		return nil, err
	}

	draft := s.binding.ToDraft(m)
	s.binding.Apply(&draft, in, actor)
	if err := s.binding.Schema.Check(&draft); err != nil {
		return nil, err
	}

	s.binding.Fill(&draft, m)
	if err := s.store.Update(ctx, m); err != nil {
		return nil, s.mapStoreError(err, "update")
	}
	return m, nil
}

func (s *Service[M, D, I]) Delete(ctx context.Context, actor authz.Identity, id uuid.UUID) error {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return s.mapStoreError(err, "load")
	}
	if err := authz.Authorize(actor, s.binding.Owner(m), authz.ActionDelete, s.binding.Resource); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return s.mapStoreError(err, "delete")
	}
	return nil
}

// NotFound is the error returned for a missing record of this resource.
func (s *Service[M, D, I]) NotFound() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound, s.binding.Resource+" not found")
}

func (s *Service[M, D, I]) mapStoreError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.NotFound()
	}
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("%s %s", op, s.binding.Resource))
}
