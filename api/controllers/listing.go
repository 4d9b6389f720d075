package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/bachelorhub-backend/api/middleware"
	"github.com/angelmondragon/bachelorhub-backend/api/responses"
	"github.com/angelmondragon/bachelorhub-backend/api/validators"
	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/internal/users"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
	"github.com/google/uuid"
)

type listingService[M any, I any] interface {
	List(ctx context.Context, q listing.Query) (*listing.Page[M], error)
	Get(ctx context.Context, id uuid.UUID) (*M, error)
	Create(ctx context.Context, actor authz.Identity, in I) (*M, error)
	Update(ctx context.Context, actor authz.Identity, id uuid.UUID, in I) (*M, error)
	Delete(ctx context.Context, actor authz.Identity, id uuid.UUID) error
}

type ownerSummaries interface {
	Summaries(ctx context.Context, ids []*uuid.UUID) (map[uuid.UUID]users.OwnerSummary, error)
}

// ListingHandlers are the CRUD endpoints of one listing collection.
type ListingHandlers struct {
	List   http.HandlerFunc
	Get    http.HandlerFunc
	Create http.HandlerFunc
	Update http.HandlerFunc
	Delete http.HandlerFunc
}

type listingEndpoint[M any, I any, D any] struct {
	svc    listingService[M, I]
	spec   listing.Spec
	label  string
	bounds listing.Bounds
	render func(ctx context.Context, rows []M) ([]D, error)
	logg   *logger.Logger
}

func (e listingEndpoint[M, I, D]) handlers() ListingHandlers {
	return ListingHandlers{
		List:   e.list(nil),
		Get:    e.get(),
		Create: e.create(),
		Update: e.update(),
		Delete: e.remove(),
	}
}

// list serves a filtered page. pin, when set, fixes a category taken from the path.
func (e listingEndpoint[M, I, D]) list(pin func(r *http.Request, q listing.Query) listing.Query) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := listing.ParseQuery(r.URL.Query(), e.spec, e.bounds)
		if pin != nil {
			q = pin(r, q)
		}

		page, err := e.svc.List(r.Context(), q)
		if err != nil {
			responses.WriteError(r.Context(), e.logg, w, err)
			return
		}

		items, err := e.render(r.Context(), page.Items)
		if err != nil {
			responses.WriteError(r.Context(), e.logg, w, err)
			return
		}
		responses.WritePage(w, items, page.Meta)
	}
}

func (e listingEndpoint[M, I, D]) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id", e.spec.Resource)
		if err != nil {
			responses.WriteError(r.Context(), e.logg, w, err)
			return
		}

		row, err := e.svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), e.logg, w, err)
			return
		}
		e.writeOne(w, r, http.StatusOK, "", row)
	}
}

func (e listingEndpoint[M, I, D]) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in I
		if err := validators.DecodeInput(r, &in); err != nil {
			responses.WriteError(r.Context(), e.logg, w, err)
			return
		}

		row, err := e.svc.Create(r.Context(), middleware.IdentityFromContext(r.Context()), in)
		if err != nil {
			responses.WriteError(r.Context(), e.logg, w, err)
			return
		}
		e.writeOne(w, r, http.StatusCreated, e.label+" created successfully", row)
	}
}

func (e listingEndpoint[M, I, D]) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id", e.spec.Resource)
		if err != nil {
			responses.WriteError(r.Context(), e.logg, w, err)
			return
		}

		var in I
		if err := validators.DecodeInput(r, &in); err != nil {
			responses.WriteError(r.Context(), e.logg, w, err)
			return
		}

		row, err := e.svc.Update(r.Context(), middleware.IdentityFromContext(r.Context()), id, in)
		if err != nil {
			responses.WriteError(r.Context(), e.logg, w, err)
			return
		}
		e.writeOne(w, r, http.StatusOK, e.label+" updated successfully", row)
	}
}

func (e listingEndpoint[M, I, D]) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id", e.spec.Resource)
		if err != nil {
			responses.WriteError(r.Context(), e.logg, w, err)
			return
		}

		if err := e.svc.Delete(r.Context(), middleware.IdentityFromContext(r.Context()), id); err != nil {
			responses.WriteError(r.Context(), e.logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, e.label+" deleted successfully", nil)
	}
}

func (e listingEndpoint[M, I, D]) writeOne(w http.ResponseWriter, r *http.Request, status int, message string, row *M) {
	items, err := e.render(r.Context(), []M{*row})
	if err != nil {
		responses.WriteError(r.Context(), e.logg, w, err)
		return
	}
	if message == "" {
		responses.WriteSuccessStatus(w, status, items[0])
		return
	}
	responses.WriteMessage(w, status, message, items[0])
}

// pinCategory fixes spec category param to the {param} path value.
func pinCategory(spec listing.Spec, param, pathParam string) func(r *http.Request, q listing.Query) listing.Query {
	return func(r *http.Request, q listing.Query) listing.Query {
		return q.WithCategory(spec, param, validators.PathValue(r, pathParam))
	}
}
