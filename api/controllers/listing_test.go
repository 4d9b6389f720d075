package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/bachelorhub-backend/api/middleware"
	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/housing"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/internal/maids"
	"github.com/angelmondragon/bachelorhub-backend/internal/users"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/angelmondragon/bachelorhub-backend/pkg/pagination"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type stubListing[M any, I any] struct {
	page      *listing.Page[M]
	row       *M
	err       error
	lastQuery listing.Query
	lastActor authz.Identity
	lastInput I
	lastID    uuid.UUID
}

func (s *stubListing[M, I]) List(_ context.Context, q listing.Query) (*listing.Page[M], error) {
	s.lastQuery = q
	return s.page, s.err
}

func (s *stubListing[M, I]) Get(_ context.Context, id uuid.UUID) (*M, error) {
	s.lastID = id
	return s.row, s.err
}

func (s *stubListing[M, I]) Create(_ context.Context, actor authz.Identity, in I) (*M, error) {
	s.lastActor, s.lastInput = actor, in
	return s.row, s.err
}

func (s *stubListing[M, I]) Update(_ context.Context, actor authz.Identity, id uuid.UUID, in I) (*M, error) {
	s.lastActor, s.lastID, s.lastInput = actor, id, in
	return s.row, s.err
}

func (s *stubListing[M, I]) Delete(_ context.Context, actor authz.Identity, id uuid.UUID) error {
	s.lastActor, s.lastID = actor, id
	return s.err
}

type stubOwners struct {
	owners map[uuid.UUID]users.OwnerSummary
	calls  int
	err    error
}

func (s *stubOwners) Summaries(_ context.Context, _ []*uuid.UUID) (map[uuid.UUID]users.OwnerSummary, error) {
	s.calls++
	return s.owners, s.err
}

type envelope struct {
	Success    bool             `json:"success"`
	Code       string           `json:"code"`
	Message    string           `json:"message"`
	Data       json.RawMessage  `json:"data"`
	Errors     []string         `json:"errors"`
	Pagination *pagination.Meta `json:"pagination"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return env
}

func withParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withCaller(r *http.Request, identity authz.Identity) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), identity))
}

var testBounds = listing.Bounds{DefaultLimit: 10, MaxLimit: 100}

func TestHousingListAttachesLandlordAndPagination(t *testing.T) {
	ownerID := uuid.New()
	svc := &stubListing[models.Housing, housing.Input]{
		page: &listing.Page[models.Housing]{
			Items: []models.Housing{{ID: uuid.New(), Title: "Studio", Rent: 800, OwnerID: &ownerID}},
			Meta:  pagination.Meta{Page: 2, Limit: 1, Total: 3, Pages: 3},
		},
	}
	owners := &stubOwners{owners: map[uuid.UUID]users.OwnerSummary{ownerID: {ID: ownerID, Name: "Lena"}}}
	handlers := Housing(svc, owners, testBounds, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/housing?page=2&limit=1&maxRent=900", nil)
	rec := httptest.NewRecorder()
	handlers.List.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Pagination == nil || env.Pagination.Pages != 3 || env.Pagination.Page != 2 {
		t.Fatalf("unexpected pagination %+v", env.Pagination)
	}
	var items []housing.HousingDTO
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 1 || items[0].Landlord == nil || items[0].Landlord.Name != "Lena" {
		t.Fatalf("expected landlord attached, got %+v", items)
	}
	if svc.lastQuery.Page.Page != 2 || svc.lastQuery.Page.Limit != 1 {
		t.Fatalf("expected page window forwarded, got %+v", svc.lastQuery.Page)
	}
	if owners.calls != 1 {
		t.Fatalf("expected one owner batch, got %d", owners.calls)
	}
}

func TestHousingGetRejectsMalformedID(t *testing.T) {
	svc := &stubListing[models.Housing, housing.Input]{}
	handlers := Housing(svc, &stubOwners{}, testBounds, nil)

	req := withParams(httptest.NewRequest(http.MethodGet, "/api/housing/abc", nil), map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	handlers.Get.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Invalid housing ID" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestHousingGetNotFound(t *testing.T) {
	svc := &stubListing[models.Housing, housing.Input]{err: pkgerrors.New(pkgerrors.CodeNotFound, "Housing not found")}
	handlers := Housing(svc, &stubOwners{}, testBounds, nil)

	id := uuid.New()
	req := withParams(httptest.NewRequest(http.MethodGet, "/api/housing/"+id.String(), nil), map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()
	handlers.Get.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	if svc.lastID != id {
		t.Fatalf("expected id forwarded")
	}
}

func TestHousingCreatePassesCaller(t *testing.T) {
	caller := authz.Identity{ID: uuid.New(), Role: enums.RoleUser, Email: "a@example.com"}
	svc := &stubListing[models.Housing, housing.Input]{row: &models.Housing{ID: uuid.New(), Title: "Loft", OwnerID: &caller.ID}}
	handlers := Housing(svc, &stubOwners{}, testBounds, nil)

	body := []byte(`{"title":"Loft","rent":950,"ownerRef":"ignored"}`)
	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/housing", bytes.NewReader(body)), caller)
	rec := httptest.NewRecorder()
	handlers.Create.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Housing created successfully" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	if svc.lastActor.ID != caller.ID {
		t.Fatalf("expected caller forwarded")
	}
	if svc.lastInput.Title == nil || *svc.lastInput.Title != "Loft" {
		t.Fatalf("expected decoded input, got %+v", svc.lastInput)
	}
}

func TestHousingCreateValidationErrors(t *testing.T) {
	svc := &stubListing[models.Housing, housing.Input]{
		err: pkgerrors.Validation([]string{"Title is required", "Rent is required", "Location is required"}),
	}
	handlers := Housing(svc, &stubOwners{}, testBounds, nil)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/housing", bytes.NewReader([]byte(`{}`))), authz.Identity{ID: uuid.New()})
	rec := httptest.NewRecorder()
	handlers.Create.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Validation failed" || len(env.Errors) != 3 {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestHousingDeleteForbidden(t *testing.T) {
	svc := &stubListing[models.Housing, housing.Input]{
		err: pkgerrors.New(pkgerrors.CodeForbidden, "Not authorized to delete this housing"),
	}
	handlers := Housing(svc, &stubOwners{}, testBounds, nil)

	id := uuid.New().String()
	req := withParams(httptest.NewRequest(http.MethodDelete, "/api/housing/"+id, nil), map[string]string{"id": id})
	req = withCaller(req, authz.Identity{ID: uuid.New()})
	rec := httptest.NewRecorder()
	handlers.Delete.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Not authorized to delete this housing" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestHousingListOwnerLookupFailure(t *testing.T) {
	svc := &stubListing[models.Housing, housing.Input]{page: &listing.Page[models.Housing]{Items: []models.Housing{{ID: uuid.New()}}}}
	handlers := Housing(svc, &stubOwners{err: context.DeadlineExceeded}, testBounds, nil)

	rec := httptest.NewRecorder()
	handlers.List.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/housing", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Server error" {
		t.Fatalf("expected generic message, got %q", env.Message)
	}
}

func TestMaidsByServicePinsService(t *testing.T) {
	svc := &stubListing[models.Maid, maids.Input]{page: &listing.Page[models.Maid]{}}
	handler := MaidsByService(svc, testBounds, nil)

	req := withParams(httptest.NewRequest(http.MethodGet, "/api/maids/service/Cooking", nil), map[string]string{"service": "Cooking"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	found := false
	for _, c := range svc.lastQuery.Filter.Clauses() {
		if c.Kind == listing.ClauseAnyOf && len(c.Values) == 1 && c.Values[0] == "cooking" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected services clause for cooking, got %+v", svc.lastQuery.Filter.Clauses())
	}
	if env := decodeEnvelope(t, rec); string(env.Data) != "[]" {
		t.Fatalf("expected empty list, got %s", env.Data)
	}
}

func TestMaidUpdateMessage(t *testing.T) {
	svc := &stubListing[models.Maid, maids.Input]{row: &models.Maid{ID: uuid.New(), Name: "Asha"}}
	handlers := Maids(svc, testBounds, nil)

	id := svc.row.ID.String()
	req := withParams(httptest.NewRequest(http.MethodPut, "/api/maids/"+id, bytes.NewReader([]byte(`{"rate":20}`))), map[string]string{"id": id})
	req = withCaller(req, authz.Identity{ID: uuid.New(), Role: enums.RoleAdmin})
	rec := httptest.NewRecorder()
	handlers.Update.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Maid profile updated successfully" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	if svc.lastInput.Rate == nil || *svc.lastInput.Rate != 20 {
		t.Fatalf("expected rate decoded")
	}
}
