package housing

import (
	"context"
	"net/url"
	"reflect"
	"testing"

	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/dbtest"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHousingService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(dbtest.SQLite(t, &models.Housing{})))
	require.NoError(t, err)
	return svc
}

func strPtr(v string) *string       { return &v }
func floatPtr(v float64) *float64   { return &v }
func strList(v ...string) *[]string { return &v }

func validInput() Input {
	return Input{
		Title:       strPtr("  Cozy Studio Near Campus  "),
		Description: strPtr("Bright studio with a kitchenette and fast wifi."),
		Rent:        floatPtr(1200),
		Location:    strPtr("New York, NY"),
		Contact:     strPtr("+1 (555) 123-4567"),
		Images:      strList("https://images.example.com/studio.jpeg"),
		Type:        strPtr(" STUDIO "),
	}
}

func TestCreateNormalizesAndDefaults(t *testing.T) {
	svc := newHousingService(t)
	actor := authz.Identity{ID: uuid.New(), Role: enums.RoleUser}

	created, err := svc.Create(context.Background(), actor, validInput())
	require.NoError(t, err)
	assert.Equal(t, "Cozy Studio Near Campus", created.Title)
	assert.Equal(t, "studio", created.Type)
	assert.True(t, created.IsAvailable)
	require.NotNil(t, created.OwnerID)
	assert.Equal(t, actor.ID, *created.OwnerID)

	fetched, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, []string{"https://images.example.com/studio.jpeg"}, []string(fetched.Images))

	noType := validInput()
	noType.Type = nil
	created, err = svc.Create(context.Background(), actor, noType)
	require.NoError(t, err)
	assert.Equal(t, "apartment", created.Type)
}

func TestCreateAggregatesViolations(t *testing.T) {
	svc := newHousingService(t)
	in := validInput()
	in.Title = strPtr("abc")
	in.Rent = floatPtr(-50)
	in.Contact = strPtr("call the office")
	in.Coordinates = &types.Coordinates{Latitude: floatPtr(120)}

	_, err := svc.Create(context.Background(), authz.Identity{ID: uuid.New()}, in)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
	assert.Equal(t, []string{
		"Title must be at least 5 characters long",
		"Rent cannot be negative",
		"Please enter a valid phone number",
		"Latitude must be between -90 and 90",
	}, pkgerrors.Messages(err))
}

func TestCreateReportsMissingRequiredFields(t *testing.T) {
	svc := newHousingService(t)
	_, err := svc.Create(context.Background(), authz.Identity{ID: uuid.New()}, Input{})
	assert.Equal(t, []string{
		"Housing title is required",
		"Description is required",
		"Rent amount is required",
		"Location is required",
		"Contact information is required",
	}, pkgerrors.Messages(err))
}

func TestUpdateMergesAndRevalidates(t *testing.T) {
	svc := newHousingService(t)
	ctx := context.Background()
	owner := authz.Identity{ID: uuid.New(), Role: enums.RoleUser}

	in := validInput()
	in.Coordinates = &types.Coordinates{Latitude: floatPtr(40.71), Longitude: floatPtr(-74.0)}
	created, err := svc.Create(ctx, owner, in)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, created.ID, Input{
		Rent:        floatPtr(1100),
		Coordinates: &types.Coordinates{Latitude: floatPtr(40.75)},
		Images:      strList(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1100.0, updated.Rent)
	assert.Equal(t, "Cozy Studio Near Campus", updated.Title)
	assert.Equal(t, 40.75, *updated.Coordinates.Latitude)
	assert.Equal(t, -74.0, *updated.Coordinates.Longitude, "untouched coordinate survives")
	assert.Empty(t, updated.Images, "lists replace wholesale")

	_, err = svc.Update(ctx, owner, created.ID, Input{Title: strPtr("tiny")})
	assert.Equal(t, []string{"Title must be at least 5 characters long"}, pkgerrors.Messages(err))

	reloaded, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cozy Studio Near Campus", reloaded.Title, "rejected update leaves the row intact")

	_, err = svc.Update(ctx, authz.Identity{ID: uuid.New(), Role: enums.RoleUser}, created.ID, Input{Rent: floatPtr(1)})
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())
	assert.Equal(t, "Not authorized to update this housing", pkgerrors.As(err).Message())
}

func TestHiddenListingReachableByID(t *testing.T) {
	svc := newHousingService(t)
	ctx := context.Background()
	owner := authz.Identity{ID: uuid.New()}

	in := validInput()
	hidden := false
	in.IsAvailable = &hidden
	created, err := svc.Create(ctx, owner, in)
	require.NoError(t, err)

	page, err := svc.List(ctx, listing.ParseQuery(url.Values{}, Spec, listing.Bounds{}))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Meta.Total)

	_, err = svc.Get(ctx, created.ID)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, uuid.New())
	assert.Equal(t, "Housing not found", pkgerrors.As(err).Message())
}

func TestBostonRentRangeScenario(t *testing.T) {
	svc := newHousingService(t)
	ctx := context.Background()
	actor := authz.Identity{ID: uuid.New()}

	fixtures := []struct {
		title, kind, location string
		rent                  float64
	}{
		{"Cozy Studio Near Campus", "studio", "New York, NY", 1200},
		{"Shared Apartment Downtown", "shared", "Boston, MA", 800},
		{"Private Room in House", "room", "Chicago, IL", 600},
	}
	for _, fx := range fixtures {
		in := validInput()
		in.Title, in.Type, in.Location, in.Rent = strPtr(fx.title), strPtr(fx.kind), strPtr(fx.location), floatPtr(fx.rent)
		_, err := svc.Create(ctx, actor, in)
		require.NoError(t, err)
	}

	q := listing.ParseQuery(url.Values{"minRent": {"700"}, "maxRent": {"900"}, "location": {"boston"}}, Spec, listing.Bounds{})
	page, err := svc.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Shared Apartment Downtown", page.Items[0].Title)
	assert.Equal(t, int64(1), page.Meta.Total)
	assert.Equal(t, int64(1), page.Meta.Pages)

	q = listing.ParseQuery(url.Values{"sort": {"rent"}, "limit": {"2"}}, Spec, listing.Bounds{})
	page, err = svc.List(ctx, q)
	require.NoError(t, err)
	titles := []string{page.Items[0].Title, page.Items[1].Title}
	assert.True(t, reflect.DeepEqual(titles, []string{"Private Room in House", "Shared Apartment Downtown"}))
	assert.Equal(t, int64(2), page.Meta.Pages)
}
