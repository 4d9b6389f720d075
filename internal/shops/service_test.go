package shops

import (
	"context"
	"net/url"
	"testing"

	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/dbtest"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newShopService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(dbtest.SQLite(t, &models.Shop{})))
	require.NoError(t, err)
	return svc
}

func shopInput(name, kind string, rating float64) Input {
	return Input{
		ShopName: ptr(name),
		Type:     ptr(kind),
		Location: ptr("Campus Plaza, Boston"),
		Contact:  ptr("+1-555-0100"),
		Rating:   ptr(rating),
	}
}

func TestCreateAppliesDefaultsAndNormalizes(t *testing.T) {
	svc := newShopService(t)
	in := shopInput("  Corner Grocery ", "Grocery", 4.2)
	in.Email = ptr("  Hello@CornerGrocery.COM ")

	created, err := svc.Create(context.Background(), authz.Identity{ID: uuid.New()}, in)
	require.NoError(t, err)
	assert.Equal(t, "Corner Grocery", created.ShopName)
	assert.Equal(t, "grocery", created.Type)
	assert.Equal(t, "hello@cornergrocery.com", created.Email)
	assert.Equal(t, "9:00 AM - 9:00 PM", created.Hours)
	assert.True(t, created.IsActive)
}

func TestCreateRejectsBadFields(t *testing.T) {
	svc := newShopService(t)
	in := shopInput("X", "bookstore", 7)
	in.Website = ptr("ftp://shop.example.com")
	in.Image = ptr("https://cdn.example.com/logo.svg")

	_, err := svc.Create(context.Background(), authz.Identity{ID: uuid.New()}, in)
	require.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))
	assert.Equal(t, []string{
		"Shop name must be at least 2 characters long",
		"Shop type must be one of: grocery, restaurant, pharmacy, clothing, electronics, bakery, cafe, other",
		"Please enter a valid website URL",
		"Rating cannot exceed 5",
		"Please enter a valid image URL",
	}, pkgerrors.Messages(err))
}

func TestListByTypeRouteAndRating(t *testing.T) {
	svc := newShopService(t)
	ctx := context.Background()
	actor := authz.Identity{ID: uuid.New()}

	for _, in := range []Input{
		shopInput("Corner Grocery", "grocery", 4.5),
		shopInput("Fresh Mart", "grocery", 3.1),
		shopInput("Bean There Cafe", "cafe", 4.8),
	} {
		_, err := svc.Create(ctx, actor, in)
		require.NoError(t, err)
	}
	closed := shopInput("Old Grocer", "grocery", 5)
	closed.IsActive = ptr(false)
	_, err := svc.Create(ctx, actor, closed)
	require.NoError(t, err)

	q := listing.ParseQuery(url.Values{"type": {"cafe"}}, Spec, listing.Bounds{}).WithCategory(Spec, "type", "GROCERY")
	page, err := svc.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Corner Grocery", page.Items[0].ShopName, "default sort is rating descending")
	assert.Equal(t, "Fresh Mart", page.Items[1].ShopName)

	q = listing.ParseQuery(url.Values{"minRating": {"4"}, "search": {"CAFE"}}, Spec, listing.Bounds{})
	page, err = svc.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Bean There Cafe", page.Items[0].ShopName)
}

func TestNullOwnerIsAdminOnly(t *testing.T) {
	conn := dbtest.SQLite(t, &models.Shop{})
	repo := NewRepository(conn)
	seeded := &models.Shop{ShopName: "Seeded Pharmacy", Type: "pharmacy", Location: "Boston", Contact: "555-0101", IsActive: true}
	require.NoError(t, repo.Create(context.Background(), seeded))

	svc, err := NewService(repo)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), authz.Identity{ID: uuid.New(), Role: enums.RoleUser}, seeded.ID)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeForbidden))

	err = svc.Delete(context.Background(), authz.Identity{ID: uuid.New(), Role: enums.RoleAdmin}, seeded.ID)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), seeded.ID)
	assert.Equal(t, "Shop not found", pkgerrors.As(err).Message())
}
