// Package shops manages local shop listings.
package shops

import (
	"context"

	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource names shops in messages.
const Resource = "Shop"

// Spec declares the searchable and filterable shop columns.
var Spec = listing.Spec{
	Resource:         Resource,
	SearchColumns:    []string{"shop_name", "description", "type"},
	Ranges:           []listing.RangeParam{{Min: "minRating", Max: "maxRating", Column: "rating"}},
	Categories:       []listing.FieldParam{{Param: "type", Column: "type"}},
	LocationColumn:   "location",
	VisibilityColumn: "is_active",
	Sorts: map[string]string{
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
		"rating":      "rating",
		"reviewCount": "review_count",
		"shopName":    "shop_name",
	},
	DefaultSort: "-rating",
}

type Service interface {
	List(ctx context.Context, q listing.Query) (*listing.Page[models.Shop], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	Create(ctx context.Context, actor authz.Identity, in Input) (*models.Shop, error)
	Update(ctx context.Context, actor authz.Identity, id uuid.UUID, in Input) (*models.Shop, error)
	Delete(ctx context.Context, actor authz.Identity, id uuid.UUID) error
}

var Binding = listing.Binding[models.Shop, Draft, Input]{
	Resource: Resource,
	Schema:   Schema,
	Defaults: defaults,
	Apply:    apply,
	ToDraft:  toDraft,
	Fill:     fill,
	Owner:    owner,
	SetOwner: setOwner,
}

func NewRepository(db *gorm.DB) *listing.Repository[models.Shop] {
	return listing.NewRepository[models.Shop](db)
}

func NewService(store listing.Store[models.Shop]) (Service, error) {
	svc, err := listing.NewService(store, Binding)
	if err != nil {
		return nil, err
	}
	return svc, nil
}
