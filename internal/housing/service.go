// Package housing manages rental listings.
package housing

import (
	"context"

	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource is the display name used in messages.
// Resource names housing listings in messages.
const Resource = "Housing"

// Spec declares the searchable and filterable housing columns.
var Spec = listing.Spec{
	Resource:         Resource,
	SearchColumns:    []string{"title", "description", "location"},
	Ranges:           []listing.RangeParam{{Min: "minRent", Max: "maxRent", Column: "rent"}},
	Categories:       []listing.FieldParam{{Param: "type", Column: "type"}},
	LocationColumn:   "location",
	VisibilityColumn: "is_available",
	Sorts: map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"rent":      "rent",
		"title":     "title",
		"bedrooms":  "bedrooms",
		"area":      "area",
	},
	DefaultSort: "-createdAt",
}

// Service exposes the housing listing operations.
type Service interface {
	List(ctx context.Context, q listing.Query) (*listing.Page[models.Housing], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Housing, error)
	Create(ctx context.Context, actor authz.Identity, in Input) (*models.Housing, error)
	Update(ctx context.Context, actor authz.Identity, id uuid.UUID, in Input) (*models.Housing, error)
	Delete(ctx context.Context, actor authz.Identity, id uuid.UUID) error
}

// Binding adapts housing to the listing engine.
var Binding = listing.Binding[models.Housing, Draft, Input]{
	Resource: Resource,
	Schema:   Schema,
	Defaults: defaults,
	Apply:    apply,
	ToDraft:  toDraft,
	Fill:     fill,
	Owner:    owner,
	SetOwner: setOwner,
}

// NewRepository binds the housing table.
func NewRepository(db *gorm.DB) *listing.Repository[models.Housing] {
	return listing.NewRepository[models.Housing](db)
}

// NewService constructs the housing service.
func NewService(store listing.Store[models.Housing]) (Service, error) {
	svc, err := listing.NewService(store, Binding)
	if err != nil {
		return nil, err
	}
	return svc, nil
}
