// Package maids manages domestic service provider profiles.
package maids

import (
	"context"

	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource names maid profiles in messages.
const Resource = "Maid"

// Spec declares the searchable and filterable maid columns. experience is a
// lower bound only.
var Spec = listing.Spec{
	Resource:      Resource,
	SearchColumns: []string{"name", "description", "services"},
	Ranges: []listing.RangeParam{
		{Min: "minRate", Max: "maxRate", Column: "rate"},
		{Min: "experience", Column: "experience"},
	},
	Categories: []listing.FieldParam{
		{Param: "availability", Column: "availability"},
		{Param: "rateType", Column: "rate_type"},
	},
	MultiValues:      []listing.FieldParam{{Param: "services", Column: "services"}},
	LocationColumn:   "location",
	VisibilityColumn: "is_available",
	Sorts: map[string]string{
		"createdAt":  "created_at",
		"updatedAt":  "updated_at",
		"rating":     "rating",
		"rate":       "rate",
		"experience": "experience",
		"name":       "name",
	},
	DefaultSort: "-rating",
}

// ServiceParam is the multi-value parameter pinned by /maids/service/{service}.
const ServiceParam = "services"

type Service interface {
	List(ctx context.Context, q listing.Query) (*listing.Page[models.Maid], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Maid, error)
	Create(ctx context.Context, actor authz.Identity, in Input) (*models.Maid, error)
	Update(ctx context.Context, actor authz.Identity, id uuid.UUID, in Input) (*models.Maid, error)
	Delete(ctx context.Context, actor authz.Identity, id uuid.UUID) error
}

var Binding = listing.Binding[models.Maid, Draft, Input]{
	Resource: Resource,
	Schema:   Schema,
	Defaults: defaults,
	Apply:    apply,
	ToDraft:  toDraft,
	Fill:     fill,
	Owner:    owner,
	SetOwner: setOwner,
}

func NewRepository(db *gorm.DB) *listing.Repository[models.Maid] {
	return listing.NewRepository[models.Maid](db)
}

func NewService(store listing.Store[models.Maid]) (Service, error) {
	svc, err := listing.NewService(store, Binding)
	if err != nil {
		return nil, err
	}
	return svc, nil
}
