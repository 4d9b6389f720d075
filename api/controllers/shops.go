package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/internal/shops"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
)

func shopsEndpoint(svc shops.Service, owners ownerSummaries, bounds listing.Bounds, logg *logger.Logger) listingEndpoint[models.Shop, shops.Input, shops.ShopDTO] {
	return listingEndpoint[models.Shop, shops.Input, shops.ShopDTO]{
		svc:    svc,
		spec:   shops.Spec,
		label:  shops.Resource,
		bounds: bounds,
		logg:   logg,
		render: func(ctx context.Context, rows []models.Shop) ([]shops.ShopDTO, error) {
			summaries, err := owners.Summaries(ctx, shops.OwnerIDs(rows))
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load shop owners")
			}
			out := make([]shops.ShopDTO, 0, len(rows))
			for i := range rows {
				out = append(out, shops.ToDTO(&rows[i], summaries))
			}
			return out, nil
		},
	}
}

// Shops builds the /api/shops endpoints. Responses carry the owner.
func Shops(svc shops.Service, owners ownerSummaries, bounds listing.Bounds, logg *logger.Logger) ListingHandlers {
	return shopsEndpoint(svc, owners, bounds, logg).handlers()
}

// ShopsByType lists shops of the {type} path segment; other filters still apply.
func ShopsByType(svc shops.Service, owners ownerSummaries, bounds listing.Bounds, logg *logger.Logger) http.HandlerFunc {
	return shopsEndpoint(svc, owners, bounds, logg).list(pinCategory(shops.Spec, "type", "type"))
}
