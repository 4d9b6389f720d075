package controllers

import (
	"context"

	"github.com/angelmondragon/bachelorhub-backend/internal/housing"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
)

func housingEndpoint(svc housing.Service, owners ownerSummaries, bounds listing.Bounds, logg *logger.Logger) listingEndpoint[models.Housing, housing.Input, housing.HousingDTO] {
	return listingEndpoint[models.Housing, housing.Input, housing.HousingDTO]{
		svc:    svc,
		spec:   housing.Spec,
		label:  housing.Resource,
		bounds: bounds,
		logg:   logg,
		render: func(ctx context.Context, rows []models.Housing) ([]housing.HousingDTO, error) {
			landlords, err := owners.Summaries(ctx, housing.OwnerIDs(rows))
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load landlords")
			}
			out := make([]housing.HousingDTO, 0, len(rows))
			for i := range rows {
				out = append(out, housing.ToDTO(&rows[i], landlords))
			}
			return out, nil
		},
	}
}

// Housing builds the /api/housing endpoints. Responses carry the landlord.
func Housing(svc housing.Service, owners ownerSummaries, bounds listing.Bounds, logg *logger.Logger) ListingHandlers {
	return housingEndpoint(svc, owners, bounds, logg).handlers()
}
