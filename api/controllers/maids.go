package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/internal/maids"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
)

const maidLabel = "Maid profile"

func maidsEndpoint(svc maids.Service, bounds listing.Bounds, logg *logger.Logger) listingEndpoint[models.Maid, maids.Input, maids.MaidDTO] {
	return listingEndpoint[models.Maid, maids.Input, maids.MaidDTO]{
		svc:    svc,
		spec:   maids.Spec,
		label:  maidLabel,
		bounds: bounds,
		logg:   logg,
		render: func(_ context.Context, rows []models.Maid) ([]maids.MaidDTO, error) {
			out := make([]maids.MaidDTO, 0, len(rows))
			for i := range rows {
				out = append(out, maids.ToDTO(&rows[i]))
			}
			return out, nil
		},
	}
}

func Maids(svc maids.Service, bounds listing.Bounds, logg *logger.Logger) ListingHandlers {
	return maidsEndpoint(svc, bounds, logg).handlers()
}

// MaidsByService lists maids offering the {service} path segment.
func MaidsByService(svc maids.Service, bounds listing.Bounds, logg *logger.Logger) http.HandlerFunc {
	return maidsEndpoint(svc, bounds, logg).list(pinCategory(maids.Spec, maids.ServiceParam, "service"))
}
