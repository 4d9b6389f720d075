package schema

import "github.com/angelmondragon/bachelorhub-backend/pkg/types"

// CoordinateFields returns the latitude and longitude rules for a draft that
// embeds a coordinates pair.
func CoordinateFields[T any](ref func(*T) *types.Coordinates) []Field[T] {
	return []Field[T]{
		{Name: "coordinates.latitude", Ref: func(v *T) any { return &ref(v).Latitude },
			Rules: []Rule{
				{Tag: "gte=-90", Message: "Latitude must be between -90 and 90"},
				{Tag: "lte=90", Message: "Latitude must be between -90 and 90"},
			}},
		{Name: "coordinates.longitude", Ref: func(v *T) any { return &ref(v).Longitude },
			Rules: []Rule{
				{Tag: "gte=-180", Message: "Longitude must be between -180 and 180"},
				{Tag: "lte=180", Message: "Longitude must be between -180 and 180"},
			}},
	}
}
