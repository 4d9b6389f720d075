package housing

import (
	"strings"

	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	"github.com/angelmondragon/bachelorhub-backend/pkg/schema"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
)

// Schema holds the field rules of a housing listing.
var Schema = schema.Schema[Draft]{
	Resource: Resource,
	Fields: append([]schema.Field[Draft]{
		{Name: "title", Ref: func(d *Draft) any { return &d.Title }, Trim: true, Required: "Housing title is required",
			Rules: []schema.Rule{
				{Tag: "min=5", Message: "Title must be at least 5 characters long"},
				{Tag: "max=100", Message: "Title cannot exceed 100 characters"},
			}},
		{Name: "description", Ref: func(d *Draft) any { return &d.Description }, Trim: true, Required: "Description is required",
			Rules: []schema.Rule{
				{Tag: "min=10", Message: "Description must be at least 10 characters long"},
				{Tag: "max=1000", Message: "Description cannot exceed 1000 characters"},
			}},
		{Name: "rent", Ref: func(d *Draft) any { return &d.Rent }, Required: "Rent amount is required",
			Rules: []schema.Rule{{Tag: "gte=0", Message: "Rent cannot be negative"}}},
		{Name: "location", Ref: func(d *Draft) any { return &d.Location }, Trim: true, Required: "Location is required",
			Rules: []schema.Rule{{Tag: "max=200", Message: "Location cannot exceed 200 characters"}}},
		{Name: "contact", Ref: func(d *Draft) any { return &d.Contact }, Trim: true, Required: "Contact information is required",
			Rules: []schema.Rule{{Tag: "phone", Message: "Please enter a valid phone number"}}},
		{Name: "images", Ref: func(d *Draft) any { return &d.Images }, Trim: true,
			Rules: []schema.Rule{{Tag: "imageurl", Message: "Please enter a valid image URL"}}},
		{Name: "type", Ref: func(d *Draft) any { return &d.Type }, Trim: true, Lower: true, Required: "Housing type is required",
			Rules: []schema.Rule{{Tag: enums.OneOf(enums.HousingTypes()), Message: "Housing type must be one of: " + strings.Join(enums.HousingTypes(), ", ")}}},
		{Name: "bedrooms", Ref: func(d *Draft) any { return &d.Bedrooms },
			Rules: []schema.Rule{
				{Tag: "gte=0", Message: "Bedrooms cannot be negative"},
				{Tag: "lte=10", Message: "Maximum 10 bedrooms allowed"},
			}},
		{Name: "bathrooms", Ref: func(d *Draft) any { return &d.Bathrooms },
			Rules: []schema.Rule{
				{Tag: "gte=0", Message: "Bathrooms cannot be negative"},
				{Tag: "lte=10", Message: "Maximum 10 bathrooms allowed"},
			}},
		{Name: "area", Ref: func(d *Draft) any { return &d.Area },
			Rules: []schema.Rule{{Tag: "gte=0", Message: "Area cannot be negative"}}},
		{Name: "amenities", Ref: func(d *Draft) any { return &d.Amenities }, Trim: true},
	}, schema.CoordinateFields(func(d *Draft) *types.Coordinates { return &d.Coordinates })...),
}
