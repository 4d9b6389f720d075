package shops

import (
	"strings"

	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	"github.com/angelmondragon/bachelorhub-backend/pkg/schema"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
)

// Schema holds the field rules of a shop.
var Schema = schema.Schema[Draft]{
	Resource: Resource,
	Fields: append([]schema.Field[Draft]{
		{Name: "shopName", Ref: func(d *Draft) any { return &d.ShopName }, Trim: true, Required: "Shop name is required",
			Rules: []schema.Rule{
				{Tag: "min=2", Message: "Shop name must be at least 2 characters long"},
				{Tag: "max=100", Message: "Shop name cannot exceed 100 characters"},
			}},
		{Name: "type", Ref: func(d *Draft) any { return &d.Type }, Trim: true, Lower: true, Required: "Shop type is required",
			Rules: []schema.Rule{{Tag: enums.OneOf(enums.ShopTypes()), Message: "Shop type must be one of: " + strings.Join(enums.ShopTypes(), ", ")}}},
		{Name: "description", Ref: func(d *Draft) any { return &d.Description }, Trim: true,
			Rules: []schema.Rule{{Tag: "max=500", Message: "Description cannot exceed 500 characters"}}},
		{Name: "location", Ref: func(d *Draft) any { return &d.Location }, Trim: true, Required: "Location is required",
			Rules: []schema.Rule{{Tag: "max=200", Message: "Location cannot exceed 200 characters"}}},
		{Name: "contact", Ref: func(d *Draft) any { return &d.Contact }, Trim: true, Required: "Contact information is required",
			Rules: []schema.Rule{{Tag: "phone", Message: "Please enter a valid phone number"}}},
		{Name: "email", Ref: func(d *Draft) any { return &d.Email }, Trim: true, Lower: true,
			Rules: []schema.Rule{{Tag: "mailaddr", Message: "Please enter a valid email"}}},
		{Name: "website", Ref: func(d *Draft) any { return &d.Website }, Trim: true,
			Rules: []schema.Rule{{Tag: "weburl", Message: "Please enter a valid website URL"}}},
		{Name: "hours", Ref: func(d *Draft) any { return &d.Hours }, Trim: true},
		{Name: "services", Ref: func(d *Draft) any { return &d.Services }, Trim: true},
		{Name: "rating", Ref: func(d *Draft) any { return &d.Rating },
			Rules: []schema.Rule{
				{Tag: "gte=0", Message: "Rating cannot be negative"},
				{Tag: "lte=5", Message: "Rating cannot exceed 5"},
			}},
		{Name: "reviewCount", Ref: func(d *Draft) any { return &d.ReviewCount },
			Rules: []schema.Rule{{Tag: "gte=0", Message: "Review count cannot be negative"}}},
		{Name: "image", Ref: func(d *Draft) any { return &d.Image }, Trim: true,
			Rules: []schema.Rule{{Tag: "imageurl", Message: "Please enter a valid image URL"}}},
	}, schema.CoordinateFields(func(d *Draft) *types.Coordinates { return &d.Coordinates })...),
}
