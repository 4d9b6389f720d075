package maids

import (
	"strings"

	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	"github.com/angelmondragon/bachelorhub-backend/pkg/schema"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
)

const documentURLMessage = "Please enter a valid document URL"

// Schema holds the field rules of a maid profile.
var Schema = schema.Schema[Draft]{
	Resource: Resource,
	Fields: append([]schema.Field[Draft]{
		{Name: "name", Ref: func(d *Draft) any { return &d.Name }, Trim: true, Required: "Maid name is required",
			Rules: []schema.Rule{
				{Tag: "min=2", Message: "Name must be at least 2 characters long"},
				{Tag: "max=50", Message: "Name cannot exceed 50 characters"},
			}},
		{Name: "age", Ref: func(d *Draft) any { return &d.Age },
			Rules: []schema.Rule{
				{Tag: "gte=18", Message: "Age must be at least 18"},
				{Tag: "lte=70", Message: "Age cannot exceed 70"},
			}},
		{Name: "experience", Ref: func(d *Draft) any { return &d.Experience }, Required: "Experience is required",
			Rules: []schema.Rule{
				{Tag: "gte=0", Message: "Experience cannot be negative"},
				{Tag: "lte=50", Message: "Experience cannot exceed 50 years"},
			}},
		{Name: "description", Ref: func(d *Draft) any { return &d.Description }, Trim: true,
			Rules: []schema.Rule{{Tag: "max=500", Message: "Description cannot exceed 500 characters"}}},
		{Name: "contact", Ref: func(d *Draft) any { return &d.Contact }, Trim: true, Required: "Contact information is required",
			Rules: []schema.Rule{{Tag: "phone", Message: "Please enter a valid phone number"}}},
		{Name: "email", Ref: func(d *Draft) any { return &d.Email }, Trim: true, Lower: true,
			Rules: []schema.Rule{{Tag: "mailaddr", Message: "Please enter a valid email"}}},
		{Name: "availability", Ref: func(d *Draft) any { return &d.Availability }, Trim: true, Lower: true,
			Required: "Availability is required",
			Rules:    []schema.Rule{{Tag: enums.OneOf(enums.Availabilities()), Message: "Availability must be one of: " + strings.Join(enums.Availabilities(), ", ")}}},
		{Name: "workingHours", Ref: func(d *Draft) any { return &d.WorkingHours }, Trim: true},
		{Name: "services", Ref: func(d *Draft) any { return &d.Services }, Trim: true, Lower: true,
			Rules: []schema.Rule{{Tag: enums.OneOf(enums.MaidServices()), Message: "Services must be one of: " + strings.Join(enums.MaidServices(), ", ")}}},
		{Name: "rate", Ref: func(d *Draft) any { return &d.Rate }, Required: "Rate is required",
			Rules: []schema.Rule{
				{Tag: "gte=1", Message: "Rate must be at least $1"},
				{Tag: "lte=200", Message: "Rate cannot exceed $200 per hour"},
			}},
		{Name: "rateType", Ref: func(d *Draft) any { return &d.RateType }, Trim: true, Lower: true,
			Required: "Rate type is required",
			Rules:    []schema.Rule{{Tag: enums.OneOf(enums.RateTypes()), Message: "Rate type must be one of: " + strings.Join(enums.RateTypes(), ", ")}}},
		{Name: "location", Ref: func(d *Draft) any { return &d.Location }, Trim: true, Required: "Location is required",
			Rules: []schema.Rule{{Tag: "max=200", Message: "Location cannot exceed 200 characters"}}},
		{Name: "languages", Ref: func(d *Draft) any { return &d.Languages }, Trim: true},
		{Name: "rating", Ref: func(d *Draft) any { return &d.Rating },
			Rules: []schema.Rule{
				{Tag: "gte=0", Message: "Rating cannot be negative"},
				{Tag: "lte=5", Message: "Rating cannot exceed 5"},
			}},
		{Name: "reviewCount", Ref: func(d *Draft) any { return &d.ReviewCount },
			Rules: []schema.Rule{{Tag: "gte=0", Message: "Review count cannot be negative"}}},
		{Name: "profileImage", Ref: func(d *Draft) any { return &d.ProfileImage }, Trim: true,
			Rules: []schema.Rule{{Tag: "imageurl", Message: "Please enter a valid image URL"}}},
		{Name: "documents.idProof", Ref: func(d *Draft) any { return &d.Documents.IDProof }, Trim: true,
			Rules: []schema.Rule{{Tag: "docurl", Message: documentURLMessage}}},
		{Name: "documents.policeVerification", Ref: func(d *Draft) any { return &d.Documents.PoliceVerification }, Trim: true,
			Rules: []schema.Rule{{Tag: "docurl", Message: documentURLMessage}}},
	}, schema.CoordinateFields(func(d *Draft) *types.Coordinates { return &d.Coordinates })...),
}
