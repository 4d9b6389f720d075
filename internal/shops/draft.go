package shops

import (
	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	dbtypes "github.com/angelmondragon/bachelorhub-backend/pkg/db/types"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
	"github.com/google/uuid"
)

const defaultHours = "9:00 AM - 9:00 PM"

// Draft is the validated shape of a shop.
type Draft struct {
	ShopName    string
	Type        string
	Description string
	Location    string
	Contact     string
	Email       string
	Website     string
	Hours       string
	Services    []string
	Rating      float64
	ReviewCount int
	IsActive    bool
	Image       string
	Coordinates types.Coordinates
}

// Input is a create or update request body; nil fields are left untouched.
type Input struct {
	ShopName    *string            `json:"shopName"`
	Type        *string            `json:"type"`
	Description *string            `json:"description"`
	Location    *string            `json:"location"`
	Contact     *string            `json:"contact"`
	Email       *string            `json:"email"`
	Website     *string            `json:"website"`
	Hours       *string            `json:"hours"`
	Services    *[]string          `json:"services"`
	Rating      *float64           `json:"rating"`
	ReviewCount *int               `json:"reviewCount"`
	IsActive    *bool              `json:"isActive"`
	Image       *string            `json:"image"`
	Coordinates *types.Coordinates `json:"coordinates"`
}

func defaults() Draft {
	return Draft{Hours: defaultHours, IsActive: true}
}

func apply(d *Draft, in Input, _ authz.Identity) {
	listing.Set(&d.ShopName, in.ShopName)
	listing.Set(&d.Type, in.Type)
	listing.Set(&d.Description, in.Description)
	listing.Set(&d.Location, in.Location)
	listing.Set(&d.Contact, in.Contact)
	listing.Set(&d.Email, in.Email)
	listing.Set(&d.Website, in.Website)
	listing.Set(&d.Hours, in.Hours)
	listing.Replace(&d.Services, in.Services)
	listing.Set(&d.Rating, in.Rating)
	listing.Set(&d.ReviewCount, in.ReviewCount)
	listing.Set(&d.IsActive, in.IsActive)
	listing.Set(&d.Image, in.Image)
	d.Coordinates = d.Coordinates.Merge(in.Coordinates)
}

func toDraft(m *models.Shop) Draft {
	return Draft{
		ShopName:    m.ShopName,
		Type:        m.Type,
		Description: m.Description,
		Location:    m.Location,
		Contact:     m.Contact,
		Email:       m.Email,
		Website:     m.Website,
		Hours:       m.Hours,
		Services:    m.Services.Strings(),
		Rating:      m.Rating,
		ReviewCount: m.ReviewCount,
		IsActive:    m.IsActive,
		Image:       m.Image,
		Coordinates: m.Coordinates,
	}
}

func fill(d *Draft, m *models.Shop) {
	m.ShopName = d.ShopName
	m.Type = d.Type
	m.Description = d.Description
	m.Location = d.Location
	m.Contact = d.Contact
	m.Email = d.Email
	m.Website = d.Website
	m.Hours = d.Hours
	m.Services = dbtypes.NewStringList(d.Services)
	m.Rating = d.Rating
	m.ReviewCount = d.ReviewCount
	m.IsActive = d.IsActive
	m.Image = d.Image
	m.Coordinates = d.Coordinates
}

func owner(m *models.Shop) *uuid.UUID { return m.OwnerID }

func setOwner(m *models.Shop, id uuid.UUID) { m.OwnerID = &id }
