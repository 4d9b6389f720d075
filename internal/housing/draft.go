package housing

import (
	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	dbtypes "github.com/angelmondragon/bachelorhub-backend/pkg/db/types"
	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
	"github.com/google/uuid"
)

// Draft is the validated shape of a housing listing.
type Draft struct {
	Title       string
	Description string
	Rent        *float64
	Location    string
	Contact     string
	Images      []string
	Type        string
	Bedrooms    *int
	Bathrooms   *int
	Area        *float64
	Amenities   []string
	IsAvailable bool
	Coordinates types.Coordinates
}

// Input is a create or update request body. Absent and null fields are left
// untouched; coordinates merge per component and lists replace wholesale.
type Input struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Rent        *float64           `json:"rent"`
	Location    *string            `json:"location"`
	Contact     *string            `json:"contact"`
	Images      *[]string          `json:"images"`
	Type        *string            `json:"type"`
	Bedrooms    *int               `json:"bedrooms"`
	Bathrooms   *int               `json:"bathrooms"`
	Area        *float64           `json:"area"`
	Amenities   *[]string          `json:"amenities"`
	IsAvailable *bool              `json:"isAvailable"`
	Coordinates *types.Coordinates `json:"coordinates"`
}

func defaults() Draft {
	return Draft{Type: string(enums.HousingTypeApartment), IsAvailable: true}
}

func apply(d *Draft, in Input, _ authz.Identity) {
	listing.Set(&d.Title, in.Title)
	listing.Set(&d.Description, in.Description)
	listing.SetPtr(&d.Rent, in.Rent)
	listing.Set(&d.Location, in.Location)
	listing.Set(&d.Contact, in.Contact)
	listing.Replace(&d.Images, in.Images)
	listing.Set(&d.Type, in.Type)
	listing.SetPtr(&d.Bedrooms, in.Bedrooms)
	listing.SetPtr(&d.Bathrooms, in.Bathrooms)
	listing.SetPtr(&d.Area, in.Area)
	listing.Replace(&d.Amenities, in.Amenities)
	listing.Set(&d.IsAvailable, in.IsAvailable)
	d.Coordinates = d.Coordinates.Merge(in.Coordinates)
}

func toDraft(m *models.Housing) Draft {
	rent := m.Rent
	return Draft{
		Title:       m.Title,
		Description: m.Description,
		Rent:        &rent,
		Location:    m.Location,
		Contact:     m.Contact,
		Images:      m.Images.Strings(),
		Type:        m.Type,
		Bedrooms:    m.Bedrooms,
		Bathrooms:   m.Bathrooms,
		Area:        m.Area,
		Amenities:   m.Amenities.Strings(),
		IsAvailable: m.IsAvailable,
		Coordinates: m.Coordinates,
	}
}

func fill(d *Draft, m *models.Housing) {
	m.Title = d.Title
	m.Description = d.Description
	if d.Rent != nil {
		m.Rent = *d.Rent
	}
	m.Location = d.Location
	m.Contact = d.Contact
	m.Images = dbtypes.NewStringList(d.Images)
	m.Type = d.Type
	m.Bedrooms = d.Bedrooms
	m.Bathrooms = d.Bathrooms
	m.Area = d.Area
	m.Amenities = dbtypes.NewStringList(d.Amenities)
	m.IsAvailable = d.IsAvailable
	m.Coordinates = d.Coordinates
}

func owner(m *models.Housing) *uuid.UUID { return m.OwnerID }

func setOwner(m *models.Housing, id uuid.UUID) { m.OwnerID = &id }
