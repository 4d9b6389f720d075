package housing

import (
	"time"

	"github.com/angelmondragon/bachelorhub-backend/internal/users"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
	"github.com/google/uuid"
)

// HousingDTO is the public shape of a listing.
type HousingDTO struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Rent        float64             `json:"rent"`
	Location    string              `json:"location"`
	Contact     string              `json:"contact"`
	Images      []string            `json:"images"`
	Type        string              `json:"type"`
	Bedrooms    *int                `json:"bedrooms,omitempty"`
	Bathrooms   *int                `json:"bathrooms,omitempty"`
	Area        *float64            `json:"area,omitempty"`
	Amenities   []string            `json:"amenities"`
	IsAvailable bool                `json:"isAvailable"`
	Coordinates *types.Coordinates  `json:"coordinates,omitempty"`
	OwnerRef    *uuid.UUID          `json:"ownerRef"`
	Landlord    *users.OwnerSummary `json:"landlord,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ToDTO renders m, attaching the landlord when owners holds it.
func ToDTO(m *models.Housing, owners map[uuid.UUID]users.OwnerSummary) HousingDTO {
	dto := HousingDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Rent:        m.Rent,
		Location:    m.Location,
		Contact:     m.Contact,
		Images:      m.Images.Strings(),
		Type:        m.Type,
		Bedrooms:    m.Bedrooms,
		Bathrooms:   m.Bathrooms,
		Area:        m.Area,
		Amenities:   m.Amenities.Strings(),
		IsAvailable: m.IsAvailable,
		OwnerRef:    m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if !m.Coordinates.IsZero() {
		c := m.Coordinates
		dto.Coordinates = &c
	}
	if m.OwnerID != nil {
		if summary, ok := owners[*m.OwnerID]; ok {
			dto.Landlord = &summary
		}
	}
	return dto
}

// OwnerIDs collects the owner references of rows.
func OwnerIDs(rows []models.Housing) []*uuid.UUID {
	ids := make([]*uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].OwnerID)
	}
	return ids
}
