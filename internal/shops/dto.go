package shops

import (
	"time"

	"github.com/angelmondragon/bachelorhub-backend/internal/users"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
	"github.com/google/uuid"
)

// ShopDTO is the public shape of a shop.
type ShopDTO struct {
	ID          uuid.UUID           `json:"id"`
	ShopName    string              `json:"shopName"`
	Type        string              `json:"type"`
	Description string              `json:"description,omitempty"`
	Location    string              `json:"location"`
	Contact     string              `json:"contact"`
	Email       string              `json:"email,omitempty"`
	Website     string              `json:"website,omitempty"`
	Hours       string              `json:"hours"`
	Services    []string            `json:"services"`
	Rating      float64             `json:"rating"`
	ReviewCount int                 `json:"reviewCount"`
	IsActive    bool                `json:"isActive"`
	Image       string              `json:"image,omitempty"`
	Coordinates *types.Coordinates  `json:"coordinates,omitempty"`
	OwnerRef    *uuid.UUID          `json:"ownerRef"`
	Owner       *users.OwnerSummary `json:"owner,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func ToDTO(m *models.Shop, owners map[uuid.UUID]users.OwnerSummary) ShopDTO {
	dto := ShopDTO{
		ID:          m.ID,
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
			dto.Owner = &summary
		}
	}
	return dto
}

func OwnerIDs(rows []models.Shop) []*uuid.UUID {
	ids := make([]*uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].OwnerID)
	}
	return ids
}
