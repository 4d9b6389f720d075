package maids

import (
	"time"

	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
	"github.com/google/uuid"
)

type DocumentsDTO struct {
	IDProof            string `json:"idProof,omitempty"`
	PoliceVerification string `json:"policeVerification,omitempty"`
}

// MaidDTO is the public shape of a maid profile.
type MaidDTO struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Age          *int                   `json:"age,omitempty"`
	Experience   int                    `json:"experience"`
	Description  string                 `json:"description,omitempty"`
	Contact      string                 `json:"contact"`
	Email        string                 `json:"email,omitempty"`
	Availability string                 `json:"availability"`
	WorkingHours string                 `json:"workingHours"`
	Services     []string               `json:"services"`
	Rate         float64                `json:"rate"`
	RateType     string                 `json:"rateType"`
	Location     string                 `json:"location"`
	Languages    []string               `json:"languages"`
	Rating       float64                `json:"rating"`
	ReviewCount  int                    `json:"reviewCount"`
	IsAvailable  bool                   `json:"isAvailable"`
	IsVerified   bool                   `json:"isVerified"`
	ProfileImage string                 `json:"profileImage,omitempty"`
	Documents    DocumentsDTO           `json:"documents"`
	References   []models.MaidReference `json:"references"`
	Coordinates  *types.Coordinates     `json:"coordinates,omitempty"`
	OwnerRef     *uuid.UUID             `json:"ownerRef"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

func ToDTO(m *models.Maid) MaidDTO {
	dto := MaidDTO{
		ID:           m.ID,
		Name:         m.Name,
		Age:          m.Age,
		Description:  m.Description,
		Contact:      m.Contact,
		Email:        m.Email,
		Availability: m.Availability,
		WorkingHours: m.WorkingHours,
		Services:     m.Services.Strings(),
		RateType:     m.RateType,
		Location:     m.Location,
		Languages:    m.Languages.Strings(),
		Rating:       m.Rating,
		ReviewCount:  m.ReviewCount,
		IsAvailable:  m.IsAvailable,
		IsVerified:   m.IsVerified,
		ProfileImage: m.ProfileImage,
		Documents: DocumentsDTO{
			IDProof:            m.Documents.IDProof,
			PoliceVerification: m.Documents.PoliceVerification,
		},
		References: append([]models.MaidReference{}, m.References...),
		OwnerRef:   m.OwnerID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Experience != nil {
		dto.Experience = *m.Experience
	}
	if m.Rate != nil {
		dto.Rate = *m.Rate
	}
	if !m.Coordinates.IsZero() {
		c := m.Coordinates
		dto.Coordinates = &c
	}
	return dto
}
