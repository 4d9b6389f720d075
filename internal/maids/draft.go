package maids

import (
	"strings"

	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db/models"
	dbtypes "github.com/angelmondragon/bachelorhub-backend/pkg/db/types"
	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
	"github.com/google/uuid"
)

const defaultWorkingHours = "Flexible"

// Draft is the validated shape of a maid profile.
type Draft struct {
	Name         string
	Age          *int
	Experience   *int
	Description  string
	Contact      string
	Email        string
	Availability string
	WorkingHours string
	Services     []string
	Rate         *float64
	RateType     string
	Location     string
	Languages    []string
	Rating       float64
	ReviewCount  int
	IsAvailable  bool
	IsVerified   bool
	ProfileImage string
	Documents    models.MaidDocuments
	References   []models.MaidReference
	Coordinates  types.Coordinates
}

// DocumentsInput patches the verification document links one at a time.
type DocumentsInput struct {
	IDProof            *string `json:"idProof"`
	PoliceVerification *string `json:"policeVerification"`
}

// Input is a create or update request body; nil fields are left untouched.
// IsVerified is honoured only for admins.
type Input struct {
	Name         *string                 `json:"name"`
	Age          *int                    `json:"age"`
	Experience   *int                    `json:"experience"`
	Description  *string                 `json:"description"`
	Contact      *string                 `json:"contact"`
	Email        *string                 `json:"email"`
	Availability *string                 `json:"availability"`
	WorkingHours *string                 `json:"workingHours"`
	Services     *[]string               `json:"services"`
	Rate         *float64                `json:"rate"`
	RateType     *string                 `json:"rateType"`
	Location     *string                 `json:"location"`
	Languages    *[]string               `json:"languages"`
	Rating       *float64                `json:"rating"`
	ReviewCount  *int                    `json:"reviewCount"`
	IsAvailable  *bool                   `json:"isAvailable"`
	IsVerified   *bool                   `json:"isVerified"`
	ProfileImage *string                 `json:"profileImage"`
	Documents    *DocumentsInput         `json:"documents"`
	References   *[]models.MaidReference `json:"references"`
	Coordinates  *types.Coordinates      `json:"coordinates"`
}

func defaults() Draft {
	return Draft{
		Availability: string(enums.AvailabilityFlexible),
		WorkingHours: defaultWorkingHours,
		RateType:     string(enums.RateTypeHourly),
		IsAvailable:  true,
	}
}

func apply(d *Draft, in Input, actor authz.Identity) {
	listing.Set(&d.Name, in.Name)
	listing.SetPtr(&d.Age, in.Age)
	listing.SetPtr(&d.Experience, in.Experience)
	listing.Set(&d.Description, in.Description)
	listing.Set(&d.Contact, in.Contact)
	listing.Set(&d.Email, in.Email)
	listing.Set(&d.Availability, in.Availability)
	listing.Set(&d.WorkingHours, in.WorkingHours)
	listing.Replace(&d.Services, in.Services)
	listing.SetPtr(&d.Rate, in.Rate)
	listing.Set(&d.RateType, in.RateType)
	listing.Set(&d.Location, in.Location)
	listing.Replace(&d.Languages, in.Languages)
	listing.Set(&d.Rating, in.Rating)
	listing.Set(&d.ReviewCount, in.ReviewCount)
	listing.Set(&d.IsAvailable, in.IsAvailable)
	if actor.IsAdmin() {
		listing.Set(&d.IsVerified, in.IsVerified)
	}
	listing.Set(&d.ProfileImage, in.ProfileImage)
	if in.Documents != nil {
		listing.Set(&d.Documents.IDProof, in.Documents.IDProof)
		listing.Set(&d.Documents.PoliceVerification, in.Documents.PoliceVerification)
	}
	if in.References != nil {
		d.References = trimReferences(*in.References)
	}
	d.Coordinates = d.Coordinates.Merge(in.Coordinates)
}

func trimReferences(refs []models.MaidReference) []models.MaidReference {
	out := make([]models.MaidReference, 0, len(refs))
	for _, ref := range refs {
		out = append(out, models.MaidReference{
			Name:         strings.TrimSpace(ref.Name),
			Phone:        strings.TrimSpace(ref.Phone),
			Relationship: strings.TrimSpace(ref.Relationship),
		})
	}
	return out
}

func toDraft(m *models.Maid) Draft {
	return Draft{
		Name:         m.Name,
		Age:          m.Age,
		Experience:   m.Experience,
		Description:  m.Description,
		Contact:      m.Contact,
		Email:        m.Email,
		Availability: m.Availability,
		WorkingHours: m.WorkingHours,
		Services:     m.Services.Strings(),
		Rate:         m.Rate,
		RateType:     m.RateType,
		Location:     m.Location,
		Languages:    m.Languages.Strings(),
		Rating:       m.Rating,
		ReviewCount:  m.ReviewCount,
		IsAvailable:  m.IsAvailable,
		IsVerified:   m.IsVerified,
		ProfileImage: m.ProfileImage,
		Documents:    m.Documents,
		References:   append([]models.MaidReference(nil), m.References...),
		Coordinates:  m.Coordinates,
	}
}

func fill(d *Draft, m *models.Maid) {
	m.Name = d.Name
	m.Age = d.Age
	m.Experience = d.Experience
	m.Description = d.Description
	m.Contact = d.Contact
	m.Email = d.Email
	m.Availability = d.Availability
	m.WorkingHours = d.WorkingHours
	m.Services = dbtypes.NewStringList(d.Services)
	m.Rate = d.Rate
	m.RateType = d.RateType
	m.Location = d.Location
	m.Languages = dbtypes.NewStringList(d.Languages)
	m.Rating = d.Rating
	m.ReviewCount = d.ReviewCount
	m.IsAvailable = d.IsAvailable
	m.IsVerified = d.IsVerified
	m.ProfileImage = d.ProfileImage
	m.Documents = d.Documents
	m.References = models.MaidReferences(append([]models.MaidReference{}, d.References...))
	m.Coordinates = d.Coordinates
}

func owner(m *models.Maid) *uuid.UUID { return m.OwnerID }

func setOwner(m *models.Maid, id uuid.UUID) { m.OwnerID = &id }
