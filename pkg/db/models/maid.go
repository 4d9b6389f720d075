package models

import (
	"database/sql/driver"
	"time"

	dbtypes "github.com/angelmondragon/bachelorhub-backend/pkg/db/types"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Maid is a domestic service provider profile.
type Maid struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OwnerID      *uuid.UUID         `gorm:"type:uuid;column:owner_id;index"`
	Name         string             `gorm:"column:name;not null"`
	Age          *int               `gorm:"column:age"`
	Experience   *int               `gorm:"column:experience;not null"`
	Description  string             `gorm:"column:description"`
	Contact      string             `gorm:"column:contact;not null"`
	Email        string             `gorm:"column:email"`
	Availability string             `gorm:"column:availability;not null;index"`
	WorkingHours string             `gorm:"column:working_hours"`
	Services     dbtypes.StringList `gorm:"column:services;type:text;not null"`
	Rate         *float64           `gorm:"column:rate;not null;index"`
	RateType     string             `gorm:"column:rate_type;not null"`
	Location     string             `gorm:"column:location;not null"`
	Languages    dbtypes.StringList `gorm:"column:languages;type:text;not null"`
	Rating       float64            `gorm:"column:rating;not null;index"`
	ReviewCount  int                `gorm:"column:review_count;not null"`
	IsAvailable  bool               `gorm:"column:is_available;not null;index"`
	IsVerified   bool               `gorm:"column:is_verified;not null"`
	ProfileImage string             `gorm:"column:profile_image"`
	Documents    MaidDocuments      `gorm:"embedded;embeddedPrefix:documents_"`
	References   MaidReferences     `gorm:"column:references_list;type:text;not null"`
	Coordinates  types.Coordinates  `gorm:"embedded;embeddedPrefix:coordinates_"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Maid) TableName() string { return "maids" }

func (m *Maid) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MaidDocuments holds links to verification documents.
type MaidDocuments struct {
	IDProof            string `gorm:"column:id_proof"`
	PoliceVerification string `gorm:"column:police_verification"`
}

// MaidReference is a previous employer vouching for the provider.
type MaidReference struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// MaidReferences is stored as a JSON array.
type MaidReferences []MaidReference

func (r *MaidReferences) Scan(src any) error {
	var out []MaidReference
	if err := dbtypes.ScanJSON(src, &out); err != nil {
		return err
	}
	if out == nil {
		out = []MaidReference{}
	}
	*r = out
	return nil
}

func (r MaidReferences) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	return dbtypes.JSONValue([]MaidReference(r))
}
