package models

import (
	"time"

	dbtypes "github.com/angelmondragon/bachelorhub-backend/pkg/db/types"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Housing is a rental listing.
type Housing struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OwnerID     *uuid.UUID         `gorm:"type:uuid;column:owner_id;index"`
	Title       string             `gorm:"column:title;not null"`
	Description string             `gorm:"column:description;not null"`
	Rent        float64            `gorm:"column:rent;not null;index"`
	Location    string             `gorm:"column:location;not null"`
	Contact     string             `gorm:"column:contact;not null"`
	Images      dbtypes.StringList `gorm:"column:images;type:text;not null"`
	Type        string             `gorm:"column:type;not null;index"`
	Bedrooms    *int               `gorm:"column:bedrooms"`
	Bathrooms   *int               `gorm:"column:bathrooms"`
	Area        *float64           `gorm:"column:area"`
	Amenities   dbtypes.StringList `gorm:"column:amenities;type:text;not null"`
	IsAvailable bool               `gorm:"column:is_available;not null;index"`
	Coordinates types.Coordinates  `gorm:"embedded;embeddedPrefix:coordinates_"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Housing) TableName() string { return "housing" }

func (h *Housing) BeforeCreate(*gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
