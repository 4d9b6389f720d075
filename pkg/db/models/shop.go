package models

import (
	"time"

	dbtypes "github.com/angelmondragon/bachelorhub-backend/pkg/db/types"
	"github.com/angelmondragon/bachelorhub-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop is a local business listing.
type Shop struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OwnerID     *uuid.UUID         `gorm:"type:uuid;column:owner_id;index"`
	ShopName    string             `gorm:"column:shop_name;not null"`
	Type        string             `gorm:"column:type;not null;index"`
	Description string             `gorm:"column:description"`
	Location    string             `gorm:"column:location;not null"`
	Contact     string             `gorm:"column:contact;not null"`
	Email       string             `gorm:"column:email"`
	Website     string             `gorm:"column:website"`
	Hours       string             `gorm:"column:hours"`
	Services    dbtypes.StringList `gorm:"column:services;type:text;not null"`
	Rating      float64            `gorm:"column:rating;not null;index"`
	ReviewCount int                `gorm:"column:review_count;not null"`
	IsActive    bool               `gorm:"column:is_active;not null;index"`
	Image       string             `gorm:"column:image"`
	Coordinates types.Coordinates  `gorm:"embedded;embeddedPrefix:coordinates_"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Shop) TableName() string { return "shops" }

func (s *Shop) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
