package enums

import (
	"fmt"
	"strings"
)

// HousingType classifies a housing listing.
type HousingType string

const (
	HousingTypeApartment HousingType = "apartment"
	HousingTypeHouse     HousingType = "house"
	HousingTypeRoom      HousingType = "room"
	HousingTypeStudio    HousingType = "studio"
	HousingTypeShared    HousingType = "shared"
)

var validHousingTypes = []HousingType{
	HousingTypeApartment,
	HousingTypeHouse,
	HousingTypeRoom,
	HousingTypeStudio,
	HousingTypeShared,
}

func (h HousingType) String() string {
	return string(h)
}

func (h HousingType) IsValid() bool {
	for _, candidate := range validHousingTypes {
		if candidate == h {
			return true
		}
	}
	return false
}

// ParseHousingType is case-insensitive.
func ParseHousingType(value string) (HousingType, error) {
	normalized := HousingType(strings.ToLower(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid housing type %q", value)
}

// HousingTypes lists the accepted values in display order.
func HousingTypes() []string {
	return stringsOf(validHousingTypes)
}
