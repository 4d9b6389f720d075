package enums

import (
	"fmt"
	"strings"
)

// ShopType classifies a local shop.
type ShopType string

const (
	ShopTypeGrocery     ShopType = "grocery"
	ShopTypeRestaurant  ShopType = "restaurant"
	ShopTypePharmacy    ShopType = "pharmacy"
	ShopTypeClothing    ShopType = "clothing"
	ShopTypeElectronics ShopType = "electronics"
	ShopTypeBakery      ShopType = "bakery"
	ShopTypeCafe        ShopType = "cafe"
	ShopTypeOther       ShopType = "other"
)

var validShopTypes = []ShopType{
	ShopTypeGrocery,
	ShopTypeRestaurant,
	ShopTypePharmacy,
	ShopTypeClothing,
	ShopTypeElectronics,
	ShopTypeBakery,
	ShopTypeCafe,
	ShopTypeOther,
}

func (s ShopType) String() string {
	return string(s)
}

func (s ShopType) IsValid() bool {
	for _, candidate := range validShopTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShopType is case-insensitive.
func ParseShopType(value string) (ShopType, error) {
	normalized := ShopType(strings.ToLower(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid shop type %q", value)
}

func ShopTypes() []string {
	return stringsOf(validShopTypes)
}
