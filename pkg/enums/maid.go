package enums

import (
	"fmt"
	"strings"
)

// Availability describes when a service provider can work.
type Availability string

const (
	AvailabilityFullTime Availability = "full-time"
	AvailabilityPartTime Availability = "part-time"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityFlexible Availability = "flexible"
)

var validAvailabilities = []Availability{
	AvailabilityFullTime,
	AvailabilityPartTime,
	AvailabilityWeekends,
	AvailabilityFlexible,
}

func (a Availability) IsValid() bool {
	for _, candidate := range validAvailabilities {
		if candidate == a {
			return true
		}
	}
	return false
}

func Availabilities() []string {
	return stringsOf(validAvailabilities)
}

// RateType is the billing period of a provider's rate.
type RateType string

const (
	RateTypeHourly  RateType = "hourly"
	RateTypeDaily   RateType = "daily"
	RateTypeWeekly  RateType = "weekly"
	RateTypeMonthly RateType = "monthly"
)

var validRateTypes = []RateType{RateTypeHourly, RateTypeDaily, RateTypeWeekly, RateTypeMonthly}

func (r RateType) IsValid() bool {
	for _, candidate := range validRateTypes {
		if candidate == r {
			return true
		}
	}
	return false
}

func RateTypes() []string {
	return stringsOf(validRateTypes)
}

// MaidService is one household task a provider offers.
type MaidService string

const (
	ServiceHouseCleaning    MaidService = "house-cleaning"
	ServiceKitchenCleaning  MaidService = "kitchen-cleaning"
	ServiceBathroomCleaning MaidService = "bathroom-cleaning"
	ServiceLaundry          MaidService = "laundry"
	ServiceIroning          MaidService = "ironing"
	ServiceCooking          MaidService = "cooking"
	ServiceDishwashing      MaidService = "dishwashing"
	ServiceDusting          MaidService = "dusting"
	ServiceMopping          MaidService = "mopping"
	ServiceVacuuming        MaidService = "vacuuming"
	ServiceWindowCleaning   MaidService = "window-cleaning"
	ServiceDeepCleaning     MaidService = "deep-cleaning"
)

var validMaidServices = []MaidService{
	ServiceHouseCleaning,
	ServiceKitchenCleaning,
	ServiceBathroomCleaning,
	ServiceLaundry,
	ServiceIroning,
	ServiceCooking,
	ServiceDishwashing,
	ServiceDusting,
	ServiceMopping,
	ServiceVacuuming,
	ServiceWindowCleaning,
	ServiceDeepCleaning,
}

func (s MaidService) IsValid() bool {
	for _, candidate := range validMaidServices {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseMaidService is case-insensitive.
func ParseMaidService(value string) (MaidService, error) {
	normalized := MaidService(strings.ToLower(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid service %q", value)
}

func MaidServices() []string {
	return stringsOf(validMaidServices)
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// OneOf renders values as a validator oneof tag.
func OneOf(values []string) string {
	return "oneof=" + strings.Join(values, " ")
}
