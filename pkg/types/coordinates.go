package types

// Coordinates is an optional lat/lng pair attached to a listing.
// Both halves are pointers so a partial update can set one without the other.
type Coordinates struct {
	Latitude  *float64 `json:"latitude,omitempty" gorm:"column:latitude"`
	Longitude *float64 `json:"longitude,omitempty" gorm:"column:longitude"`
}

// Merge overlays the non-nil halves of patch onto c.
func (c Coordinates) Merge(patch *Coordinates) Coordinates {
	if patch == nil {
		return c
	}
	if patch.Latitude != nil {
		c.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		c.Longitude = patch.Longitude
	}
	return c
}

// IsZero reports whether neither half is set.
func (c Coordinates) IsZero() bool {
	return c.Latitude == nil && c.Longitude == nil
}
