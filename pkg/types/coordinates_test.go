package types

import "testing"

func ptr(v float64) *float64 { return &v }

func TestCoordinatesMergeKeepsUntouchedHalf(t *testing.T) {
	base := Coordinates{Latitude: ptr(40.7), Longitude: ptr(-74.0)}

	merged := base.Merge(&Coordinates{Latitude: ptr(42.36)})
	if *merged.Latitude != 42.36 {
		t.Fatalf("expected latitude to be replaced, got %v", *merged.Latitude)
	}
	if *merged.Longitude != -74.0 {
		t.Fatalf("expected longitude to survive, got %v", *merged.Longitude)
	}
	if *base.Latitude != 40.7 {
		t.Fatalf("merge must not mutate the receiver")
	}
}

func TestCoordinatesMergeNilPatch(t *testing.T) {
	base := Coordinates{Latitude: ptr(1)}
	if got := base.Merge(nil); got.Latitude != base.Latitude || got.Longitude != nil {
		t.Fatalf("nil patch should be a no-op, got %+v", got)
	}
	if !(Coordinates{}).IsZero() || base.IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}
