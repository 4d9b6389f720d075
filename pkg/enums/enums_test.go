package enums

import "testing"

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("admin"); err != nil || r != RoleAdmin {
		t.Fatalf("expected admin, got %v %v", r, err)
	}
	if _, err := ParseRole("root"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if !RoleUser.IsValid() || Role("ADMIN").IsValid() {
		t.Fatal("role validity mismatch")
	}
}

func TestListingEnumsAreCaseInsensitive(t *testing.T) {
	if v, err := ParseHousingType(" Studio "); err != nil || v != HousingTypeStudio {
		t.Fatalf("expected studio, got %v %v", v, err)
	}
	if v, err := ParseShopType("CAFE"); err != nil || v != ShopTypeCafe {
		t.Fatalf("expected cafe, got %v %v", v, err)
	}
	if v, err := ParseMaidService("Deep-Cleaning"); err != nil || v != ServiceDeepCleaning {
		t.Fatalf("expected deep-cleaning, got %v %v", v, err)
	}
	if _, err := ParseShopType("bank"); err == nil {
		t.Fatal("expected error for unknown shop type")
	}
}

func TestOneOfTag(t *testing.T) {
	if got := OneOf(RateTypes()); got != "oneof=hourly daily weekly monthly" {
		t.Fatalf("unexpected tag %q", got)
	}
	if len(MaidServices()) != 12 || len(HousingTypes()) != 5 || len(ShopTypes()) != 8 || len(Availabilities()) != 4 {
		t.Fatal("unexpected enum sizes")
	}
}
