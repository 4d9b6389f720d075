package authz

import (
	"testing"

	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/google/uuid"
)

func TestAuthorizeMatrix(t *testing.T) {
	owner := uuid.New()
	ownerCopy, _ := uuid.Parse(owner.String())
	stranger := uuid.New()

	cases := []struct {
		name     string
		identity Identity
		owner    *uuid.UUID
		action   Action
		allowed  bool
	}{
		{name: "read by anyone", identity: Identity{}, owner: &owner, action: ActionRead, allowed: true},
		{name: "owner update", identity: Identity{ID: ownerCopy, Role: enums.RoleUser}, owner: &owner, action: ActionUpdate, allowed: true},
		{name: "owner delete", identity: Identity{ID: owner, Role: enums.RoleUser}, owner: &owner, action: ActionDelete, allowed: true},
		{name: "stranger update", identity: Identity{ID: stranger, Role: enums.RoleUser}, owner: &owner, action: ActionUpdate, allowed: false},
		{name: "stranger delete", identity: Identity{ID: stranger, Role: enums.RoleUser}, owner: &owner, action: ActionDelete, allowed: false},
		{name: "admin update", identity: Identity{ID: stranger, Role: enums.RoleAdmin}, owner: &owner, action: ActionUpdate, allowed: true},
		{name: "ownerless by user", identity: Identity{ID: stranger, Role: enums.RoleUser}, owner: nil, action: ActionUpdate, allowed: false},
		{name: "ownerless by admin", identity: Identity{ID: stranger, Role: enums.RoleAdmin}, owner: nil, action: ActionDelete, allowed: true},
		{name: "anonymous vs nil owner id", identity: Identity{}, owner: &uuid.Nil, action: ActionUpdate, allowed: false},
	}

	for _, tc := range cases {
		err := Authorize(tc.identity, tc.owner, tc.action, "Housing")
		if tc.allowed && err != nil {
			t.Fatalf("%s: expected allow, got %v", tc.name, err)
		}
		if !tc.allowed {
			if err == nil {
				t.Fatalf("%s: expected deny", tc.name)
			}
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
				t.Fatalf("%s: expected forbidden, got %v", tc.name, err)
			}
		}
	}
}

func TestAuthorizeMessageNamesActionAndResource(t *testing.T) {
	err := Authorize(Identity{ID: uuid.New()}, nil, ActionDelete, "Shop")
	if typed := pkgerrors.As(err); typed == nil || typed.Message() != "Not authorized to delete this shop" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestOwns(t *testing.T) {
	id := uuid.New()
	if !Owns(Identity{ID: id}, &id) || Owns(Identity{ID: id}, nil) || Owns(Identity{}, &uuid.Nil) {
		t.Fatal("Owns mismatch")
	}
}
