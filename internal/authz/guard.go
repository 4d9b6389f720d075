// Package authz decides whether an identity may act on an owned record.
package authz

import (
	"fmt"
	"strings"

	"github.com/angelmondragon/bachelorhub-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/google/uuid"
)

// Action is the kind of operation being attempted.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Identity is the authenticated caller.
type Identity struct {
	ID    uuid.UUID
	Role  enums.Role
	Email string
}

func (i Identity) IsAdmin() bool {
	return i.Role == enums.RoleAdmin
}

// IsZero reports whether no caller is attached.
func (i Identity) IsZero() bool {
	return i.ID == uuid.Nil
}

// Authorize allows reads unconditionally. Updates and deletes require the
// caller to own the record or hold the admin role; records without an owner
// are admin-only. resource names the record in the denial message.
func Authorize(identity Identity, owner *uuid.UUID, action Action, resource string) error {
	if action == ActionRead {
		return nil
	}
	if identity.IsAdmin() {
		return nil
	}
	if Owns(identity, owner) {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeForbidden, fmt.Sprintf("Not authorized to %s this %s", action, strings.ToLower(resource)))
}

// Owns reports whether identity is the recorded owner.
func Owns(identity Identity, owner *uuid.UUID) bool {
	return owner != nil && !identity.IsZero() && *owner == identity.ID
}
