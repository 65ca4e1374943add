// Package authz implements the authorization policy as a pure rule table.
// It decides, per action and per identity/role, whether an operation is
// permitted, without any knowledge of HTTP or storage.
package authz

import (
	"errors"

	"jobboard_backend/internal/feature/identity/domain/entity"
)

// Action identifies an operation gated by the policy.
type Action string

const (
	// ActionListingRead covers listing list/retrieve operations.
	ActionListingRead Action = "listing:read"

	// ActionListingCreate covers creation of a new listing.
	ActionListingCreate Action = "listing:create"

	// ActionListingMutate covers update, delete and deactivation of a listing.
	ActionListingMutate Action = "listing:mutate"

	// ActionApply covers submitting a job application.
	ActionApply Action = "application:apply"

	// ActionSave covers saving and unsaving a listing.
	ActionSave Action = "savedjob:save"

	// ActionIdentityUpdate covers updating an identity's own profile.
	ActionIdentityUpdate Action = "identity:update"
)

var (
	// ErrUnauthenticated is returned when no identity is presented.
	// It is distinct from ErrForbidden so transports can map it to 401.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the identity's role or ownership
	// does not permit the action.
	ErrForbidden = errors.New("operation not permitted")
)

// Resource is the optional target of an action. Ownership-gated rules
// compare the requesting identity against OwnerID.
type Resource interface {
	OwnerID() uint
}

// OwnedBy adapts a bare identity ID into a Resource.
type OwnedBy uint

// OwnerID returns the wrapped identity ID.
func (o OwnedBy) OwnerID() uint { return uint(o) }

// rule is a single policy entry. Rules are evaluated in order and the
// first rule matching the action decides the outcome.
type rule struct {
	action Action
	allow  func(id *entity.Identity, res Resource) bool
}

// rules is the policy table. Ordering matters: first match wins.
var rules = []rule{
	{ActionListingRead, func(id *entity.Identity, _ Resource) bool {
		return true // any authenticated identity
	}},
	{ActionListingCreate, func(id *entity.Identity, _ Resource) bool {
		return id.IsEmployer()
	}},
	{ActionListingMutate, func(id *entity.Identity, res Resource) bool {
		return id.IsEmployer() && res != nil && res.OwnerID() == id.ID
	}},
	{ActionApply, func(id *entity.Identity, _ Resource) bool {
		return id.IsJobSeeker()
	}},
	{ActionSave, func(id *entity.Identity, _ Resource) bool {
		return id.IsJobSeeker()
	}},
	{ActionIdentityUpdate, func(id *entity.Identity, res Resource) bool {
		return res != nil && res.OwnerID() == id.ID
	}},
}

// Can reports whether the identity may perform the action on the resource.
// A nil identity fails with ErrUnauthenticated before any role rule is
// evaluated; an action with no matching rule is denied.
func Can(id *entity.Identity, action Action, res Resource) error {
	if id == nil {
		return ErrUnauthenticated
	}
	for _, r := range rules {
		if r.action != action {
			continue
		}
		if r.allow(id, res) {
			return nil
		}
		return ErrForbidden
	}
	return ErrForbidden
}
