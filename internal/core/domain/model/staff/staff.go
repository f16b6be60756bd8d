// Package staff holds the minimal user model the workflow needs: who may
// review, process logistics, and dispatch. Account administration lives
// outside this service; only the read side is modeled here.
package staff

import (
	"errors"
	"fmt"

	"gatepass/internal/core/domain/model/kernel"
	"gatepass/internal/pkg/errs"
)

// ErrStaffIsNotConstructed is returned when a Staff instance was not created
// through NewStaff or RestoreStaff.
var ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff or RestoreStaff")

// Role is the workflow role of a staff member.
type Role string

const (
	// Employee submits and resubmits parcels.
	Employee Role = "employee"

	// Logistics processes courier parcels and dispatches approved ones.
	Logistics Role = "logistics"

	// Manager approves or rejects submitted parcels.
	Manager Role = "manager"
)

// RoleFromString validates and converts a raw string.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case Employee, Logistics, Manager:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the Role is one of the defined workflow roles.
func (r Role) Validate() error {
	switch r {
	case Employee, Logistics, Manager:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the wire form of the role.
func (r Role) String() string {
	return string(r)
}

// Staff is a user participating in the workflow.
type Staff struct {
	id   kernel.UUID
	name string
	role Role

	isConstructed bool
}

// NewStaff creates a validated staff member.
func NewStaff(id kernel.UUID, name string, role Role) (*Staff, error) {
	s := &Staff{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setRole(role),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStaff reconstructs a staff member from persistence.
func RestoreStaff(id kernel.UUID, name string, role Role) (*Staff, error) {
	return NewStaff(id, name, role)
}

// Validate ensures the Staff instance came from a constructor.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// ID returns the staff member's unique identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the staff member's display name.
func (s *Staff) Name() string {
	return s.name
}

// Role returns the staff member's workflow role.
func (s *Staff) Role() Role {
	return s.role
}

// HasRole reports whether the staff member holds the given role.
func (s *Staff) HasRole(role Role) bool {
	return s.role == role
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}
