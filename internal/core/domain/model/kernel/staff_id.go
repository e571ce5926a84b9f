package kernel

import (
	"fmt"

	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrStaffIDIsNotConstructed indicates that a StaffID was not created through
// one of the constructor functions. This error is returned when validating a
// zero-value StaffID.
var ErrStaffIDIsNotConstructed = errs.NewValueIsRequiredError(
	"StaffID must be created via NewStaffID or StaffIDFromString")

// StaffID is a value object identifying a staff member. It wraps the
// github.com/google/uuid implementation to provide domain-specific behavior
// and ensure immutability.
//
// The zero value of StaffID is invalid and must be constructed using one of
// the provided factory functions. StaffID is immutable and thread-safe.
//
// Example usage:
//
//	id := kernel.NewStaffID()
//	fmt.Println(id.String()) // e.g. "550e8400-e29b-41d4-a716-446655440000"
type StaffID struct {
	id uuid.UUID
}

// NewStaffID generates a new random staff identifier (UUID version 4).
func NewStaffID() StaffID {
	return StaffID{id: uuid.New()}
}

// StaffIDFromString parses a StaffID from its string representation.
// Returns an error if the string is not a valid UUID format.
func StaffIDFromString(s string) (StaffID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return StaffID{}, fmt.Errorf("invalid staff ID format: %w", err)
	}
	return StaffID{id: id}, nil
}

// String returns the canonical string representation of the identifier.
func (s StaffID) String() string {
	return s.id.String()
}

// IsEqual compares two staff identifiers for equality.
func (s StaffID) IsEqual(other StaffID) bool {
	return s.id == other.id
}

// Validate returns ErrStaffIDIsNotConstructed for a zero-value StaffID.
func (s StaffID) Validate() error {
	if s.id == uuid.Nil {
		return ErrStaffIDIsNotConstructed
	}
	return nil
}
