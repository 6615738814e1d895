package kernel

import (
	"fmt"

	"enquiry/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies every aggregate and entity of the enquiry domain.
// It wraps github.com/google/uuid; the zero value is invalid.
//
//	enquiryID := kernel.NewUUID()
//	lineID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical, braced or URN form of a UUID.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// UUIDFromBytes builds a UUID from its 16 byte representation, as stored by
// the postgres adapters.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// UUIDsFromStrings parses a list of identifiers, failing on the first invalid one.
func UUIDsFromStrings(values []string) ([]UUID, error) {
	ids := make([]UUID, 0, len(values))
	for _, v := range values {
		id, err := UUIDFromString(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the wrapped google UUID.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// ContainsUUID reports whether id is present in ids.
func ContainsUUID(ids []UUID, id UUID) bool {
	for _, candidate := range ids {
		if candidate.IsEqual(id) {
			return true
		}
	}
	return false
}
