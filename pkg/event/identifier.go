package event

import (
	"github.com/google/uuid"

	"github.com/apothek/sagacore/pkg/errmodel"
)

// ValidateIdentifier checks that s is a non-empty, well-formed UUID of any
// version. The check is format-only; use ValidateIdentifierV4 when version-4
// bit patterns are required.
func ValidateIdentifier(s string) error {
	if s == "" {
		return errmodel.Validation("empty_identifier", "aggregate identifier is empty", nil)
	}
	if _, err := uuid.Parse(s); err != nil {
		return errmodel.Validation("malformed_identifier", "aggregate identifier is not a UUID", map[string]any{"identifier": s})
	}
	return nil
}

// ValidateIdentifierV4 additionally requires version-4 bits and the RFC 4122
// variant.
func ValidateIdentifierV4(s string) error {
	if err := ValidateIdentifier(s); err != nil {
		return err
	}
	u, _ := uuid.Parse(s)
	if u.Version() != 4 || u.Variant() != uuid.RFC4122 {
		return errmodel.Validation("not_uuid_v4", "aggregate identifier is not a version-4 UUID", map[string]any{"identifier": s, "version": int(u.Version())})
	}
	return nil
}
