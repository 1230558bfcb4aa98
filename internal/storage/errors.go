package storage

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors returned by the storage layer. The API boundary maps them
// to response codes; storage methods wrap them with entity context.
var (
	// ErrNotFound: a referenced entity does not exist, at read time or as
	// a foreign-key target on write.
	ErrNotFound = errors.New("not found")

	// ErrConflict: a uniqueness invariant was violated at commit time.
	ErrConflict = errors.New("already exists")

	// ErrInvalid: a value is out of the domain's range (e.g. a port
	// number beyond the device's port count).
	ErrInvalid = errors.New("invalid value")

	// ErrCorrupt: a device discriminator points at a variant table with
	// no matching row. This indicates store corruption, not user error,
	// and must surface as an internal error.
	ErrCorrupt = errors.New("device variant row missing")
)

// translate maps gorm sentinels onto the storage sentinels. Unknown errors
// pass through unchanged.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		// The only foreign keys in the schema point at entities the
		// caller referenced, so a violation means the target is gone.
		return ErrNotFound
	default:
		return err
	}
}
