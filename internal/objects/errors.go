package objects

import "errors"

// Errors returned by the object codecs and the ObjectStore.
// Compression errors live in the compression package.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrInvalidObjectID     = errors.New("invalid object id")
	ErrInvalidObjectFormat = errors.New("invalid object format")
	ErrUnknownObjectType   = errors.New("unknown object type")
	ErrInvalidMode         = errors.New("invalid tree entry mode")
	ErrTruncatedEntry      = errors.New("truncated tree entry")
	ErrInvalidTreeFormat   = errors.New("invalid tree format")

	// ErrUnexpectedType is returned by the typed readers (ReadBlob, ReadTree).
	ErrUnexpectedType = errors.New("unexpected object type")

	// Strict mode only.
	ErrSizeMismatch = errors.New("declared size does not match payload")
	ErrHashMismatch = errors.New("object hash mismatch")
)
