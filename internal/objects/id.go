package objects

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/KostasZigo/gogitobj/internal/constants"
)

// ObjectID is the raw SHA-1 digest of an encoded object.
type ObjectID [constants.HashByteLength]byte

// ZeroID never names a stored object.
var ZeroID ObjectID

// Sum digests data.
func Sum(data []byte) ObjectID {
	return sha1.Sum(data)
}

// String returns the 40 character lowercase hex form.
func (id ObjectID) String() string {
	return hex.EncodeToString(id[:])
}

// Bytes returns a copy of the raw digest.
func (id ObjectID) Bytes() []byte {
	return id[:]
}

func (id ObjectID) IsZero() bool {
	return id == ZeroID
}

// ParseObjectID converts a 40 character lowercase hex string into an ObjectID.
func ParseObjectID(s string) (ObjectID, error) {
	var id ObjectID
	if len(s) != constants.HashStringLength {
		return id, fmt.Errorf("%w: %q has %d characters, expected %d",
			ErrInvalidObjectID, s, len(s), constants.HashStringLength)
	}

	// hex.DecodeString accepts upper case, identifiers are lower case only
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return id, fmt.Errorf("%w: %q contains non-hex character %q", ErrInvalidObjectID, s, c)
		}
	}

	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return id, fmt.Errorf("%w: %w", ErrInvalidObjectID, err)
	}
	return id, nil
}

// ObjectIDFromBytes copies a raw 20 byte digest.
func ObjectIDFromBytes(raw []byte) (ObjectID, error) {
	var id ObjectID
	if len(raw) != constants.HashByteLength {
		return id, fmt.Errorf("%w: raw digest has %d bytes, expected %d",
			ErrInvalidObjectID, len(raw), constants.HashByteLength)
	}
	copy(id[:], raw)
	return id, nil
}
