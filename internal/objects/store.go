package objects

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gogitobj/internal/compression"
	"github.com/KostasZigo/gogitobj/internal/constants"
	"github.com/KostasZigo/gogitobj/utils"
	"go.uber.org/multierr"
)

// ObjectStore manages storage of objects under <root>/objects/<2 hex>/<38 hex>.
type ObjectStore struct {
	root   string // Repository metadata directory, e.g. <repo>/.gogit
	codec  *compression.Codec
	strict bool
}

type StoreOption func(*ObjectStore)

// WithCodec replaces the default zlib codec.
func WithCodec(codec *compression.Codec) StoreOption {
	return func(store *ObjectStore) {
		store.codec = codec
	}
}

// WithStrict makes Read verify the declared size and the digest of every object.
func WithStrict(strict bool) StoreOption {
	return func(store *ObjectStore) {
		store.strict = strict
	}
}

func NewObjectStore(root string, opts ...StoreOption) *ObjectStore {
	store := &ObjectStore{
		root:  root,
		codec: compression.NewCodec(),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Root returns the metadata directory the store was opened on.
func (store *ObjectStore) Root() string {
	return store.root
}

// Locate returns the file path of the object named by id.
func (store *ObjectStore) Locate(id ObjectID) string {
	hash := id.String()
	return filepath.Join(store.root, constants.Objects,
		hash[:constants.HashDirPrefixLength], hash[constants.HashDirPrefixLength:])
}

// Write encodes, compresses and saves an object, returning its id.
// Writing an object that already exists is a no-op.
func (store *ObjectStore) Write(objectType utils.ObjectType, payload []byte) (ObjectID, error) {
	data, err := Encode(objectType, payload)
	if err != nil {
		return ZeroID, err
	}

	id := Sum(data)
	objectFile := store.Locate(id)

	// Check if object already exists (content-addressable)
	_, err = os.Stat(objectFile)
	if err == nil {
		slog.Debug("Object with this hash already exists",
			"hash", id)
		return id, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return ZeroID, fmt.Errorf("failed to check object file: %w", err)
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(objectFile), constants.DirPerms); err != nil {
		return ZeroID, fmt.Errorf("failed to create object directory: %w", err)
	}

	compressedData, err := store.codec.Compress(data)
	if err != nil {
		return ZeroID, fmt.Errorf("failed to compress object: %w", err)
	}

	if err := writeFileAtomic(objectFile, compressedData, constants.ObjectPerms); err != nil {
		return ZeroID, fmt.Errorf("failed to write object file: %w", err)
	}

	slog.Debug("Stored object",
		"hash", id,
		"type", objectType,
		"size", len(payload),
		"compressed", len(compressedData))

	return id, nil
}

// WriteObject stores a decoded object.
func (store *ObjectStore) WriteObject(obj Object) (ObjectID, error) {
	payload, err := obj.Payload()
	if err != nil {
		return ZeroID, err
	}
	return store.Write(obj.Type, payload)
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place, so path either holds the complete data or does not exist.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err == nil {
			return
		}
		if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			slog.Warn("Failed to remove temporary object file",
				"path", tmpPath,
				"error", removeErr)
			err = multierr.Append(err, removeErr)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return multierr.Append(fmt.Errorf("write temporary file %q: %w", tmpPath, err), tmp.Close())
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temporary file %q: %w", tmpPath, err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temporary file %q: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename file %q->%q: %w", tmpPath, path, err)
	}
	return nil
}

// Read loads the object named by hash and returns its type and payload.
func (store *ObjectStore) Read(hash string) (utils.ObjectType, []byte, error) {
	id, err := ParseObjectID(hash)
	if err != nil {
		return "", nil, err
	}

	compressedData, err := os.ReadFile(store.Locate(id))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %w", ErrObjectNotFound, hash, err)
	}

	data, err := store.codec.Decompress(compressedData, compression.SizeHint(len(compressedData)))
	if err != nil {
		return "", nil, fmt.Errorf("failed to decompress object %s: %w", hash, err)
	}

	header, payload, err := DecodeHeader(data)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode object %s: %w", hash, err)
	}

	if store.strict {
		if err := verify(id, header, payload, data); err != nil {
			return "", nil, err
		}
	}

	return header.Type, payload, nil
}

// verify checks what the default read path trusts: the declared size and the digest.
func verify(id ObjectID, header Header, payload, data []byte) error {
	if header.Size != len(payload) {
		return fmt.Errorf("%w: object %s declares %d bytes, has %d",
			ErrSizeMismatch, id, header.Size, len(payload))
	}
	if actual := Sum(data); actual != id {
		return fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, id, actual)
	}
	return nil
}

// ReadObject loads and decodes the object named by hash.
func (store *ObjectStore) ReadObject(hash string) (Object, error) {
	objectType, payload, err := store.Read(hash)
	if err != nil {
		return Object{}, err
	}

	obj, err := ParseObject(objectType, payload)
	if err != nil {
		return Object{}, fmt.Errorf("failed to parse %s %s: %w", objectType, hash, err)
	}
	return obj, nil
}

// ReadBlob reads a blob from storage by hash
func (store *ObjectStore) ReadBlob(hash string) (*Blob, error) {
	obj, err := store.ReadObject(hash)
	if err != nil {
		return nil, err
	}
	if obj.Type != utils.BlobObjectType {
		return nil, fmt.Errorf("%w: %s is a %s, not a blob", ErrUnexpectedType, hash, obj.Type)
	}
	return obj.Blob, nil
}

// ReadTree reads a tree from storage by hash
func (store *ObjectStore) ReadTree(hash string) (*Tree, error) {
	obj, err := store.ReadObject(hash)
	if err != nil {
		return nil, err
	}
	if obj.Type != utils.TreeObjectType {
		return nil, fmt.Errorf("%w: %s is a %s, not a tree", ErrUnexpectedType, hash, obj.Type)
	}
	return obj.Tree, nil
}

// Exists checks if an object exists in storage
func (store *ObjectStore) Exists(hash string) bool {
	id, err := ParseObjectID(hash)
	if err != nil {
		return false
	}
	_, err = os.Stat(store.Locate(id))
	return err == nil
}
