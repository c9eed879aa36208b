package objects

import (
	"fmt"

	"github.com/KostasZigo/gogitobj/utils"
)

// Object is a decoded object. Type selects which of Blob or Tree is set.
type Object struct {
	Type utils.ObjectType
	Blob *Blob
	Tree *Tree
}

func BlobObject(blob *Blob) Object {
	return Object{Type: utils.BlobObjectType, Blob: blob}
}

func TreeObject(tree *Tree) Object {
	return Object{Type: utils.TreeObjectType, Tree: tree}
}

// ParseObject builds the variant matching objectType from a payload.
func ParseObject(objectType utils.ObjectType, payload []byte) (Object, error) {
	switch objectType {
	case utils.BlobObjectType:
		return BlobObject(NewBlob(payload)), nil
	case utils.TreeObjectType:
		tree, err := ParseTree(payload)
		if err != nil {
			return Object{}, err
		}
		return TreeObject(tree), nil
	default:
		return Object{}, fmt.Errorf("%w: %q", ErrUnknownObjectType, objectType)
	}
}

// Payload returns the bytes that follow the header once the object is encoded.
func (o Object) Payload() ([]byte, error) {
	switch o.Type {
	case utils.BlobObjectType:
		if o.Blob == nil {
			return nil, fmt.Errorf("%w: blob object without blob", ErrInvalidObjectFormat)
		}
		return o.Blob.Content(), nil
	case utils.TreeObjectType:
		if o.Tree == nil {
			return nil, fmt.Errorf("%w: tree object without tree", ErrInvalidObjectFormat)
		}
		return o.Tree.Content(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, o.Type)
	}
}

// ID returns the content identifier of the object.
func (o Object) ID() (ObjectID, error) {
	payload, err := o.Payload()
	if err != nil {
		return ZeroID, err
	}
	return HashObject(o.Type, payload)
}
