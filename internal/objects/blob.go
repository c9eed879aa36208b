package objects

import (
	"fmt"
	"io"
	"os"

	"github.com/KostasZigo/gogitobj/utils"
)

type Blob struct {
	content []byte
	id      ObjectID
}

func NewBlob(content []byte) *Blob {
	id, _ := HashObject(utils.BlobObjectType, content)
	return &Blob{
		content: content,
		id:      id,
	}
}

func NewBlobFromFile(filepath string) (*Blob, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath, err)
	}
	return NewBlob(content), nil
}

// NewBlobFromReader reads r to EOF and wraps the bytes as a blob.
func NewBlobFromReader(r io.Reader) (*Blob, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob content: %w", err)
	}
	return NewBlob(content), nil
}

func (b *Blob) ID() ObjectID {
	return b.id
}

func (b *Blob) Hash() string {
	return b.id.String()
}

func (b *Blob) Content() []byte {
	return b.content
}

func (b *Blob) Size() int {
	return len(b.content)
}

func (b *Blob) String() string {
	return fmt.Sprintf("Blob{hash: %s, size: %d bytes}", b.id, b.Size())
}
