package objects

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/KostasZigo/gogitobj/internal/constants"
	"github.com/KostasZigo/gogitobj/utils"
)

// FileMode is the wire form of a tree entry mode.
type FileMode string

const (
	ModeRegularFile FileMode = "100644" // Regular non-executable file
	ModeExecutable  FileMode = "100755" // Executable file
	ModeDirectory   FileMode = "40000"  // Directory (tree), no leading zero on the wire
)

// displayModeWidth is the zero-padded width used when printing modes.
const displayModeWidth = 6

func (m FileMode) IsValid() bool {
	switch m {
	case ModeRegularFile, ModeExecutable, ModeDirectory:
		return true
	default:
		return false
	}
}

// ParseFileMode validates a wire mode token.
func ParseFileMode(token string) (FileMode, error) {
	mode := FileMode(token)
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, token)
	}
	return mode, nil
}

// Display returns the zero-padded form, "040000" for directories.
func (m FileMode) Display() string {
	if len(m) >= displayModeWidth {
		return string(m)
	}
	return strings.Repeat("0", displayModeWidth-len(m)) + string(m)
}

// ObjectType is the kind of object an entry with this mode points at.
func (m FileMode) ObjectType() utils.ObjectType {
	if m == ModeDirectory {
		return utils.TreeObjectType
	}
	return utils.BlobObjectType
}

// TreeEntry represents a single entry in a tree object
type TreeEntry struct {
	mode FileMode
	name string
	id   ObjectID
}

func NewTreeEntry(mode FileMode, name string, id ObjectID) (*TreeEntry, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	if strings.IndexByte(name, constants.NullByte) != -1 {
		return nil, fmt.Errorf("%w: entry name %q contains a null byte", ErrInvalidTreeFormat, name)
	}
	return &TreeEntry{
		mode: mode,
		name: name,
		id:   id,
	}, nil
}

func (e *TreeEntry) Mode() FileMode {
	return e.mode
}

func (e *TreeEntry) Name() string {
	return e.name
}

func (e *TreeEntry) ID() ObjectID {
	return e.id
}

func (e *TreeEntry) IsDirectory() bool {
	return e.mode == ModeDirectory
}

func (e *TreeEntry) IsExecutable() bool {
	return e.mode == ModeExecutable
}

// Format renders the entry as "<mode> <type> <id>    <name>".
func (e *TreeEntry) Format() string {
	return fmt.Sprintf("%s %s %s    %s", e.mode.Display(), e.mode.ObjectType(), e.id, e.name)
}

// ParseEntries decodes a tree payload, keeping the entries in payload order.
// Each entry is "<mode> <name>\0<20 byte id>" with no length prefix.
func ParseEntries(payload []byte) ([]TreeEntry, error) {
	var entries []TreeEntry
	rest := payload

	for len(rest) > 0 {
		spaceIndex := bytes.IndexByte(rest, constants.SpaceByte)
		if spaceIndex == -1 {
			return nil, fmt.Errorf("%w: entry %d has no mode terminator", ErrInvalidTreeFormat, len(entries))
		}
		mode, err := ParseFileMode(string(rest[:spaceIndex]))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", len(entries), err)
		}
		rest = rest[spaceIndex+1:]

		nullIndex := bytes.IndexByte(rest, constants.NullByte)
		if nullIndex == -1 {
			return nil, fmt.Errorf("%w: entry %d has no name terminator", ErrInvalidTreeFormat, len(entries))
		}
		name := string(rest[:nullIndex])
		rest = rest[nullIndex+1:]

		if len(rest) < constants.HashByteLength {
			return nil, fmt.Errorf("%w: entry %d (%q) has %d of %d id bytes",
				ErrTruncatedEntry, len(entries), name, len(rest), constants.HashByteLength)
		}
		var id ObjectID
		copy(id[:], rest[:constants.HashByteLength])
		rest = rest[constants.HashByteLength:]

		entries = append(entries, TreeEntry{mode: mode, name: name, id: id})
	}

	return entries, nil
}

// SerializeEntries builds the tree payload for entries in the given order, ex:
// 100644 README.md\0[binary SHA for README blob]
// 40000 src\0[binary SHA for src/ tree]
func SerializeEntries(entries []TreeEntry) []byte {
	var buf bytes.Buffer

	for _, entry := range entries {
		buf.WriteString(string(entry.mode))
		buf.WriteByte(constants.SpaceByte)
		buf.WriteString(entry.name)
		buf.WriteByte(constants.NullByte)
		buf.Write(entry.id[:])
	}

	return buf.Bytes()
}

// Tree represents a directory listing
type Tree struct {
	entries []TreeEntry
	id      ObjectID
}

// NewTree creates a tree object from the list of Tree Entries, preserving their order
func NewTree(treeEntries []TreeEntry) *Tree {
	entries := make([]TreeEntry, len(treeEntries))
	copy(entries, treeEntries)

	id, _ := HashObject(utils.TreeObjectType, SerializeEntries(entries))
	return &Tree{
		entries: entries,
		id:      id,
	}
}

// ParseTree decodes a tree payload into a Tree.
func ParseTree(payload []byte) (*Tree, error) {
	entries, err := ParseEntries(payload)
	if err != nil {
		return nil, err
	}
	return NewTree(entries), nil
}

// ID returns the id of the tree
func (t *Tree) ID() ObjectID {
	return t.id
}

// Hash returns the hex id of the tree
func (t *Tree) Hash() string {
	return t.id.String()
}

// Entries returns all tree entries
func (t *Tree) Entries() []TreeEntry {
	return t.entries
}

// Content returns the raw tree payload
func (t *Tree) Content() []byte {
	return SerializeEntries(t.entries)
}

// Size returns the size of the tree payload
func (t *Tree) Size() int {
	return len(t.Content())
}

// String returns a human-readable representation
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{hash: %s, entries: %d}", t.id, len(t.entries))
}

// FindEntry finds an entry by name
func (t *Tree) FindEntry(name string) (*TreeEntry, bool) {
	for i := range t.entries {
		if t.entries[i].name == name {
			return &t.entries[i], true
		}
	}
	return nil, false
}
