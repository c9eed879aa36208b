package constants

import "os"

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	InitCmdName       = "init"
	HashObjectCmdName = "hash-object"
	CatFileCmdName    = "cat-file"
	LsTreeCmdName     = "ls-tree"
)

// Repository directory and file names define the gogit metadata structure.
const (
	// Gogit is the repository metadata directory.
	Gogit = ".gogit"

	// Objects stores content-addressable objects (blobs, trees).
	Objects = "objects"

	// Refs contains branch and tag references.
	Refs = "refs"

	// Heads stores branch pointers under refs/.
	Heads = "heads"

	// Tags stores tag pointers under refs/.
	Tags = "tags"

	// Head points to current branch.
	Head = "HEAD"

	// Config is the INI repository configuration file.
	Config = "config"
)

// Default repository values.
const (
	// DefaultBranch is the initial branch name for new repositories.
	DefaultBranch = "main"

	// DefaultRefPrefix is prepended to branch names in HEAD file.
	DefaultRefPrefix = "ref: refs/heads/"
)

// File system permissions for created files and directories.
const (
	// DirPerms grants read/write/execute to owner, read/execute to others (rwxr-xr-x).
	DirPerms os.FileMode = 0755

	// FilePerms grants read/write to owner, read-only to others (rw-r--r--).
	FilePerms os.FileMode = 0644

	// ObjectPerms makes stored objects read-only (r--r--r--), they are never mutated in place.
	ObjectPerms os.FileMode = 0444
)

// Cryptographic hash properties.
const (
	// HashByteLength is byte length of SHA-1 hash (20 bytes).
	HashByteLength = 20

	// HashStringLength is hex string length of SHA-1 hash (40 characters).
	HashStringLength = 40

	// HashDirPrefixLength is subdirectory prefix length under objects/ (2 characters).
	HashDirPrefixLength = 2
)

// Object format constants.
const (
	// NullByte separates header from content in objects and ends entry names in trees.
	NullByte = '\x00'

	// SpaceByte separates the type from the length in headers and the mode from the name in tree entries.
	SpaceByte = ' '
)

// Decompression sizing.
const (
	// SizeHintFactor multiplies the compressed length to guess the inflated length.
	SizeHintFactor = 4

	// MinSizeHint is the smallest initial inflate buffer.
	MinSizeHint = 64

	// DefaultMaxObjectSize caps the inflate buffer growth (1 GiB).
	DefaultMaxObjectSize int64 = 1 << 30
)

// Configuration defaults written by init and assumed when keys are absent.
const (
	// DefaultCompressionLevel lets zlib pick its default level.
	DefaultCompressionLevel = -1

	// EnvPrefix is prepended to environment variables read by the CLI (GOGIT_DIR, GOGIT_STRICT).
	EnvPrefix = "GOGIT"
)
