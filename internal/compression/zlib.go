// Package compression deflates objects before they hit the disk and inflates
// them back without knowing the original length up front.
package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/KostasZigo/gogitobj/internal/constants"
	"github.com/klauspost/compress/zlib"
)

var (
	// ErrCompressionFailure is returned when the deflate stream cannot be produced.
	ErrCompressionFailure = errors.New("compression failure")

	// ErrDecompressionFailure is returned for any codec error other than running out of buffer.
	ErrDecompressionFailure = errors.New("decompression failure")

	// ErrObjectTooLarge is returned together with ErrDecompressionFailure when the
	// inflate buffer would grow past the configured ceiling.
	ErrObjectTooLarge = errors.New("object exceeds maximum size")
)

// Codec compresses and decompresses object bytes with zlib.
type Codec struct {
	level   int
	maxSize int64
}

type Option func(*Codec)

// WithLevel sets the zlib compression level (-1..9).
func WithLevel(level int) Option {
	return func(c *Codec) {
		c.level = level
	}
}

// WithMaxSize caps the decompression buffer. Zero or negative disables the cap.
func WithMaxSize(maxSize int64) Option {
	return func(c *Codec) {
		c.maxSize = maxSize
	}
}

func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		level:   constants.DefaultCompressionLevel,
		maxSize: constants.DefaultMaxObjectSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compress deflates data into a complete zlib stream.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	var buffer bytes.Buffer

	writer, err := zlib.NewWriterLevel(&buffer, c.level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompressionFailure, err)
	}

	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompressionFailure, err)
	}

	// Close flushes the final block and the adler32 trailer
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompressionFailure, err)
	}

	return buffer.Bytes(), nil
}

// SizeHint guesses the inflated length of a compressed buffer.
func SizeHint(compressedLength int) int {
	return max(compressedLength*constants.SizeHintFactor, constants.MinSizeHint)
}

// Decompress inflates data into a buffer of sizeHint bytes, doubling the buffer
// each time it fills up before the stream ends. Growth stops only at the end
// of the stream, on a codec error or when the configured ceiling is reached.
func (c *Codec) Decompress(data []byte, sizeHint int) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompressionFailure, err)
	}
	defer reader.Close()

	buffer := make([]byte, c.clamp(max(sizeHint, 1)))
	n := 0
	for {
		if n == len(buffer) {
			if c.atCeiling(len(buffer)) {
				return c.finishAtCeiling(reader, buffer)
			}
			buffer = c.grow(buffer)
		}

		read, err := reader.Read(buffer[n:])
		n += read
		if errors.Is(err, io.EOF) {
			return buffer[:n], nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecompressionFailure, err)
		}
	}
}

// grow doubles the buffer up to the ceiling, keeping the bytes inflated so far.
func (c *Codec) grow(buffer []byte) []byte {
	capacity := c.clamp(len(buffer) * 2)

	slog.Debug("Growing decompression buffer",
		"from", len(buffer),
		"to", capacity)

	grown := make([]byte, capacity)
	copy(grown, buffer)
	return grown
}

// finishAtCeiling accepts a full buffer only if the stream ends right there.
func (c *Codec) finishAtCeiling(reader io.Reader, buffer []byte) ([]byte, error) {
	var probe [1]byte
	for {
		read, err := reader.Read(probe[:])
		if read > 0 {
			return nil, fmt.Errorf("%w: %w: limit is %d bytes",
				ErrDecompressionFailure, ErrObjectTooLarge, c.maxSize)
		}
		if errors.Is(err, io.EOF) {
			return buffer, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecompressionFailure, err)
		}
	}
}

func (c *Codec) clamp(capacity int) int {
	if c.maxSize > 0 && int64(capacity) > c.maxSize {
		return int(c.maxSize)
	}
	return capacity
}

func (c *Codec) atCeiling(capacity int) bool {
	return c.maxSize > 0 && int64(capacity) >= c.maxSize
}
