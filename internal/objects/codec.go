package objects

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/KostasZigo/gogitobj/internal/constants"
	"github.com/KostasZigo/gogitobj/utils"
)

// Header is the parsed "<type> <size>" prefix of an encoded object.
type Header struct {
	Type utils.ObjectType
	// Size is the declared payload length, not checked against the payload.
	Size int
}

// Encode frames payload as "<type> <size>\0<payload>".
func Encode(objectType utils.ObjectType, payload []byte) ([]byte, error) {
	if !objectType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, objectType)
	}

	header := fmt.Sprintf("%s %d\x00", objectType, len(payload))
	data := make([]byte, 0, len(header)+len(payload))
	data = append(data, header...)
	data = append(data, payload...)
	return data, nil
}

// HashObject returns the id payload would be stored under, without storing it.
func HashObject(objectType utils.ObjectType, payload []byte) (ObjectID, error) {
	data, err := Encode(objectType, payload)
	if err != nil {
		return ZeroID, err
	}
	return Sum(data), nil
}

// Decode splits an encoded object into its type and payload.
func Decode(data []byte) (utils.ObjectType, []byte, error) {
	header, payload, err := DecodeHeader(data)
	if err != nil {
		return "", nil, err
	}
	return header.Type, payload, nil
}

// DecodeHeader parses the header of an encoded object and returns it with the payload.
func DecodeHeader(data []byte) (Header, []byte, error) {
	spaceIndex := bytes.IndexByte(data, constants.SpaceByte)
	nullIndex := bytes.IndexByte(data, constants.NullByte)

	if nullIndex == -1 {
		return Header{}, nil, fmt.Errorf("%w: no null byte found", ErrInvalidObjectFormat)
	}
	if spaceIndex == -1 || spaceIndex > nullIndex {
		return Header{}, nil, fmt.Errorf("%w: no space in header %q", ErrInvalidObjectFormat, data[:nullIndex])
	}

	objectType := utils.ObjectType(data[:spaceIndex])
	if !objectType.IsValid() {
		return Header{}, nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, objectType)
	}

	sizeToken := string(data[spaceIndex+1 : nullIndex])
	size, err := strconv.Atoi(sizeToken)
	if err != nil || size < 0 {
		return Header{}, nil, fmt.Errorf("%w: invalid size %q", ErrInvalidObjectFormat, sizeToken)
	}

	return Header{Type: objectType, Size: size}, data[nullIndex+1:], nil
}
