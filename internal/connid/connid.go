// Package connid generates time-sortable identifiers for server connections.
package connid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Prefix starts every connection id.
const Prefix = "conn_"

// Crockford base32, lowercase.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// encodedLen is the number of base32 characters needed for 128 bits.
const encodedLen = 26

// Len is the length of a complete id.
const Len = len(Prefix) + encodedLen

// Source produces UUIDs. uuid.NewV7 satisfies it.
type Source func() (uuid.UUID, error)

// Generator creates connection ids from a UUID source.
type Generator struct {
	source Source
}

// NewGenerator returns a Generator. A nil source uses uuid.NewV7.
func NewGenerator(source Source) *Generator {
	if source == nil {
		source = uuid.NewV7
	}
	return &Generator{source: source}
}

// New returns an id such as "conn_01j9x0s6b3f7g8h9k2m4n5p6q7".
func (g *Generator) New() (string, error) {
	id, err := g.source()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}
	return Prefix + encode(id), nil
}

// encode writes the 128-bit value most significant bits first, left-padded
// with two zero bits so the first character is at most '7'.
func encode(id uuid.UUID) string {
	var sb strings.Builder
	sb.Grow(encodedLen)

	hi, lo := uint64(0), uint64(0)
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(id[i])
		lo = lo<<8 | uint64(id[8+i])
	}

	for i := encodedLen - 1; i >= 0; i-- {
		shift := uint(i * 5)
		var v uint64
		switch {
		case shift >= 64:
			v = hi >> (shift - 64)
		case shift > 59:
			v = lo>>shift | hi<<(64-shift)
		default:
			v = lo >> shift
		}
		sb.WriteByte(alphabet[v&0x1f])
	}
	return sb.String()
}

// Validate checks that id has the prefix and a well-formed 128-bit body.
func Validate(id string) error {
	if !strings.HasPrefix(id, Prefix) {
		return fmt.Errorf("connection id must start with %q", Prefix)
	}
	body := id[len(Prefix):]
	if len(body) != encodedLen {
		return fmt.Errorf("connection id body must be %d characters, got %d", encodedLen, len(body))
	}
	if body[0] > '7' {
		return fmt.Errorf("connection id first character must be 0-7, got %c", body[0])
	}
	for i := 0; i < len(body); i++ {
		if strings.IndexByte(alphabet, body[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", body[i], len(Prefix)+i)
		}
	}
	return nil
}
