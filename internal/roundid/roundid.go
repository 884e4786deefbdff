// Package roundid generates sortable round identifiers: a UUIDv7 encoded as
// 26 characters of lower-case Crockford base32, the TypeID suffix format.
package roundid

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const encodedLen = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// encode writes the 128 UUID bits as 130 bits with two leading zero bits,
// so the first character is always 0-7. The buffer carries the UUID shifted
// right by 2; the last two characters only hold zero fill.
func encode(u uuid.UUID) string {
	var buf [len(u) + 1]byte
	for i, b := range u {
		buf[i] |= b >> 2
		buf[i+1] = b << 6
	}
	return encoding.EncodeToString(buf[:])[:encodedLen]
}

func decode(id string) (uuid.UUID, error) {
	var u uuid.UUID
	if id[0] > '7' {
		return u, fmt.Errorf("round ID %q overflows 128 bits", id)
	}
	raw, err := encoding.DecodeString(id + "00")
	if err != nil {
		return u, fmt.Errorf("round ID %q is not base32: %w", id, err)
	}
	for i := range u {
		u[i] = raw[i]<<2 | raw[i+1]>>6
	}
	return u, nil
}

// Generator creates round IDs from a configurable random reader
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator; a nil reader uses crypto/rand
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// Generate creates a new round ID using crypto/rand
func Generate() string {
	id, err := NewGenerator(nil).Generate()
	if err != nil {
		panic("failed to generate round id: " + err.Error())
	}
	return id
}

// Generate creates a new round ID
func (g *Generator) Generate() (string, error) {
	u, err := uuid.NewV7FromReader(g.rand)
	if err != nil {
		return "", fmt.Errorf("generate uuidv7: %w", err)
	}
	return encode(u), nil
}

// Parse decodes a round ID back into its UUID
func Parse(id string) (uuid.UUID, error) {
	if len(id) != encodedLen {
		return uuid.Nil, fmt.Errorf("round ID must be exactly %d characters, got %d", encodedLen, len(id))
	}
	u, err := decode(id)
	if err != nil {
		return uuid.Nil, err
	}
	if u.Version() != 7 {
		return uuid.Nil, fmt.Errorf("round ID %q is not a UUIDv7", id)
	}
	return u, nil
}

// Validate checks if a round ID is valid
func Validate(id string) error {
	_, err := Parse(id)
	return err
}
