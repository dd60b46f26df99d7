// Package handid generates sortable hand identifiers: a UUIDv7 written as 26
// characters of Crockford base32, in the style of TypeID.
package handid

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/coder/quartz"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Generator produces hand IDs. A nil rng draws from crypto/rand.
type Generator struct {
	clock quartz.Clock
	rng   *rand.Rand
}

// New returns a Generator reading time from clock.
func New(clock quartz.Clock, rng *rand.Rand) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rng: rng}
}

// Generate returns a new ID. IDs from later milliseconds sort after earlier ones.
func (g *Generator) Generate() string {
	return encode(g.uuidv7())
}

func (g *Generator) uuidv7() [16]byte {
	var uuid [16]byte

	ms := uint64(g.clock.Now().UnixMilli())
	uuid[0] = byte(ms >> 40)
	uuid[1] = byte(ms >> 32)
	uuid[2] = byte(ms >> 24)
	uuid[3] = byte(ms >> 16)
	uuid[4] = byte(ms >> 8)
	uuid[5] = byte(ms)

	if g.rng != nil {
		binary.BigEndian.PutUint16(uuid[6:8], uint16(g.rng.Uint32()))
		binary.BigEndian.PutUint64(uuid[8:], g.rng.Uint64())
	} else if _, err := crand.Read(uuid[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70 // version 7
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // variant 10
	return uuid
}

// encode writes the 128 bits as a 130-bit number with two leading zero bits,
// five bits per character.
func encode(uuid [16]byte) string {
	hi := binary.BigEndian.Uint64(uuid[:8])
	lo := binary.BigEndian.Uint64(uuid[8:])

	var b strings.Builder
	b.Grow(26)
	for i := range 26 {
		shift := uint(125 - 5*i)
		var v uint64
		switch {
		case shift >= 64:
			v = hi >> (shift - 64)
		case shift > 59:
			v = lo>>shift | hi<<(64-shift)
		default:
			v = lo >> shift
		}
		b.WriteByte(alphabet[v&0x1f])
	}
	return b.String()
}

// Validate checks if a hand ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("hand ID must be exactly 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("hand ID first character must be 0-7, got %c", id[0])
	}
	for i := range len(id) {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
