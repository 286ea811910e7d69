package postgres

import (
	"crypto/rand"
	"math/big"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULID-based transfer IDs. ULIDs sort by
// creation time, which keeps transfer groups readable in listings.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}

// NumberGenerator issues opaque account and card numbers. Numbers carry
// no information; they only need to be unique, which the unique index
// on the column enforces.
type NumberGenerator struct{}

// NewNumberGenerator creates a new NumberGenerator.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{}
}

// AccountNumber returns a 10-digit account number with an ACC prefix.
func (g *NumberGenerator) AccountNumber() string {
	return "ACC" + randomDigits(10)
}

// CardNumber returns a 16-digit card number.
func (g *NumberGenerator) CardNumber() string {
	return randomDigits(16)
}

func randomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			panic(err)
		}
		digits[i] = '0' + byte(v.Int64())
	}
	return string(digits)
}
