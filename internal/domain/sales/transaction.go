// Package sales holds the purchase transaction model: line items recorded
// together under one transaction id, and the summaries read back from them.
package sales

import (
	"strings"

	"github.com/google/uuid"
)

// TransactionID identifies one checkout. Every purchase row written for a
// checkout carries the same id. Clients know it as the "customer number".
type TransactionID string

// String returns the id as a string
func (id TransactionID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty
func (id TransactionID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// MaxTransactionIDLength bounds ids accepted from clients; it matches the
// transaction_id column width.
const MaxTransactionIDLength = 64

// IDGenerator mints transaction ids. Implementations must not depend on
// store state.
type IDGenerator interface {
	Generate() TransactionID
}

// IDGeneratorFunc adapts a function to IDGenerator
type IDGeneratorFunc func() TransactionID

// Generate implements IDGenerator
func (f IDGeneratorFunc) Generate() TransactionID {
	return f()
}

// UUIDv7Generator mints RFC 9562 version 7 UUIDs. They embed a millisecond
// timestamp followed by a monotonic counter, so their canonical string form
// sorts in mint order within a process and by wall clock across processes.
type UUIDv7Generator struct{}

// NewUUIDv7Generator returns the default generator
func NewUUIDv7Generator() UUIDv7Generator {
	return UUIDv7Generator{}
}

// Generate implements IDGenerator
func (UUIDv7Generator) Generate() TransactionID {
	id, err := uuid.NewV7()
	if err != nil {
		// the random source failed
		id = uuid.New()
	}
	return TransactionID(id.String())
}
