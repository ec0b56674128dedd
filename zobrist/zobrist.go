// Package zobrist builds position fingerprints for logging and
// diagnostics, grounded on the teacher's own zobrist/hash.go: a table of
// random 64-bit keys, one per board cell, generated once with
// lukechampine.com/frand and combined by XOR over every occupied cell.
// Unlike the teacher's table (which feeds a transposition cache inside
// negamax), this one never gates search correctness — it only gives the
// driver and logging packages a short, stable identifier for a field
// state, the same way cmd/mlproducer uses cespare/xxhash to turn a game
// ID into a compact shard key.
package zobrist

import (
	"github.com/cespare/xxhash"
	"lukechampine.com/frand"

	"github.com/tetris-pc/pcsolve/field"
	"github.com/tetris-pc/pcsolve/piece"
)

const bignum = 1<<63 - 2

// Table holds one random key per board cell.
type Table struct {
	cellKeys [piece.FieldWidth * piece.MaxFieldHeight]uint64
}

// NewTable builds a fresh table of random cell keys.
func NewTable() *Table {
	t := &Table{}
	for i := range t.cellKeys {
		t.cellKeys[i] = frand.Uint64n(bignum) + 1
	}
	return t
}

// HashField XORs together the cell keys of every occupied cell in f.
func (t *Table) HashField(f field.Field) uint64 {
	var h uint64
	for y := 0; y < piece.MaxFieldHeight; y++ {
		for x := 0; x < piece.FieldWidth; x++ {
			if f.Occupied(x, y) {
				h ^= t.cellKeys[y*piece.FieldWidth+x]
			}
		}
	}
	return h
}

// QueueFingerprint hashes a queue/hold string into a stable uint64,
// exactly the way cmd/mlproducer.go turns a game ID into a shard key with
// xxhash.Sum64String.
func QueueFingerprint(queue string, hold byte) uint64 {
	return xxhash.Sum64String(queue + string(hold))
}

// Fingerprint combines a field hash and a queue fingerprint into one
// position identifier suitable for a log line or a cache key.
func (t *Table) Fingerprint(f field.Field, queue string, hold byte) uint64 {
	return t.HashField(f) ^ QueueFingerprint(queue, hold)
}
