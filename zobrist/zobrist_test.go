package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tetris-pc/pcsolve/field"
)

func TestHashFieldIsDeterministicForSameTable(t *testing.T) {
	table := NewTable()
	f := field.FromRows([]string{"XXXXXXXX__"})
	assert.Equal(t, table.HashField(f), table.HashField(f))
}

func TestHashFieldDiffersBetweenDistinctFields(t *testing.T) {
	table := NewTable()
	a := field.FromRows([]string{"XXXXXXXX__"})
	b := field.FromRows([]string{"__XXXXXXXX"})
	assert.NotEqual(t, table.HashField(a), table.HashField(b))
}

func TestHashFieldOfEmptyFieldIsZero(t *testing.T) {
	table := NewTable()
	assert.Equal(t, uint64(0), table.HashField(field.Empty()))
}

func TestQueueFingerprintDistinguishesHoldByte(t *testing.T) {
	a := QueueFingerprint("TIOLJSZ", 'E')
	b := QueueFingerprint("TIOLJSZ", 'T')
	assert.NotEqual(t, a, b)
}

func TestQueueFingerprintIsDeterministic(t *testing.T) {
	a := QueueFingerprint("TIOLJSZ", 'E')
	b := QueueFingerprint("TIOLJSZ", 'E')
	assert.Equal(t, a, b)
}

func TestFingerprintCombinesFieldAndQueue(t *testing.T) {
	table := NewTable()
	f := field.FromRows([]string{"XXXXXXXX__"})
	want := table.HashField(f) ^ QueueFingerprint("TIOLJSZ", 'E')
	assert.Equal(t, want, table.Fingerprint(f, "TIOLJSZ", 'E'))
}
