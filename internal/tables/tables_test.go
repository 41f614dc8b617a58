package tables_test

import (
	"testing"

	"github.com/lox/pokerrank/internal/tablegen"
	"github.com/lox/pokerrank/internal/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeneratedTablesAreCurrent fails when tables_gen.go has drifted from
// the generator. Run `go generate ./internal/tables` to refresh it.
func TestGeneratedTablesAreCurrent(t *testing.T) {
	t.Parallel()
	want, err := tablegen.Build()
	require.NoError(t, err)

	assert.Equal(t, want.Primes, tables.Primes, "Primes")
	assert.Equal(t, want.Flushes, tables.Flushes, "Flushes")
	assert.Equal(t, want.Unique, tables.Unique, "Unique")
	assert.Equal(t, want.HashAdjust, tables.HashAdjust, "HashAdjust")
	assert.Equal(t, want.HashValues, tables.HashValues, "HashValues")
}

func TestMixIsUnsigned(t *testing.T) {
	t.Parallel()
	// Values chosen so the 32-bit additions wrap and the shifts see the top bit.
	tests := []struct {
		key  uint32
		want uint32
	}{
		{0, 0x0368A50D},
		{0x16E5A8B5, 0x00560F24},
		{104553157, 0x4226BED6},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tables.Mix(tc.key), "Mix(%#x)", tc.key)
	}
}

func TestPerfectHashRange(t *testing.T) {
	t.Parallel()
	for _, key := range []uint32{0, 1, 48, 104553157, 0xFFFFFFFF} {
		assert.Less(t, tables.PerfectHash(key), uint32(tables.HashSize))
	}
}

func TestPrimesAscending(t *testing.T) {
	t.Parallel()
	for i := 1; i < len(tables.Primes); i++ {
		assert.Greater(t, tables.Primes[i], tables.Primes[i-1])
	}
}
