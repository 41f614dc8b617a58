package tablegen

import (
	"bytes"
	"go/parser"
	"go/token"
	"math/bits"
	"testing"

	"github.com/lox/pokerrank/internal/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()
	tb, err := Build()
	require.NoError(t, err)

	var perRank [worstHand + 1]int
	for mask, v := range tb.Flushes {
		if v == 0 {
			continue
		}
		require.Equal(t, 5, bits.OnesCount16(uint16(mask)), "flush mask %013b", mask)
		perRank[v]++
	}
	for mask, v := range tb.Unique {
		if v == 0 {
			continue
		}
		require.Equal(t, 5, bits.OnesCount16(uint16(mask)), "unique mask %013b", mask)
		perRank[v]++
	}

	paired := 0
	for _, v := range tb.HashValues {
		if v != 0 {
			perRank[v]++
			paired++
		}
	}
	assert.Equal(t, PairedClasses, paired)

	// Every rank is produced by exactly one table entry.
	for r := 1; r <= worstHand; r++ {
		if perRank[r] != 1 {
			t.Errorf("rank %d appears %d times", r, perRank[r])
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()
	a, err := Build()
	require.NoError(t, err)
	b, err := Build()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPairedProductsResolve(t *testing.T) {
	t.Parallel()
	tb, err := Build()
	require.NoError(t, err)

	seen := make(map[uint32]bool)
	for _, pc := range pairedProducts() {
		require.False(t, seen[pc.product], "duplicate product %d", pc.product)
		seen[pc.product] = true

		mixed := tables.Mix(pc.product)
		slot := tables.Slot(mixed) ^ uint32(tb.HashAdjust[tables.Bucket(mixed)])
		assert.Equal(t, pc.rank, tb.HashValues[slot], "product %d", pc.product)
	}
}

func TestStraightMasks(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint16(0x1F00), straightMasks[0])
	assert.Equal(t, uint16(0x001F), straightMasks[8])
	assert.Equal(t, uint16(0x100F), straightMasks[9])
	for _, m := range straightMasks {
		assert.True(t, isStraight(m))
	}
	assert.False(t, isStraight(0x1E01))
}

func TestFindDisplacement(t *testing.T) {
	t.Parallel()
	var used [tables.HashSize]bool
	used[4] = true
	used[5] = true

	d, ok := findDisplacement([]uint32{4, 5}, &used)
	require.True(t, ok)
	assert.Equal(t, uint32(2), d) // 4^2=6, 5^2=7

	d, ok = findDisplacement(nil, &used)
	require.True(t, ok)
	assert.Zero(t, d)
}

func TestDistinctSlots(t *testing.T) {
	t.Parallel()
	assert.NoError(t, distinctSlots([]uint32{1, 2, 3}))
	assert.Error(t, distinctSlots([]uint32{1, 2, 1}))
}

func TestRender(t *testing.T) {
	t.Parallel()
	tb, err := Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tb))

	src := buf.String()
	assert.Contains(t, src, "// Code generated by pokerrank gen-tables. DO NOT EDIT.")
	assert.Contains(t, src, "var HashValues = [HashSize]uint16{")

	f, err := parser.ParseFile(token.NewFileSet(), "tables_gen.go", buf.Bytes(), 0)
	require.NoError(t, err)
	assert.Equal(t, "tables", f.Name.Name)
	assert.Len(t, f.Decls, 5)
}

func TestRows(t *testing.T) {
	t.Parallel()
	values := make([]uint16, 18)
	for i := range values {
		values[i] = uint16(i)
	}
	want := "\t0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,\n\t16, 17,\n"
	assert.Equal(t, want, rows(values))
}
