package connid

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id, err := NewGenerator(nil).New()
	require.NoError(t, err)

	assert.Len(t, id, Len)
	assert.True(t, strings.HasPrefix(id, Prefix))
	assert.NoError(t, Validate(id))
}

func TestNewUnique(t *testing.T) {
	gen := NewGenerator(nil)
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := gen.New()
		require.NoError(t, err)
		require.False(t, ids[id], "duplicate ID generated: %s", id)
		ids[id] = true
	}
}

func TestNewTimeSorted(t *testing.T) {
	gen := NewGenerator(nil)
	var ids []string
	for i := 0; i < 10; i++ {
		id, err := gen.New()
		require.NoError(t, err)
		ids = append(ids, id)
		time.Sleep(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestEncode(t *testing.T) {
	var zero uuid.UUID
	assert.Equal(t, strings.Repeat("0", encodedLen), encode(zero))

	var full uuid.UUID
	for i := range full {
		full[i] = 0xff
	}
	assert.Equal(t, "7"+strings.Repeat("z", encodedLen-1), encode(full))

	// Only the lowest bit set.
	var one uuid.UUID
	one[15] = 1
	assert.Equal(t, strings.Repeat("0", encodedLen-1)+"1", encode(one))

	// Bit 64 straddles the two halves of the value.
	var mid uuid.UUID
	mid[7] = 1
	got := encode(mid)
	assert.Equal(t, byte('g'), got[encodedLen-13]) // 1<<4 within the 60..64 group
}

func TestGeneratorSource(t *testing.T) {
	fixed := uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057")
	gen := NewGenerator(func() (uuid.UUID, error) { return fixed, nil })

	a, err := gen.New()
	require.NoError(t, err)
	b, err := gen.New()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NoError(t, Validate(a))

	failing := NewGenerator(func() (uuid.UUID, error) { return uuid.Nil, errors.New("entropy exhausted") })
	_, err = failing.New()
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "conn_01h5n0et5q6mt3v7ms1234abcd", false},
		{"missing prefix", "01h5n0et5q6mt3v7ms1234abcd", true},
		{"wrong prefix", "game_01h5n0et5q6mt3v7ms1234abcd", true},
		{"too short", "conn_01h5n0et5q6mt3v7ms123", true},
		{"too long", "conn_01h5n0et5q6mt3v7ms1234abcdef", true},
		{"first char too high", "conn_81h5n0et5q6mt3v7ms1234abcd", true},
		{"invalid character", "conn_01h5n0et5q6mt3v7ms1234abci", true},
		{"uppercase", "conn_01H5N0ET5Q6MT3V7MS1234ABCD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAlphabet(t *testing.T) {
	require.Len(t, alphabet, 32)

	seen := make(map[rune]bool)
	for _, char := range alphabet {
		assert.False(t, seen[char], "duplicate character in alphabet: %c", char)
		seen[char] = true
	}
	for _, char := range "ilou" {
		assert.NotContains(t, alphabet, string(char))
	}
}
