// Package tables holds the precomputed lookup tables behind the five-card
// evaluator. The arrays live in tables_gen.go, which is produced offline by
// internal/tablegen and never written at runtime.
package tables

//go:generate go run ../../cmd/pokerrank gen-tables --output tables_gen.go

const (
	// RankMaskSize is the number of 13-bit rank masks indexing Flushes and Unique.
	RankMaskSize = 1 << 13

	// AdjustSize is the number of displacement buckets in HashAdjust.
	AdjustSize = 1 << 9

	// HashSize is the number of slots in HashValues.
	HashSize = 1 << 13
)

// Mix runs the avalanche steps of the perfect hash over a prime product.
// All arithmetic wraps at 32 bits and every shift is logical.
func Mix(key uint32) uint32 {
	key += 0xE91AAA35
	key ^= key >> 16
	key += key << 8
	key ^= key >> 4
	return key
}

// Bucket returns the HashAdjust index for a mixed key.
func Bucket(mixed uint32) uint32 {
	return (mixed >> 8) & (AdjustSize - 1)
}

// Slot returns the unadjusted HashValues position for a mixed key.
func Slot(mixed uint32) uint32 {
	return (mixed + (mixed << 2)) >> 19
}

// PerfectHash maps the prime product of a paired hand onto its HashValues slot.
func PerfectHash(key uint32) uint32 {
	mixed := Mix(key)
	return Slot(mixed) ^ uint32(HashAdjust[Bucket(mixed)])
}
