package engine

import (
	"testing"

	"github.com/matryer/is"
)

func TestTransTableStoreAndProbe(t *testing.T) {
	is := is.New(t)
	tt := NewTransTable(1)
	is.True(tt.Capacity() > 0)

	const hash uint64 = 0xdeadbeefcafe
	_, ok := tt.Probe(hash)
	is.True(!ok)

	tt.Store(hash, Move(1234), 5, 2, 87, Exact)
	entry, ok := tt.Probe(hash)
	is.True(ok)
	is.Equal(entry.Move, Move(1234))
	is.Equal(entry.Depth, int8(5))
	is.Equal(entry.Score, int16(87))
	is.Equal(entry.Flag, Exact)
}

func TestTransTableAlwaysReplaces(t *testing.T) {
	is := is.New(t)
	tt := NewTransTable(1)
	first := uint64(77)
	second := first + uint64(tt.Capacity()) // same bucket

	tt.Store(first, Move(1), 10, 0, 50, Exact)
	tt.Store(second, Move(2), 1, 0, -20, UpperBound)

	_, ok := tt.Probe(first)
	is.True(!ok) // evicted even though it was deeper
	entry, ok := tt.Probe(second)
	is.True(ok)
	is.Equal(entry.Move, Move(2))
	is.Equal(entry.Depth, int8(1))
}

func TestTransTableMateScoresAreNodeRelative(t *testing.T) {
	is := is.New(t)
	tt := NewTransTable(1)
	const hash uint64 = 99

	// Mate in 5 plies from the root, found at ply 3: 2 plies from the node.
	tt.Store(hash, NoMove, 4, 3, MateScore-5, Exact)
	entry, ok := tt.Probe(hash)
	is.True(ok)
	is.Equal(int32(entry.Score), MateScore-2)

	// Reached again at ply 1 it is a mate in 3 from the root.
	score, usable := tt.Lookup(entry, 4, 1, -Infinity, Infinity)
	is.True(usable)
	is.Equal(score, MateScore-3)

	tt.Store(hash, NoMove, 4, 2, -MateScore+6, Exact)
	entry, _ = tt.Probe(hash)
	score, _ = tt.Lookup(entry, 4, 4, -Infinity, Infinity)
	is.Equal(score, -MateScore+8)
}

func TestTransTableLookupBounds(t *testing.T) {
	tests := []struct {
		name        string
		flag        Bound
		stored      int32
		entryDepth  int8
		depth       int8
		alpha, beta int32
		usable      bool
	}{
		{"exact", Exact, 10, 3, 3, -50, 50, true},
		{"too shallow", Exact, 10, 2, 3, -50, 50, false},
		{"deeper is fine", Exact, 10, 6, 3, -50, 50, true},
		{"lower bound above beta", LowerBound, 60, 3, 3, -50, 50, true},
		{"lower bound inside window", LowerBound, 10, 3, 3, -50, 50, false},
		{"upper bound below alpha", UpperBound, -60, 3, 3, -50, 50, true},
		{"upper bound inside window", UpperBound, 10, 3, 3, -50, 50, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			tt := NewTransTable(1)
			tt.Store(1, NoMove, tc.entryDepth, 0, tc.stored, tc.flag)
			entry, ok := tt.Probe(1)
			is.True(ok)
			score, usable := tt.Lookup(entry, tc.depth, 0, tc.alpha, tc.beta)
			is.Equal(usable, tc.usable)
			if usable {
				is.Equal(score, tc.stored)
			}
		})
	}
}

func TestTransTableClear(t *testing.T) {
	is := is.New(t)
	tt := NewTransTable(1)
	tt.Store(5, Move(9), 1, 0, 0, Exact)
	tt.Clear()
	_, ok := tt.Probe(5)
	is.True(!ok)
}

func TestTransTableEmptyBucketMissesZeroHash(t *testing.T) {
	is := is.New(t)
	tt := NewTransTable(1)

	_, ok := tt.Probe(0)
	is.True(!ok)

	tt.Store(0, Move(42), 3, 0, 10, LowerBound)
	entry, ok := tt.Probe(0)
	is.True(ok)
	is.Equal(entry.Move, Move(42))

	tt.Clear()
	_, ok = tt.Probe(0)
	is.True(!ok)
}
